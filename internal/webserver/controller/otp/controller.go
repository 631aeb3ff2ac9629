package otp

import (
	"github.com/avelys/guestpass/internal/webserver/model"
)

type tokenValidator interface {
	Validate(secret string) (*model.Token, error)
}

type codeVerifier interface {
	Issue(token *model.Token, contactUUID, email string) error
	Verify(token *model.Token, code string) (string, error)
}

type subjectRepository interface {
	FindByUUID(uuid string) (*model.GuestList, error)
}

// Controller gates the write path: a holder asks for a code to be mailed to
// the declared identity, then trades the code for a verified assertion.
type Controller struct {
	tokens   tokenValidator
	verifier codeVerifier
	subjects subjectRepository
}

func NewController(tokens tokenValidator, verifier codeVerifier, subjects subjectRepository) *Controller {
	return &Controller{
		tokens:   tokens,
		verifier: verifier,
		subjects: subjects,
	}
}
