package access

import (
	"github.com/avelys/guestpass/internal/webserver/model"
)

type tokenValidator interface {
	Validate(secret string) (*model.Token, error)
}

type subjectRepository interface {
	FindByUUID(uuid string) (*model.GuestList, error)
}

type responseRepository interface {
	BySubject(subjectUUID string) ([]model.Response, error)
}

// Controller is the read path: it resolves a bearer secret into a read-only
// projection of the guest list the token grants access to.
type Controller struct {
	tokens    tokenValidator
	subjects  subjectRepository
	responses responseRepository
}

func NewController(tokens tokenValidator, subjects subjectRepository, responses responseRepository) *Controller {
	return &Controller{
		tokens:    tokens,
		subjects:  subjects,
		responses: responses,
	}
}
