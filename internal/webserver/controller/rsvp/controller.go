package rsvp

import (
	"github.com/avelys/guestpass/internal/otp"
	"github.com/avelys/guestpass/internal/webserver/model"
)

type tokenValidator interface {
	Validate(secret string) (*model.Token, error)
}

type responseSubmitter interface {
	Submit(assertion otp.Assertion, token *model.Token, status string) (*model.Response, error)
}

// Controller records RSVP responses. It only runs behind the assertion
// middleware, so by the time Submit executes the bearer has proven control
// of their email address.
type Controller struct {
	tokens    tokenValidator
	responses responseSubmitter
}

func NewController(tokens tokenValidator, responses responseSubmitter) *Controller {
	return &Controller{
		tokens:    tokens,
		responses: responses,
	}
}
