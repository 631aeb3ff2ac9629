package invitation

import (
	"time"

	"github.com/avelys/guestpass/internal/token"
	"github.com/avelys/guestpass/internal/webserver/model"
)

type tokenIssuer interface {
	Create(subjectUUID, kind, contactUUID string, ttl time.Duration) (token.Issued, error)
	Revoke(tokenUUID string) error
}

type tokenForwarder interface {
	Forward(parentSecret string, forwarder, recipient token.Party) (token.Issued, error)
}

type subjectRepository interface {
	FindByUUID(uuid string) (*model.GuestList, error)
}

// Controller mints root tokens for staff, revokes tokens, and lets a token
// holder forward access to a new recipient.
type Controller struct {
	issuer   tokenIssuer
	chain    tokenForwarder
	subjects subjectRepository
}

func NewController(issuer tokenIssuer, chain tokenForwarder, subjects subjectRepository) *Controller {
	return &Controller{
		issuer:   issuer,
		chain:    chain,
		subjects: subjects,
	}
}
