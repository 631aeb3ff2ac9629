package token

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/avelys/guestpass/internal/webserver/model"
	"github.com/google/uuid"
)

type invitationEmail interface {
	SendCC(address, cc, subject, body string) error
}

// Party identifies one side of a forward: the holder passing access on or
// the person receiving it.
type Party struct {
	Name        string
	Email       string
	ContactUUID string
}

// Chain lets a valid token holder forward access to a new recipient. Every
// forward produces a child token pointing at its parent, so the whole
// structure stays a forest: parent linkage is written once at creation and
// never mutated, which is what rules out cycles.
type Chain struct {
	issuer     *Issuer
	repository *model.TokenRepository
	sender     invitationEmail
	config     Config
}

func NewChain(issuer *Issuer, repository *model.TokenRepository, sender invitationEmail, cfg Config) *Chain {
	return &Chain{
		issuer:     issuer,
		repository: repository,
		sender:     sender,
		config:     cfg,
	}
}

// Forward validates the parent secret and mints a child token for the
// recipient. The child keeps the parent's subject (access never widens) and
// gets a fresh validity window. The invitation email is sent after the child
// exists; delivery failure never undoes the forward.
func (ch *Chain) Forward(parentSecret string, forwarder, recipient Party) (Issued, error) {
	parent, err := ch.issuer.Validate(parentSecret)
	if err != nil {
		return Issued{}, err
	}

	if parent.Depth+1 > ch.config.MaxDepth {
		return Issued{}, ErrDepthExceeded
	}

	children, err := ch.repository.ChildrenCount(parent.ID)
	if err != nil {
		return Issued{}, err
	}
	if ch.config.MaxChildren > 0 && children >= int64(ch.config.MaxChildren) {
		return Issued{}, ErrFanOutExceeded
	}

	secret, err := GenerateSecret()
	if err != nil {
		return Issued{}, err
	}

	now := time.Now().UTC()
	child := &model.Token{
		UUID:           uuid.NewString(),
		SecretHash:     HashSecret(secret, ch.config.Pepper),
		Kind:           model.KindShare,
		SubjectUUID:    parent.SubjectUUID,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ch.config.ForwardTTL),
		ParentID:       &parent.ID,
		Depth:          parent.Depth + 1,
		ContactUUID:    recipient.ContactUUID,
		ForwarderName:  forwarder.Name,
		RecipientName:  recipient.Name,
		RecipientEmail: recipient.Email,
	}

	if err := ch.repository.CreateChild(child, now); err != nil {
		// The parent lost its validity between the check above and the
		// insert. Re-validate to surface the precise state.
		if errors.Is(err, model.ErrParentInactive) {
			if _, err := ch.issuer.Validate(parentSecret); err != nil {
				return Issued{}, err
			}
			return Issued{}, ErrRevoked
		}
		return Issued{}, err
	}

	issued := Issued{
		Token:    child,
		Secret:   secret,
		ShareURL: ch.issuer.ShareURL(secret),
	}

	go func() {
		subject := fmt.Sprintf("%s has invited you", forwarder.Name)
		body := fmt.Sprintf(
			"%s forwarded you an invitation.\n\nOpen it here: %s\n\nThe link is valid until %s.",
			forwarder.Name,
			issued.ShareURL,
			child.ExpiresAt.Format(time.RFC1123),
		)
		if err := ch.sender.SendCC(recipient.Email, forwarder.Email, subject, body); err != nil {
			log.Printf("error sending invitation email: %s\n", err)
		}
	}()

	return issued, nil
}
