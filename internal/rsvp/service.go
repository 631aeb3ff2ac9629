package rsvp

import (
	"time"

	"github.com/avelys/guestpass/internal/otp"
	"github.com/avelys/guestpass/internal/webserver/model"
)

type Config struct {
	// AssertionWindow bounds how old an assertion's verification may be.
	// Kept as short as the challenge TTL so a verified session cannot be
	// replayed much later.
	AssertionWindow time.Duration
}

// Service records final RSVP responses. The only transition is
// pending -> responded; resubmission overwrites, it never duplicates and it
// never goes back to pending.
type Service struct {
	responses *model.ResponseRepository
	config    Config
}

func NewService(responses *model.ResponseRepository, cfg Config) *Service {
	return &Service{
		responses: responses,
		config:    cfg,
	}
}

// Submit upserts the (token, contact) response row after checking the
// assertion covers this exact token and is still fresh.
func (s *Service) Submit(assertion otp.Assertion, token *model.Token, status string) (*model.Response, error) {
	if assertion.TokenUUID != token.UUID {
		return nil, ErrTokenMismatch
	}

	now := time.Now().UTC()
	if now.Sub(assertion.VerifiedAt) > s.config.AssertionWindow {
		return nil, ErrStaleAssertion
	}

	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	response := &model.Response{
		TokenID:     token.ID,
		ContactUUID: assertion.ContactUUID,
		Status:      status,
		VerifiedAt:  assertion.VerifiedAt,
		RespondedAt: now,
	}

	if err := s.responses.Upsert(response); err != nil {
		return nil, err
	}

	return s.responses.FindByTokenAndContact(token.ID, assertion.ContactUUID)
}
