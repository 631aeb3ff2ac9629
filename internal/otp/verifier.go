package otp

import (
	"fmt"
	"log"
	"time"

	"github.com/avelys/guestpass/internal/webserver/model"
)

type codeEmail interface {
	Send(address, subject, body string) error
}

type Config struct {
	TTL         time.Duration
	MaxAttempts int
	Cooldown    time.Duration
	Secret      []byte
}

// Verifier gates the write path: it hands out short-lived numeric codes
// bound to a token and turns a correct code into a signed assertion.
type Verifier struct {
	challenges *model.ChallengeRepository
	sender     codeEmail
	config     Config
}

func NewVerifier(challenges *model.ChallengeRepository, sender codeEmail, cfg Config) *Verifier {
	return &Verifier{
		challenges: challenges,
		sender:     sender,
		config:     cfg,
	}
}

// Issue creates a fresh challenge for the token and emails the code to the
// given address. Any previous unconsumed challenge is superseded in the same
// transaction, so only the newest code can ever verify. Reissues inside the
// cooldown window are refused.
func (v *Verifier) Issue(token *model.Token, contactUUID, email string) error {
	newest, err := v.challenges.Newest(token.ID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if newest != nil && now.Sub(newest.CreatedAt) < v.config.Cooldown {
		return ErrCooldown
	}

	code, err := GenerateCode()
	if err != nil {
		return err
	}

	hash, err := HashCode(code)
	if err != nil {
		return err
	}

	challenge := &model.Challenge{
		TokenID:     token.ID,
		ContactUUID: contactUUID,
		CodeHash:    hash,
		CreatedAt:   now,
		ExpiresAt:   now.Add(v.config.TTL),
	}

	if err := v.challenges.Supersede(token.ID, challenge); err != nil {
		return err
	}

	go func() {
		body := fmt.Sprintf(
			"Your verification code is %s.\n\nIt expires in %d minutes.",
			code,
			int(v.config.TTL.Minutes()),
		)
		if err := v.sender.Send(email, "Your verification code", body); err != nil {
			log.Printf("error sending verification code: %s\n", err)
		}
	}()

	return nil
}

// Verify checks a code against the token's newest challenge and, on success,
// consumes the challenge and returns a signed single-use assertion.
//
// The attempt counter is bumped with an atomic SQL increment before the code
// is compared, so parallel guesses cannot slip under the budget, and
// consumption is a compare-and-set: of any concurrent correct submissions
// exactly one wins.
func (v *Verifier) Verify(token *model.Token, code string) (string, error) {
	challenge, err := v.challenges.Newest(token.ID)
	if err != nil {
		return "", err
	}
	if challenge == nil {
		return "", ErrNoActiveChallenge
	}
	if challenge.Consumed {
		// Replaying a code after a successful verification lands here.
		return "", ErrInvalidCode
	}

	now := time.Now().UTC()
	if challenge.Expired(now) {
		return "", ErrChallengeExpired
	}

	attempts, err := v.challenges.IncrementAttempts(challenge.ID)
	if err != nil {
		return "", err
	}
	if attempts > v.config.MaxAttempts {
		return "", ErrTooManyAttempts
	}

	if !VerifyCode(challenge.CodeHash, code) {
		return "", ErrInvalidCode
	}

	won, err := v.challenges.Consume(challenge.ID)
	if err != nil {
		return "", err
	}
	if !won {
		return "", ErrInvalidCode
	}

	assertion := Assertion{
		TokenUUID:   token.UUID,
		ContactUUID: challenge.ContactUUID,
		VerifiedAt:  now,
	}

	return Sign(assertion, v.config.Secret, v.config.TTL)
}
