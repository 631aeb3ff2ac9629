package otp_test

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/avelys/guestpass/internal/otp"
	"github.com/avelys/guestpass/internal/webserver/infrastructure"
	"github.com/avelys/guestpass/internal/webserver/model"
	"gorm.io/gorm"
)

var codePattern = regexp.MustCompile(`[0-9]{6}`)

type senderMock struct {
	mu     sync.Mutex
	bodies []string
	Wg     sync.WaitGroup
}

func (s *senderMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	s.bodies = append(s.bodies, body)
	s.mu.Unlock()
	return nil
}

func (s *senderMock) lastCode(t *testing.T) string {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) == 0 {
		t.Fatal("No code was sent")
	}
	code := codePattern.FindString(s.bodies[len(s.bodies)-1])
	if code == "" {
		t.Fatal("No code found in the sent body")
	}
	return code
}

func testVerifier(t *testing.T, cfg otp.Config) (*otp.Verifier, *senderMock, *model.Token, *gorm.DB) {
	t.Helper()

	db := infrastructure.Connect(":memory:")
	sender := &senderMock{}
	verifier := otp.NewVerifier(&model.ChallengeRepository{DB: db}, sender, cfg)

	token := &model.Token{
		UUID:        "token-uuid",
		SecretHash:  "hash",
		Kind:        model.KindShare,
		SubjectUUID: "list-1",
		ContactUUID: "contact-1",
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   time.Now().UTC().Add(time.Hour),
	}
	if err := (&model.TokenRepository{DB: db}).Create(token); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return verifier, sender, token, db
}

func defaultOtpConfig() otp.Config {
	return otp.Config{
		TTL:         10 * time.Minute,
		MaxAttempts: 5,
		Cooldown:    0,
		Secret:      []byte("assertion-secret"),
	}
}

func issueCode(t *testing.T, verifier *otp.Verifier, sender *senderMock, token *model.Token) string {
	t.Helper()

	sender.Wg.Add(1)
	if err := verifier.Issue(token, "contact-1", "guest@example.com"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sender.Wg.Wait()
	return sender.lastCode(t)
}

func wrongCode(code string) string {
	var n int
	fmt.Sscanf(code, "%d", &n)
	return fmt.Sprintf("%06d", (n+1)%1000000)
}

func TestIssueAndVerify(t *testing.T) {
	verifier, sender, token, _ := testVerifier(t, defaultOtpConfig())

	code := issueCode(t, verifier, sender, token)

	signed, err := verifier.Verify(token, code)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assertion, err := otp.Parse(signed, []byte("assertion-secret"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if assertion.TokenUUID != token.UUID {
		t.Errorf("Expected assertion for %s, got %s", token.UUID, assertion.TokenUUID)
	}
	if assertion.ContactUUID != "contact-1" {
		t.Errorf("Expected assertion for contact-1, got %s", assertion.ContactUUID)
	}
}

func TestVerifyWithoutChallenge(t *testing.T) {
	verifier, _, token, _ := testVerifier(t, defaultOtpConfig())

	if _, err := verifier.Verify(token, "123456"); !errors.Is(err, otp.ErrNoActiveChallenge) {
		t.Errorf("Expected ErrNoActiveChallenge, got %v", err)
	}
}

func TestReissueSupersedes(t *testing.T) {
	verifier, sender, token, _ := testVerifier(t, defaultOtpConfig())

	first := issueCode(t, verifier, sender, token)
	second := issueCode(t, verifier, sender, token)

	if _, err := verifier.Verify(token, first); !errors.Is(err, otp.ErrInvalidCode) {
		t.Errorf("Expected the superseded code to fail, got %v", err)
	}

	if _, err := verifier.Verify(token, second); err != nil {
		t.Errorf("Expected the fresh code to verify, got %v", err)
	}
}

func TestReissueCooldown(t *testing.T) {
	cfg := defaultOtpConfig()
	cfg.Cooldown = time.Hour
	verifier, sender, token, _ := testVerifier(t, cfg)

	issueCode(t, verifier, sender, token)

	if err := verifier.Issue(token, "contact-1", "guest@example.com"); !errors.Is(err, otp.ErrCooldown) {
		t.Errorf("Expected ErrCooldown, got %v", err)
	}
}

func TestExpiredChallenge(t *testing.T) {
	verifier, sender, token, db := testVerifier(t, defaultOtpConfig())

	code := issueCode(t, verifier, sender, token)

	// Simulate the eleventh minute by backdating the challenge.
	past := time.Now().UTC().Add(-time.Minute)
	if err := db.Model(&model.Challenge{}).Where("token_id = ?", token.ID).
		Update("expires_at", past).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token, code); !errors.Is(err, otp.ErrChallengeExpired) {
		t.Errorf("Expected ErrChallengeExpired, got %v", err)
	}
}

func TestAttemptExhaustion(t *testing.T) {
	verifier, sender, token, _ := testVerifier(t, defaultOtpConfig())

	code := issueCode(t, verifier, sender, token)
	bad := wrongCode(code)

	for i := 0; i < 5; i++ {
		if _, err := verifier.Verify(token, bad); !errors.Is(err, otp.ErrInvalidCode) {
			t.Fatalf("Expected ErrInvalidCode on attempt %d, got %v", i+1, err)
		}
	}

	// The sixth call fails even though the code is now correct.
	if _, err := verifier.Verify(token, code); !errors.Is(err, otp.ErrTooManyAttempts) {
		t.Errorf("Expected ErrTooManyAttempts, got %v", err)
	}

	// A fresh issue unlocks verification again.
	fresh := issueCode(t, verifier, sender, token)
	if _, err := verifier.Verify(token, fresh); err != nil {
		t.Errorf("Expected the fresh code to verify, got %v", err)
	}
}

func TestReplayAfterSuccess(t *testing.T) {
	verifier, sender, token, _ := testVerifier(t, defaultOtpConfig())

	code := issueCode(t, verifier, sender, token)

	if _, err := verifier.Verify(token, code); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token, code); !errors.Is(err, otp.ErrInvalidCode) {
		t.Errorf("Expected replay to fail with ErrInvalidCode, got %v", err)
	}
}

func TestAssertionTampering(t *testing.T) {
	verifier, sender, token, _ := testVerifier(t, defaultOtpConfig())

	code := issueCode(t, verifier, sender, token)

	signed, err := verifier.Verify(token, code)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := otp.Parse(signed, []byte("some-other-secret")); !errors.Is(err, otp.ErrBadAssertion) {
		t.Errorf("Expected ErrBadAssertion, got %v", err)
	}
	if _, err := otp.Parse(signed+"x", []byte("assertion-secret")); !errors.Is(err, otp.ErrBadAssertion) {
		t.Errorf("Expected ErrBadAssertion, got %v", err)
	}
}
