package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/avelys/guestpass/internal/webserver/model"
	"github.com/google/uuid"
)

type Config struct {
	DefaultTTL  time.Duration
	ForwardTTL  time.Duration
	MaxDepth    int
	MaxChildren int
	Pepper      []byte
	FQDN        string
}

// Issued carries a freshly minted token together with its plaintext secret
// and the share URL embedding it. This is the only moment the secret exists
// outside the caller's hands.
type Issued struct {
	Token    *model.Token
	Secret   string
	ShareURL string
}

type Issuer struct {
	repository *model.TokenRepository
	config     Config
}

func NewIssuer(repository *model.TokenRepository, cfg Config) *Issuer {
	return &Issuer{
		repository: repository,
		config:     cfg,
	}
}

// Create mints a root token for the given subject. A zero ttl falls back to
// the configured default.
func (i *Issuer) Create(subjectUUID, kind, contactUUID string, ttl time.Duration) (Issued, error) {
	if ttl == 0 {
		ttl = i.config.DefaultTTL
	}

	secret, err := GenerateSecret()
	if err != nil {
		return Issued{}, err
	}

	now := time.Now().UTC()
	token := &model.Token{
		UUID:        uuid.NewString(),
		SecretHash:  HashSecret(secret, i.config.Pepper),
		Kind:        kind,
		SubjectUUID: subjectUUID,
		ContactUUID: contactUUID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
		Depth:       0,
	}

	if err := i.repository.Create(token); err != nil {
		return Issued{}, err
	}

	return Issued{
		Token:    token,
		Secret:   secret,
		ShareURL: i.ShareURL(secret),
	}, nil
}

// Validate resolves a secret to its token and checks the token is still
// usable. It hits the store on every call; validity is never cached, as a
// token can be revoked between any two reads.
func (i *Issuer) Validate(secret string) (*model.Token, error) {
	token, err := i.repository.FindBySecretHash(HashSecret(secret, i.config.Pepper))
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	if token.Expired(now) {
		return nil, ErrExpired
	}
	if token.Revoked {
		return nil, ErrRevoked
	}
	return token, nil
}

// Revoke flags a token as revoked. Idempotent; children stay valid and are
// revocable on their own.
func (i *Issuer) Revoke(tokenUUID string) error {
	return i.repository.Revoke(tokenUUID)
}

// ShareURL builds the public URL a recipient follows to resolve the secret.
func (i *Issuer) ShareURL(secret string) string {
	fqdn := i.config.FQDN
	if !strings.HasPrefix(fqdn, "http://") && !strings.HasPrefix(fqdn, "https://") {
		fqdn = "http://" + fqdn
	}
	return fmt.Sprintf("%s/invites/%s", fqdn, secret)
}
