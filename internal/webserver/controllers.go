package webserver

import (
	"github.com/avelys/guestpass/internal/otp"
	"github.com/avelys/guestpass/internal/rsvp"
	"github.com/avelys/guestpass/internal/token"
	accessctl "github.com/avelys/guestpass/internal/webserver/controller/access"
	invitationctl "github.com/avelys/guestpass/internal/webserver/controller/invitation"
	otpctl "github.com/avelys/guestpass/internal/webserver/controller/otp"
	rsvpctl "github.com/avelys/guestpass/internal/webserver/controller/rsvp"
	"github.com/avelys/guestpass/internal/webserver/model"
	"gorm.io/gorm"
)

// Sender is the notification delivery collaborator. Delivery failures are
// logged by the callers and never roll back the entity that triggered them.
type Sender interface {
	Send(address, subject, body string) error
	SendCC(address, cc, subject, body string) error
}

type Controllers struct {
	Access     *accessctl.Controller
	Invitation *invitationctl.Controller
	Otp        *otpctl.Controller
	Rsvp       *rsvpctl.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender) Controllers {
	tokensRepository := &model.TokenRepository{DB: db}
	challengesRepository := &model.ChallengeRepository{DB: db}
	responsesRepository := &model.ResponseRepository{DB: db}
	guestListsRepository := &model.GuestListRepository{DB: db}

	tokenCfg := token.Config{
		DefaultTTL:  cfg.TokenTTL,
		ForwardTTL:  cfg.ForwardTTL,
		MaxDepth:    cfg.MaxDepth,
		MaxChildren: cfg.MaxChildren,
		Pepper:      cfg.Pepper,
		FQDN:        cfg.FQDN,
	}

	issuer := token.NewIssuer(tokensRepository, tokenCfg)
	chain := token.NewChain(issuer, tokensRepository, sender, tokenCfg)

	verifier := otp.NewVerifier(challengesRepository, sender, otp.Config{
		TTL:         cfg.OtpTTL,
		MaxAttempts: cfg.OtpMaxAttempts,
		Cooldown:    cfg.OtpCooldown,
		Secret:      cfg.Secret,
	})

	responses := rsvp.NewService(responsesRepository, rsvp.Config{
		AssertionWindow: cfg.OtpTTL,
	})

	return Controllers{
		Access:     accessctl.NewController(issuer, guestListsRepository, responsesRepository),
		Invitation: invitationctl.NewController(issuer, chain, guestListsRepository),
		Otp:        otpctl.NewController(issuer, verifier, guestListsRepository),
		Rsvp:       rsvpctl.NewController(issuer, responses),
	}
}
