package main

import (
	"fmt"
	"log"

	"github.com/avelys/guestpass/internal/webserver"
	"github.com/avelys/guestpass/internal/webserver/infrastructure"
	"github.com/ilyakaznacheev/cleanenv"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	run(cfg)
}

func run(cfg Config) {
	var sender webserver.Sender

	db := infrastructure.Connect(cfg.DatabasePath)

	sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	webserverConfig := webserver.Config{
		FQDN:             cfg.FQDN,
		Secret:           []byte(cfg.Secret),
		Pepper:           []byte(cfg.Pepper),
		APIKey:           cfg.ApiKey,
		TokenTTL:         cfg.TokenTTL,
		ForwardTTL:       cfg.ForwardTTL,
		MaxDepth:         cfg.MaxDepth,
		MaxChildren:      cfg.MaxChildren,
		OtpTTL:           cfg.OtpTTL,
		OtpMaxAttempts:   cfg.OtpMaxAttempts,
		OtpCooldown:      cfg.OtpCooldown,
		OtpRatePerMinute: cfg.OtpRatePerMinute,
		OtpRateBurst:     cfg.OtpRateBurst,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("Guestpass version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
