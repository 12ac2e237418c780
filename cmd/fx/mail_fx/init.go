package mail_fx

import (
	"log"
	"os"
	"strconv"

	"cinevault/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587 // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "CineVault",
		UseSSL:     port == 465,
		RequireTLS: port != 465,

		AppName:    "CineVault",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
