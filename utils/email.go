package utils

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendWelcomeEmail greets a new account on its gmail address. Skipped without
// an API key; failures are the caller's to log, never to surface.
func SendWelcomeEmail(name string, gmail string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return nil
	}

	from := mail.NewEmail("daydo support", "donotreply@daydo.app")
	subject := "Welcome to daydo"

	to := mail.NewEmail(name, gmail)

	plainTextContent := fmt.Sprintf("Hi %s, your daydo account is ready. Add your first task and check back for your 7-day analysis.", name)
	htmlContent := fmt.Sprintf("<strong>Hi %s</strong>, your daydo account is ready. Add your first task and check back for your 7-day analysis.", name)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}

	Logger.Infow("welcome email sent", "gmail", gmail, "status", response.StatusCode)
	return nil
}
