// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
	"wanderlog-api/config"
)

// EmailService sends transactional mail. Delivery failures are logged by
// callers and never fail the request that triggered them.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a freshly registered user
func (es *EmailService) SendWelcomeEmail(email, username string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to WanderLog!")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to WanderLog</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #2a9d8f; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>WanderLog</h1>
            <p>Your travel journal</p>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Your WanderLog account is ready. Create your first trip, attach journal entries with photos and moods, and follow other travelers to see their public journeys.</p>
            <p>Safe travels!</p>
            <p><strong>The WanderLog Team</strong></p>
        </div>
        <div class="footer">
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, username)

	textBody := fmt.Sprintf(`
Hello %s!

Your WanderLog account is ready. Create your first trip, attach journal
entries with photos and moods, and follow other travelers to see their
public journeys.

Safe travels!
The WanderLog Team

This is an automated email, please do not reply.
    `, username)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
