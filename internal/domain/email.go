package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData holds data for the registration confirmation email.
type RegistrationEmailData struct {
	Name       string
	Email      string
	EventTitle string
	EventDate  string
	Location   string
}

// EmailService sends application emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
}
