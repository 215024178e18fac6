package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
)

// EmailService sends best-effort notifications to applicants. Failures are
// logged, never propagated into the workflow.
type EmailService interface {
	SendStatusUpdate(toEmail, toName string, status enums.ApplicationStatus, correctionNotes string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPEmailService implements EmailService over plain SMTP
type SMTPEmailService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &SMTPEmailService{
		config: config,
		logger: logger,
	}
}

// SendStatusUpdate mails the applicant about an admin review decision.
// When SMTP is not configured the message is logged and dropped.
func (s *SMTPEmailService) SendStatusUpdate(toEmail, toName string, status enums.ApplicationStatus, correctionNotes string) error {
	if s.config.Host == "" || s.config.Username == "" {
		s.logger.Info().
			Str("toEmail", toEmail).
			Str("status", string(status)).
			Msg("SMTP not configured - status update email not sent")
		return nil
	}

	var subject, detail string
	switch status {
	case enums.StatusApproved:
		subject = "Your scholarship application has been approved"
		detail = "Congratulations! Your application has been approved. You can download your admit card from the student dashboard."
	case enums.StatusRejected:
		subject = "Update on your scholarship application"
		detail = "We are sorry to inform you that your application was not selected this year."
	case enums.StatusCorrection:
		subject = "Your scholarship application needs corrections"
		detail = "An administrator has requested corrections to your application:\n\n" + correctionNotes + "\n\nPlease log in, fix the highlighted issues and resubmit."
	default:
		subject = "Update on your scholarship application"
		detail = fmt.Sprintf("The status of your application is now: %s.", status)
	}

	body := fmt.Sprintf("Hello %s,\n\n%s\n\nRegards,\nFifty Villagers Seva Sansthan", toName, detail)
	return s.send(toEmail, subject, body)
}

func (s *SMTPEmailService) send(toEmail, subject, body string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", toEmail)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, []byte(msg.String())); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return err
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
