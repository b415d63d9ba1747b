package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/kerjalink/jobboard-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// TimeSlotView is a rendered interview time slot option.
type TimeSlotView struct {
	Date string
	Time string
}

// EmailService defines the interface for sending emails
type EmailService interface {
	SendEmailVerification(to, candidateName, verificationLink string) error
	SendInterviewNotification(to, candidateName, companyName, designation string, message *string, slots []TimeSlotView, dashboardLink string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type verificationEmailData struct {
	CandidateName    string
	VerificationLink string
}

// SendEmailVerification sends an email address verification link to a newly
// registered candidate
func (s *emailServiceImpl) SendEmailVerification(to, candidateName, verificationLink string) error {
	data := verificationEmailData{
		CandidateName:    candidateName,
		VerificationLink: verificationLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "verify_email.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Verifikasi Email KerjaLink", body.String())
}

type interviewEmailData struct {
	CandidateName string
	CompanyName   string
	Designation   string
	Message       string
	Slots         []TimeSlotView
	DashboardLink string
}

// SendInterviewNotification tells a candidate an employer proposed interview
// time slots
func (s *emailServiceImpl) SendInterviewNotification(to, candidateName, companyName, designation string, message *string, slots []TimeSlotView, dashboardLink string) error {
	data := interviewEmailData{
		CandidateName: candidateName,
		CompanyName:   companyName,
		Designation:   designation,
		Message:       "",
		Slots:         slots,
		DashboardLink: dashboardLink,
	}
	if message != nil {
		data.Message = *message
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "interview_notification.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Undangan Interview dari %s", companyName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
