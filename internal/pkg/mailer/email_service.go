package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSubmissionAlert(toEmail, projectName, kind, summary string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendSubmissionAlert notifies a project owner that the widget received a new
// submission. kind is the content type ("feedback", "review", "issue",
// "feature request").
func (s *emailService) SendSubmissionAlert(toEmail, projectName, kind, summary string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New %s for %s", kind, projectName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New %s</h2>
			<p>Your project <strong>%s</strong> just received a new %s:</p>
			<blockquote style="border-left: 3px solid #667eea; padding-left: 12px; color: #555;">%s</blockquote>
			<p>Open your dashboard to review it.</p>
		</div>
	`, kind, projectName, kind, summary)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send submission alert to %s: %w", toEmail, err)
	}
	return nil
}
