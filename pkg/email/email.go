package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	StoreName    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// OrderEmailData is the payload for order confirmation/status emails.
type OrderEmailData struct {
	StoreName    string
	CustomerName string
	OrderNo      string
	Status       string
	Total        string
}

// UdharReminderData is the payload for credit due-reminder emails.
type UdharReminderData struct {
	StoreName    string
	CustomerName string
	Remaining    string
	DueDate      string
}

// SendOrderConfirmation emails the customer after checkout.
func (s *EmailService) SendOrderConfirmation(toEmail string, data OrderEmailData) error {
	data.StoreName = s.config.StoreName
	htmlContent, err := renderTemplate("order_confirmation", orderConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Order %s confirmed - %s", data.OrderNo, s.config.StoreName)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// SendOrderStatusUpdate emails the customer when an order changes state.
func (s *EmailService) SendOrderStatusUpdate(toEmail string, data OrderEmailData) error {
	data.StoreName = s.config.StoreName
	htmlContent, err := renderTemplate("order_status", orderStatusTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Order %s is now %s - %s", data.OrderNo, data.Status, s.config.StoreName)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// SendUdharReminder emails a customer whose ledger is overdue.
func (s *EmailService) SendUdharReminder(toEmail string, data UdharReminderData) error {
	data.StoreName = s.config.StoreName
	htmlContent, err := renderTemplate("udhar_reminder", udharReminderTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Payment reminder - %s", s.config.StoreName)
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func renderTemplate(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const orderConfirmationTemplate = `
<html>
<body style="font-family:Arial,sans-serif;color:#333">
  <h2>Thank you for your order, {{.CustomerName}}!</h2>
  <p>We have received your order <strong>{{.OrderNo}}</strong> and will start
  preparing it right away.</p>
  <p>Order total: <strong>{{.Total}}</strong></p>
  <p>You will get another email when your order ships.</p>
  <p>— {{.StoreName}}</p>
</body>
</html>`

const orderStatusTemplate = `
<html>
<body style="font-family:Arial,sans-serif;color:#333">
  <h2>Order update</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>Your order <strong>{{.OrderNo}}</strong> is now
  <strong>{{.Status}}</strong>.</p>
  <p>— {{.StoreName}}</p>
</body>
</html>`

const udharReminderTemplate = `
<html>
<body style="font-family:Arial,sans-serif;color:#333">
  <h2>Payment reminder</h2>
  <p>Dear {{.CustomerName}},</p>
  <p>This is a friendly reminder that your account with {{.StoreName}} has an
  outstanding balance of <strong>{{.Remaining}}</strong>, which was due on
  {{.DueDate}}.</p>
  <p>Please visit the shop or contact us to settle the balance.</p>
  <p>— {{.StoreName}}</p>
</body>
</html>`
