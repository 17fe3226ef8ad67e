package utils

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer wraps the SMTP dialer. It is constructed once in main and handed to
// the controllers; there is no lazily-built global client.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer builds a Mailer from SMTP settings
func NewMailer(host, port, username, password, from string) *Mailer {
	p, err := strconv.Atoi(port)
	if err != nil || p == 0 {
		p = 587
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, p, username, password),
		from:   from,
	}
}

// Send sends an HTML email
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendRewardEmail sends the reward email for a confirmed offer completion
func (m *Mailer) SendRewardEmail(to, offerName, title, code string) error {
	subject := "Your DealsHub Reward is Ready!"
	body := fmt.Sprintf(`
		<h2>Congratulations!</h2>
		<p>Your completion of <strong>%s</strong> has been confirmed.</p>
		<p>%s</p>
		<p>Here is your reward code:</p>
		<h1 style="color: #4CAF50; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>Redeem it before it expires. Happy hunting!</p>
	`, offerName, title, code)

	return m.Send(to, subject, body)
}
