package mailer

import (
	"fmt"

	"connemaraqueens/internal/models"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Username)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return dialer.DialAndSend(msg)
}

// CreateMessage builds the administrator email for a notification.
func (m *Mailer) CreateMessage(n models.Notification) (string, string) {
	formattedTime := n.CreatedAt.Format("02-01-2006 15:04:05")

	switch n.Kind {
	case models.NotificationBooking:
		subject := fmt.Sprintf("New booking %s", n.Reference)
		body := fmt.Sprintf(
			"New booking %s from %s (%s).\nPreferred month: %s\nDeposit: EUR %s\nReceived: %s",
			n.Reference, n.Name, n.Email, n.PreferredMonth, n.DepositAmount, formattedTime,
		)
		return subject, body
	case models.NotificationContact:
		subject := fmt.Sprintf("Contact message: %s", n.Subject)
		body := fmt.Sprintf(
			"From: %s (%s)\nSubject: %s\n\n%s\n\nReceived: %s",
			n.Name, n.Email, n.Subject, n.Message, formattedTime,
		)
		return subject, body
	default:
		subject := "Website notification"
		body := fmt.Sprintf("Unrecognised notification kind %q from %s (%s) at %s", n.Kind, n.Name, n.Email, formattedTime)
		return subject, body
	}
}
