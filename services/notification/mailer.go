package notification

import (
	"fmt"

	"doctorsportal/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers booking confirmations over SMTP.
type SMTPMailer struct {
	Dialer *gomail.Dialer
	From   string
	Logger *zap.Logger
}

// NewSMTPMailer creates a mailer using the given SMTP settings.
func NewSMTPMailer(host string, port int, user, pass, from string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		Dialer: gomail.NewDialer(host, port, user, pass),
		From:   from,
		Logger: logger,
	}
}

// NotifyBookingConfirmed sends the confirmation email in a background
// goroutine. Delivery errors are logged and swallowed; the booking has
// already been persisted and must not fail on mail trouble.
func (m *SMTPMailer) NotifyBookingConfirmed(b models.Booking) {
	go func() {
		if err := m.send(b); err != nil {
			m.Logger.Error("failed to send booking confirmation",
				zap.String("patient", b.Patient),
				zap.String("treatment", b.Treatment),
				zap.Error(err))
			return
		}
		m.Logger.Info("booking confirmation sent", zap.String("patient", b.Patient))
	}()
}

func (m *SMTPMailer) send(b models.Booking) error {
	subject := fmt.Sprintf("Your appointment for %s is confirmed", b.Treatment)
	body := fmt.Sprintf(`<div>
		<h3>Dear %s,</h3>
		<p>Your appointment for %s has been confirmed. We are looking forward to seeing you on %s at %s.</p>
		<p>Have a good day!</p>
	</div>`, b.Patient, b.Treatment, b.Date, b.Slot)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", b.Patient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", subject)
	msg.AddAlternative("text/html", body)

	return m.Dialer.DialAndSend(msg)
}
