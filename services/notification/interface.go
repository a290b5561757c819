package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"harwin/models"
)

// The relay endpoint is fixed; only the account credentials are configurable.
const (
	mailHost = "smtp.gmail.com"
	mailPort = 587
)

// NotificationService defines methods for notifying a booking's submitter.
type NotificationService interface {
	SendStatusUpdate(b models.Booking) error
}

// MailSender is the transport seam. *gomail.Dialer satisfies it; tests
// substitute a recording or failing double.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailNotificationService emails the submitter about a status change
// through the project's SMTP relay (STARTTLS submission).
type MailNotificationService struct {
	Sender MailSender
	From   string
}

// NewMailNotificationService builds the production dispatcher from the
// configured mail account.
func NewMailNotificationService(user, pass string) *MailNotificationService {
	return &MailNotificationService{
		Sender: gomail.NewDialer(mailHost, mailPort, user, pass),
		From:   user,
	}
}

// SendStatusUpdate composes and sends the status-change email. Delivery is
// at-most-once: there is no retry and no queue, the caller decides whether
// a failure matters.
func (s *MailNotificationService) SendStatusUpdate(b models.Booking) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.From)
	msg.SetHeader("To", b.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Delivery Booking %s - Harwin Project", b.Status))
	msg.SetBody("text/plain", statusUpdateBody(b))

	if err := s.Sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send status update for booking %d: %w", b.ID, err)
	}
	return nil
}

func statusUpdateBody(b models.Booking) string {
	return fmt.Sprintf(`Dear %s,

Your delivery booking for %s at %s
(%s) has been %s.

Regards,
Knights Brown Construction
`, b.Subcontractor, b.Date, b.Time, b.DeliveryType, b.Status)
}
