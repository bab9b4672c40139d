// Package mailer notifies the site owners about new contact inquiries over
// SMTP. It listens on the process event bus and is a no-op when SMTP is not
// configured.
package mailer

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/chainrent/chainrent/config"
	"github.com/chainrent/chainrent/internal/actions"
	"github.com/chainrent/chainrent/internal/domain"
)

type Mailer struct {
	cfg config.SmtpConfig
}

func New(cfg config.SmtpConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Start subscribes to contact events. Delivery runs off the caller's
// goroutine; a failed send is logged and dropped, never retried.
func (m *Mailer) Start(bus EventBus.Bus) error {
	if !m.cfg.Enabled {
		zap.L().Info("smtp disabled, contact notifications off")
		return nil
	}
	return bus.SubscribeAsync(actions.ContactCreatedTopic, m.onContactCreated, false)
}

func (m *Mailer) onContactCreated(contact *domain.Contact) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.NotifyTo)
	msg.SetHeader("Subject", fmt.Sprintf("New contact inquiry from %s", contact.Name))
	msg.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", contact.Name, contact.Email, contact.Messages))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		zap.L().Error("contact notification send failed",
			zap.String("email", contact.Email), zap.Error(err))
		return
	}
	zap.L().Info("contact notification sent", zap.String("email", contact.Email))
}
