package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/resend/resend-go/v2"
	"go.uber.org/multierr"

	"github.com/magieskin/storefront-backend/pkg/config"
	"github.com/magieskin/storefront-backend/pkg/db/models"
	pkgerrors "github.com/magieskin/storefront-backend/pkg/errors"
	"github.com/magieskin/storefront-backend/pkg/logger"
	"github.com/magieskin/storefront-backend/pkg/metrics"
)

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Mailer sends the order notification pair through Resend: one message to
// the shop, one confirmation to the customer.
type Mailer struct {
	sender  emailSender
	cfg     config.EmailConfig
	logg    *logger.Logger
	metrics *metrics.OrderMetrics
}

// NewMailer builds the mailer. When the email config is incomplete the
// mailer stays inert: Deliver reports misconfiguration and OrderPlaced
// degrades to a logged warning.
func NewMailer(cfg config.EmailConfig, logg *logger.Logger, m *metrics.OrderMetrics) *Mailer {
	mailer := &Mailer{cfg: cfg, logg: logg, metrics: m}
	if cfg.ResendAPIKey != "" {
		mailer.sender = resend.NewClient(cfg.ResendAPIKey).Emails
	}
	return mailer
}

// OrderPlaced implements orders.Notifier: best-effort, never propagates.
func (m *Mailer) OrderPlaced(ctx context.Context, order models.Order) {
	if !m.cfg.Configured() {
		if m.logg != nil {
			m.logg.Warn(ctx, "order email skipped, provider not configured")
		}
		return
	}
	if err := m.Deliver(ctx, order); err != nil {
		m.metrics.IncEmailFailure()
		if m.logg != nil {
			m.logg.Error(m.logg.WithOrderID(ctx, order.ID), "order.email.failed", err)
		}
	}
}

// Deliver sends the admin notification and, when a customer address is
// present, the customer confirmation. Both sends run concurrently; the
// combined error covers whichever failed.
func (m *Mailer) Deliver(ctx context.Context, order models.Order) error {
	if !m.cfg.Configured() || m.sender == nil {
		return pkgerrors.New(pkgerrors.CodeMisconfigured, "missing email configuration")
	}

	messages := []message{buildAdminMessage(order, m.cfg.NotifyTo)}
	if order.Customer.Email != "" {
		messages = append(messages, buildCustomerMessage(order))
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, msg := range messages {
		wg.Add(1)
		go func(msg message) {
			defer wg.Done()
			if err := m.send(ctx, msg); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
		}(msg)
	}
	wg.Wait()

	return errs
}

func (m *Mailer) send(ctx context.Context, msg message) error {
	_, err := m.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.cfg.FromAddress,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("sending %q to %s: %w", msg.Subject, msg.To, err)
	}
	return nil
}
