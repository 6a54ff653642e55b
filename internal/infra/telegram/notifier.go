package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrNotify is returned when a message could not be delivered to the chat.
var ErrNotify = errors.New("failed to deliver telegram message")

// sendInterval keeps the bot under the Bot API limit of one message per second per chat.
const sendInterval = time.Second

// Notifier delivers plain-text messages to the single configured chat.
type Notifier struct {
	client  domainTelegram.Client
	chatID  string
	limiter *rate.Limiter
	logger  *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client:  client,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Every(sendInterval), 1),
		logger:  logger,
	}
}

// Notify makes exactly one delivery attempt. Any failure is returned wrapped in ErrNotify.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		metrics.RecordNotification(err)
		return fmt.Errorf("%w: %w", ErrNotify, err)
	}

	err := n.client.SendMessage(n.chatID, text, nil)
	metrics.RecordNotification(err)
	if err != nil {
		n.logger.WithError(err).WithField("chat_id", n.chatID).Error("Message was not sent")
		return fmt.Errorf("%w: %w", ErrNotify, err)
	}

	n.logger.WithField("chat_id", n.chatID).Info("Message sent")
	return nil
}
