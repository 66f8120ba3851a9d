package notifications

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jgonzalezans/am-challenge/internal/core/domain"
)

// TransferEvent is the JSON body delivered to the webhook receiver.
type TransferEvent struct {
	ID        uuid.UUID `json:"id"`
	Event     string    `json:"event"`
	AccountID string    `json:"account_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// queue is the slice of the dispatcher the notifier needs.
type queue interface {
	Enqueue(url string, payload interface{}) bool
}

// WebhookNotifier turns transfer notifications into webhook jobs. Delivery
// happens in the background; the caller never waits on the receiver.
type WebhookNotifier struct {
	url   string
	queue queue
}

func NewWebhookNotifier(url string, q queue) *WebhookNotifier {
	return &WebhookNotifier{url: url, queue: q}
}

func (n *WebhookNotifier) NotifyAboutTransfer(account domain.Account, message string) {
	event := TransferEvent{
		ID:        uuid.New(),
		Event:     "transfer.completed",
		AccountID: account.ID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	if !n.queue.Enqueue(n.url, event) {
		slog.Warn("Transfer notification dropped", "account_id", account.ID, "event_id", event.ID)
	}
}

// LogNotifier writes notifications to the process log. Used when no webhook
// URL is configured.
type LogNotifier struct{}

func (LogNotifier) NotifyAboutTransfer(account domain.Account, message string) {
	slog.Info("📣 Transfer notification", "account_id", account.ID, "message", message)
}
