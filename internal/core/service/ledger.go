package service

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/jgonzalezans/am-challenge/internal/core/domain"
)

// Store is what the ledger needs from the account store.
type Store interface {
	CreateAccount(acc domain.Account) error
	GetAccount(id string) (domain.Account, error)
	Transfer(fromID, toID string, amount decimal.Decimal) error
}

// Notifier delivers a message about a committed transfer to an account
// holder. Implementations are best-effort: a failed delivery never rolls
// back or blocks the transfer itself.
type Notifier interface {
	NotifyAboutTransfer(account domain.Account, message string)
}

// Ledger orchestrates account operations. It adds post-transfer
// notifications on top of the store without touching its correctness.
type Ledger struct {
	store    Store
	notifier Notifier
}

func NewLedger(store Store, notifier Notifier) *Ledger {
	return &Ledger{store: store, notifier: notifier}
}

func (l *Ledger) CreateAccount(acc domain.Account) error {
	return l.store.CreateAccount(acc)
}

func (l *Ledger) GetAccount(id string) (domain.Account, error) {
	return l.store.GetAccount(id)
}

// Transfer moves amount from one account to the other. Once the store has
// committed, both sides get told about it; the transfer is complete at that
// point regardless of what happens to the notifications.
func (l *Ledger) Transfer(fromID, toID string, amount decimal.Decimal) error {
	if err := l.store.Transfer(fromID, toID, amount); err != nil {
		return err
	}

	l.sendTransferNotifications(fromID, toID, amount)
	return nil
}

func (l *Ledger) sendTransferNotifications(fromID, toID string, amount decimal.Decimal) {
	// The two notifications are independent best-effort calls.
	if from, err := l.store.GetAccount(fromID); err == nil {
		l.notifier.NotifyAboutTransfer(from, fmt.Sprintf("Transfer completed - Sent %s to %s", amount, toID))
	} else {
		slog.Warn("Skipping transfer notification", "account_id", fromID, "error", err)
	}

	if to, err := l.store.GetAccount(toID); err == nil {
		l.notifier.NotifyAboutTransfer(to, fmt.Sprintf("Transfer completed - Received %s from %s", amount, fromID))
	} else {
		slog.Warn("Skipping transfer notification", "account_id", toID, "error", err)
	}
}
