package storage

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jgonzalezans/am-challenge/internal/core/domain"
)

// AccountStore is the sole owner of account state. Callers only ever receive
// snapshot copies; balances change exclusively through Transfer, so no other
// component can corrupt them.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*entry
}

// entry pairs an account with the mutex that serializes its balance
// mutations. Transfer locks both participants in account-id order, so two
// transfers sharing an account can never deadlock or jointly overdraw it.
type entry struct {
	mu  sync.Mutex
	acc domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*entry)}
}

// CreateAccount inserts the account if its id is not taken yet. Of two
// simultaneous creates for the same id, exactly one wins.
func (s *AccountStore) CreateAccount(acc domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[acc.ID]; ok {
		return fmt.Errorf("account id %s: %w", acc.ID, domain.ErrDuplicateAccountID)
	}

	s.accounts[acc.ID] = &entry{acc: acc}
	return nil
}

// GetAccount returns a snapshot of the account. Taking the entry lock means
// a read never observes a transfer that is only half applied.
func (s *AccountStore) GetAccount(id string) (domain.Account, error) {
	s.mu.RLock()
	e, ok := s.accounts[id]
	s.mu.RUnlock()

	if !ok {
		return domain.Account{}, fmt.Errorf("account id %s: %w", id, domain.ErrAccountNotFound)
	}

	e.mu.Lock()
	acc := e.acc
	e.mu.Unlock()
	return acc, nil
}

// ClearAccounts removes every account. Reset utility for tests; not safe to
// call while transfers are in flight.
func (s *AccountStore) ClearAccounts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[string]*entry)
}

// Transfer debits fromID and credits toID by amount as one atomic step.
// The checks run in a fixed order and nothing is mutated until all of them
// pass, so any failure leaves both balances exactly as they were.
func (s *AccountStore) Transfer(fromID, toID string, amount decimal.Decimal) error {
	t := domain.Transfer{FromAccountID: fromID, ToAccountID: toID, Amount: amount}
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.RLock()
	from, okFrom := s.accounts[fromID]
	to, okTo := s.accounts[toID]
	s.mu.RUnlock()

	if !okFrom {
		return fmt.Errorf("account id %s: %w", fromID, domain.ErrAccountNotFound)
	}
	if !okTo {
		return fmt.Errorf("account id %s: %w", toID, domain.ErrAccountNotFound)
	}

	// Lock both participants in id order.
	first, second := from, to
	if toID < fromID {
		first, second = to, from
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	// The balance check has to happen under the locks; anything read
	// earlier could be stale by now.
	if amount.GreaterThan(from.acc.Balance) {
		return fmt.Errorf("account id %s: %w", fromID, domain.ErrInsufficientBalance)
	}

	from.acc.Balance = from.acc.Balance.Sub(amount)
	to.acc.Balance = to.acc.Balance.Add(amount)
	return nil
}
