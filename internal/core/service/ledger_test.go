package service

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgonzalezans/am-challenge/internal/adapter/storage"
	"github.com/jgonzalezans/am-challenge/internal/core/domain"
)

// recordingNotifier captures notifications so tests can assert on them.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notification
}

type notification struct {
	AccountID string
	Message   string
}

func (n *recordingNotifier) NotifyAboutTransfer(account domain.Account, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{AccountID: account.ID, Message: message})
}

func (n *recordingNotifier) snapshot() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.calls...)
}

func newTestLedger(t *testing.T) (*Ledger, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	return NewLedger(storage.NewAccountStore(), notifier), notifier
}

func TestCreateAndGetAccount(t *testing.T) {
	ledger, _ := newTestLedger(t)

	acc := domain.Account{ID: "Id-123", Balance: decimal.NewFromInt(1000)}
	require.NoError(t, ledger.CreateAccount(acc))

	got, err := ledger.GetAccount("Id-123")
	require.NoError(t, err)
	assert.Equal(t, "Id-123", got.ID)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestCreateAccountDuplicate(t *testing.T) {
	ledger, _ := newTestLedger(t)

	acc := domain.Account{ID: "Id-123", Balance: decimal.NewFromInt(10)}
	require.NoError(t, ledger.CreateAccount(acc))
	require.ErrorIs(t, ledger.CreateAccount(acc), domain.ErrDuplicateAccountID)
}

func TestTransferSendsBothNotifications(t *testing.T) {
	ledger, notifier := newTestLedger(t)

	require.NoError(t, ledger.CreateAccount(domain.Account{ID: "accountFrom", Balance: decimal.NewFromInt(500)}))
	require.NoError(t, ledger.CreateAccount(domain.Account{ID: "accountTo", Balance: decimal.NewFromInt(200)}))

	require.NoError(t, ledger.Transfer("accountFrom", "accountTo", decimal.NewFromInt(100)))

	calls := notifier.snapshot()
	require.Len(t, calls, 2)
	assert.Equal(t, notification{AccountID: "accountFrom", Message: "Transfer completed - Sent 100 to accountTo"}, calls[0])
	assert.Equal(t, notification{AccountID: "accountTo", Message: "Transfer completed - Received 100 from accountFrom"}, calls[1])
}

func TestFailedTransferSendsNoNotifications(t *testing.T) {
	ledger, notifier := newTestLedger(t)

	require.NoError(t, ledger.CreateAccount(domain.Account{ID: "Id-1", Balance: decimal.NewFromInt(50)}))
	require.NoError(t, ledger.CreateAccount(domain.Account{ID: "Id-2", Balance: decimal.NewFromInt(50)}))

	require.ErrorIs(t, ledger.Transfer("Id-1", "Id-2", decimal.NewFromInt(100)), domain.ErrInsufficientBalance)
	require.ErrorIs(t, ledger.Transfer("Id-1", "Id-1", decimal.NewFromInt(10)), domain.ErrSameAccountTransfer)
	require.ErrorIs(t, ledger.Transfer("Id-1", "Id-2", decimal.Zero), domain.ErrInvalidTransferAmount)
	require.ErrorIs(t, ledger.Transfer("Id-1", "missing", decimal.NewFromInt(10)), domain.ErrAccountNotFound)

	assert.Empty(t, notifier.snapshot())
}

func TestTransferPropagatesStoreErrors(t *testing.T) {
	ledger, _ := newTestLedger(t)

	err := ledger.Transfer("a", "b", decimal.NewFromInt(5))
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Mirrors the concurrent scenario from the service's acceptance criteria:
// opposing transfers end at deterministic balances.
func TestConcurrentTransfers(t *testing.T) {
	ledger, notifier := newTestLedger(t)

	require.NoError(t, ledger.CreateAccount(domain.Account{ID: "Id-1", Balance: decimal.NewFromInt(1000)}))
	require.NoError(t, ledger.CreateAccount(domain.Account{ID: "Id-2", Balance: decimal.NewFromInt(1000)}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		require.NoError(t, ledger.Transfer("Id-1", "Id-2", decimal.NewFromInt(500)))
	}()
	go func() {
		defer wg.Done()
		require.NoError(t, ledger.Transfer("Id-2", "Id-1", decimal.NewFromInt(100)))
	}()
	wg.Wait()

	from, err := ledger.GetAccount("Id-1")
	require.NoError(t, err)
	to, err := ledger.GetAccount("Id-2")
	require.NoError(t, err)

	assert.True(t, from.Balance.Equal(decimal.NewFromInt(600)))
	assert.True(t, to.Balance.Equal(decimal.NewFromInt(1400)))
	assert.Len(t, notifier.snapshot(), 4)
}
