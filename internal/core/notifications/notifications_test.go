package notifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgonzalezans/am-challenge/internal/core/domain"
)

func TestSendWebhook(t *testing.T) {
	var got TransferEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	event := TransferEvent{ID: uuid.New(), Event: "transfer.completed", AccountID: "Id-1", Message: "hi"}
	require.NoError(t, SendWebhook(srv.URL, event))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, "Id-1", got.AccountID)
}

func TestSendWebhookReceiverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := SendWebhook(srv.URL, "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

type fakeQueue struct {
	url     string
	payload interface{}
	accept  bool
}

func (q *fakeQueue) Enqueue(url string, payload interface{}) bool {
	q.url = url
	q.payload = payload
	return q.accept
}

func TestWebhookNotifierBuildsEvent(t *testing.T) {
	q := &fakeQueue{accept: true}
	n := NewWebhookNotifier("http://example.test/hook", q)

	account := domain.Account{ID: "Id-7", Balance: decimal.NewFromInt(100)}
	n.NotifyAboutTransfer(account, "Transfer completed - Sent 10 to Id-8")

	assert.Equal(t, "http://example.test/hook", q.url)

	event, ok := q.payload.(TransferEvent)
	require.True(t, ok)
	assert.Equal(t, "transfer.completed", event.Event)
	assert.Equal(t, "Id-7", event.AccountID)
	assert.Equal(t, "Transfer completed - Sent 10 to Id-8", event.Message)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.False(t, event.Timestamp.IsZero())
}
