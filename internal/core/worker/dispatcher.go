package worker

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// maxAttempts before a job is dropped for good.
const maxAttempts = 5

// SendFunc delivers one payload to one URL.
type SendFunc func(url string, payload interface{}) error

type job struct {
	ID       uuid.UUID
	URL      string
	Payload  interface{}
	Attempts int
}

// Dispatcher delivers webhook jobs in the background, retrying failures
// with a growing delay. The queue lives in memory, so jobs do not survive a
// restart; delivery is best-effort by contract.
type Dispatcher struct {
	jobs chan job
	send SendFunc
	done chan struct{}

	// Backoff computes the delay before retry number attempts. Override
	// before Start to speed tests up.
	Backoff func(attempts int) time.Duration
}

func NewDispatcher(queueSize int, send SendFunc) *Dispatcher {
	return &Dispatcher{
		jobs: make(chan job, queueSize),
		send: send,
		done: make(chan struct{}),
		Backoff: func(attempts int) time.Duration {
			return time.Duration(attempts*10+10) * time.Second
		},
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	go func() {
		slog.Info("👷 Notification dispatcher started")
		for {
			select {
			case <-d.done:
				return
			case j := <-d.jobs:
				d.process(j)
			}
		}
	}()
}

// Stop shuts the worker down. Queued and in-flight jobs are abandoned.
func (d *Dispatcher) Stop() {
	close(d.done)
}

// Enqueue hands a payload to the dispatcher. Returns false when the
// dispatcher is stopped or the queue is full; the job is dropped in both
// cases.
func (d *Dispatcher) Enqueue(url string, payload interface{}) bool {
	select {
	case <-d.done:
		return false
	default:
	}

	j := job{ID: uuid.New(), URL: url, Payload: payload}
	select {
	case d.jobs <- j:
		return true
	default:
		slog.Warn("Notification queue full, dropping job", "job_id", j.ID)
		return false
	}
}

func (d *Dispatcher) process(j job) {
	err := d.send(j.URL, j.Payload)
	if err == nil {
		slog.Info("✅ Notification delivered", "job_id", j.ID, "attempts", j.Attempts+1)
		return
	}

	j.Attempts++
	if j.Attempts >= maxAttempts {
		slog.Error("Notification dropped (max attempts reached)", "job_id", j.ID, "error", err)
		return
	}

	delay := d.Backoff(j.Attempts)
	slog.Warn("Notification failed, scheduling retry", "job_id", j.ID, "attempts", j.Attempts, "retry_in", delay, "error", err)
	time.AfterFunc(delay, func() {
		select {
		case <-d.done:
		case d.jobs <- j:
		default:
			slog.Warn("Notification queue full, dropping retry", "job_id", j.ID)
		}
	})
}
