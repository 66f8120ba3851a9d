package middleware

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// cachedResponse is what we replay when the same Idempotency-Key shows up
// again.
type cachedResponse struct {
	status int
	body   []byte
}

// Idempotency replays the stored response for a repeated Idempotency-Key so
// transport-level retries cannot apply a transfer twice. The cache lives in
// memory next to the account store it protects.
func Idempotency() fiber.Handler {
	var (
		mu   sync.Mutex
		seen = make(map[string]cachedResponse)
	)

	return func(c *fiber.Ctx) error {
		// 1. Get Key from Header
		key := c.Get("Idempotency-Key")

		// If no key, skip
		if key == "" {
			return c.Next()
		}

		// 2. Check if we served this key before
		mu.Lock()
		cached, ok := seen[key]
		mu.Unlock()

		if ok {
			slog.Info("🛑 Idempotency Hit! Returning cached response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", "application/json")
			return c.Status(cached.status).Send(cached.body)
		}

		// 3. Run the Handler
		if err := c.Next(); err != nil {
			return err
		}

		// 4. Save the Result
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		mu.Lock()
		seen[key] = cachedResponse{status: c.Response().StatusCode(), body: body}
		mu.Unlock()

		slog.Info("💾 Idempotency Key Saved", "key", key)
		return nil
	}
}
