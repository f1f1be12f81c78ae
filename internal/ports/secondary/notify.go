package secondary

import "context"

// Notifier defines the secondary port for outbound notifications
// (morning briefing, weekly review). Delivery failures are surfaced as
// errors; the core never retries internally.
type Notifier interface {
	// Send delivers a message with a short title.
	Send(ctx context.Context, title, message string) error
}
