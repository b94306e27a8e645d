package usecase

import "context"

// Notifier publishes engagement notification tasks for an out-of-process
// consumer. Satisfied by queue.Client; may be nil when the broker is not
// configured.
type Notifier interface {
	PublishNotificationTask(task map[string]interface{}) error
}

// WatchHistoryStore is the append-only per-user watch sequence. Appends
// are best-effort: a failure must never fail the read that triggered it.
type WatchHistoryStore interface {
	Append(ctx context.Context, userID, videoID string) error
	List(ctx context.Context, userID string) ([]string, error)
}

// PaymentVerifier is the external payment collaborator. The service only
// consumes its verdict; capture and settlement happen elsewhere.
type PaymentVerifier interface {
	IsCaptured(ctx context.Context, paymentID, orderID string) (bool, error)
}
