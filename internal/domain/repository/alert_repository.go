package repository

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
)

// AlertRepository persists SOS alerts and their frozen recipient sets.
type AlertRepository interface {
	// Create stores the alert together with its recipient rows in one
	// transaction. The recipient set never changes afterwards.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID loads the alert with its recipients.
	FindByID(ctx context.Context, id string) (*entity.Alert, error)

	// ListForRecipient returns alerts addressed to the user, newest first
	// (created_at descending, id as tiebreak). Alerts the user raised
	// themselves are excluded at query time.
	ListForRecipient(ctx context.Context, userID string) ([]entity.Alert, error)

	// ListBySender returns alerts raised by the user, newest first.
	ListBySender(ctx context.Context, senderID string) ([]entity.Alert, error)

	// DeleteBySender deletes the alert and its recipients only when
	// senderID raised it. Returns ErrAlertNotFound when no such alert
	// belongs to the sender.
	DeleteBySender(ctx context.Context, alertID, senderID string) error

	// Acknowledge flips the recipient row for (alertID, contactID) from
	// unacknowledged to acknowledged in a single conditional update,
	// stamping ackedAt as the acknowledgment time. Returns the number of
	// rows changed: 1 on success, 0 when the row is missing or already
	// acknowledged.
	Acknowledge(ctx context.Context, alertID, contactID string, ackedAt time.Time) (int64, error)
}
