package matching

import (
	"context"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

// MatchingUC defines the interface for the matching engine business logic
type MatchingUC interface {
	// ProcessOrderCreated runs one matching pass for a newly created order.
	// It is idempotent: redelivered events for an order that already left
	// pending perform no writes.
	ProcessOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error

	// ProcessLocationUpdate refreshes (or clears) a master's cached location
	ProcessLocationUpdate(ctx context.Context, update models.MasterLocationUpdate) error

	// GetOrderMatch returns the current matching outcome for an order
	GetOrderMatch(ctx context.Context, orderID string) (*models.Order, error)

	// RequeueOrder moves a terminally failed or unmatched order back to
	// pending and republishes its creation event, gated by the retry budget
	RequeueOrder(ctx context.Context, orderID string) (*models.Order, error)
}
