package matching

import (
	"context"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

// MatchingGW defines the matching gateways interface
type MatchingGW interface {
	// PublishOrderAssigned announces a committed assignment
	PublishOrderAssigned(ctx context.Context, event models.OrderAssignedEvent) error

	// PublishOrderUnmatched announces that no master could be matched
	PublishOrderUnmatched(ctx context.Context, event models.OrderUnmatchedEvent) error

	// PublishOrderCreated re-emits a creation event for a requeued order so
	// the normal matching path runs again
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}
