package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/china630/bolt-usta-app/internal/pkg/constants"
	"github.com/china630/bolt-usta-app/internal/pkg/logger"
	"github.com/china630/bolt-usta-app/internal/pkg/models"
	natspkg "github.com/china630/bolt-usta-app/internal/pkg/nats"
	"github.com/china630/bolt-usta-app/services/matching"
)

// matchingGW handles matching gateway operations over NATS
type matchingGW struct {
	natsClient *natspkg.Client
}

// NewMatchingGW creates a new NATS gateway instance
func NewMatchingGW(client *natspkg.Client) matching.MatchingGW {
	return &matchingGW{
		natsClient: client,
	}
}

// PublishOrderAssigned publishes an order assigned event
func (g *matchingGW) PublishOrderAssigned(ctx context.Context, event models.OrderAssignedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order assigned event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectOrderAssigned, data); err != nil {
		return fmt.Errorf("failed to publish order assigned event: %w", err)
	}

	logger.Debug("Published order assigned event",
		logger.String("order_id", event.OrderID),
		logger.String("master_id", event.MasterID))

	return nil
}

// PublishOrderUnmatched publishes an order unmatched event
func (g *matchingGW) PublishOrderUnmatched(ctx context.Context, event models.OrderUnmatchedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order unmatched event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectOrderUnmatched, data); err != nil {
		return fmt.Errorf("failed to publish order unmatched event: %w", err)
	}

	logger.Debug("Published order unmatched event",
		logger.String("order_id", event.OrderID))

	return nil
}

// PublishOrderCreated re-emits a creation event for a requeued order
func (g *matchingGW) PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectOrderCreated, data); err != nil {
		return fmt.Errorf("failed to publish order created event: %w", err)
	}

	return nil
}
