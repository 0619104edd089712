package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/china630/bolt-usta-app/internal/pkg/constants"
	"github.com/china630/bolt-usta-app/internal/pkg/logger"
	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

// InitNATSConsumers initializes all NATS consumers for the matching service.
// Order events use a queue group so only one instance processes each event.
func (h *Handler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectOrderCreated, constants.QueueGroupMatching, func(msg *nats.Msg) {
		if err := h.handleOrderCreated(msg.Data); err != nil {
			logger.Error("Error handling order created event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to order created events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectMasterLocation, func(msg *nats.Msg) {
		if err := h.handleMasterLocation(msg.Data); err != nil {
			logger.Error("Error handling master location event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to master location events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleOrderCreated processes order creation events from the order service
func (h *Handler) handleOrderCreated(msg []byte) error {
	var event models.OrderCreatedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal order created event: %w", err)
	}

	logger.Info("Received order created event",
		logger.String("order_id", event.OrderID),
		logger.String("category", event.Category))

	return h.matchingUC.ProcessOrderCreated(context.Background(), event)
}

// handleMasterLocation processes master location reports
func (h *Handler) handleMasterLocation(msg []byte) error {
	var update models.MasterLocationUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		return fmt.Errorf("failed to unmarshal master location update: %w", err)
	}

	return h.matchingUC.ProcessLocationUpdate(context.Background(), update)
}
