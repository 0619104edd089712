package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/china630/bolt-usta-app/internal/pkg/logger"
	"github.com/china630/bolt-usta-app/internal/pkg/models"
	"github.com/china630/bolt-usta-app/services/matching"
)

// RequeueOrder moves an order stuck in no_master_found or error_matching back
// to pending and republishes its creation event so the normal matching path
// runs again. The transition is gated by the retry budget to avoid infinite
// reprocessing loops.
func (uc *MatchingUC) RequeueOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusNoMasterFound && order.Status != models.OrderStatusErrorMatching {
		return nil, fmt.Errorf("%w: status is %s", matching.ErrOrderNotRequeueable, order.Status)
	}

	if order.RetryCount >= uc.cfg.Match.MaxRetries {
		return nil, fmt.Errorf("%w: %d retries used", matching.ErrRetriesExhausted, order.RetryCount)
	}

	requeued, err := uc.orderRepo.Requeue(ctx, orderID, uc.cfg.Match.MaxRetries)
	if err != nil {
		return nil, err
	}

	logger.Info("Requeued order for matching",
		logger.String("order_id", requeued.ID),
		logger.Int("retry_count", requeued.RetryCount))

	event := models.OrderCreatedEvent{
		OrderID:        requeued.ID,
		Status:         requeued.Status,
		Category:       requeued.Category,
		ClientLocation: requeued.ClientLocation,
		CreatedAt:      time.Now(),
	}
	if err := uc.matchGW.PublishOrderCreated(ctx, event); err != nil {
		// The order is already pending again; an operator can republish
		logger.Error("Failed to republish order created event",
			logger.String("order_id", requeued.ID),
			logger.Err(err))
	}

	return requeued, nil
}
