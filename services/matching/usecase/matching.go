package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/china630/bolt-usta-app/internal/pkg/geo"
	"github.com/china630/bolt-usta-app/internal/pkg/logger"
	"github.com/china630/bolt-usta-app/internal/pkg/models"
	"github.com/china630/bolt-usta-app/services/matching"
)

// ProcessOrderCreated runs one matching pass for a newly created order: load,
// guard, retrieve candidates, pick the nearest qualified master within the
// search radius and commit the outcome. Every failure past the guards ends in
// a terminal order state; only a failure writing that state itself is
// log-only.
func (uc *MatchingUC) ProcessOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	order, err := uc.orderRepo.GetOrder(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, matching.ErrOrderNotFound) {
			logger.Warn("Order from event does not exist, skipping",
				logger.String("order_id", event.OrderID))
			return nil
		}
		return uc.failOrder(ctx, event.OrderID, fmt.Errorf("failed to load order: %w", err))
	}

	// Idempotency guard: redelivered events for an order that already left
	// pending perform no writes.
	if order.Status != models.OrderStatusPending {
		logger.Debug("Order is not pending, skipping",
			logger.String("order_id", order.ID),
			logger.String("status", string(order.Status)))
		return nil
	}

	if order.ClientLocation == nil {
		logger.Debug("Order has no client location, skipping",
			logger.String("order_id", order.ID))
		return nil
	}

	logger.Info("Searching master for order",
		logger.String("order_id", order.ID),
		logger.String("category", order.Category))

	masters, err := uc.masterRepo.FindAvailableByCategory(ctx, order.Category)
	if err != nil {
		return uc.failOrder(ctx, order.ID, fmt.Errorf("failed to find candidate masters: %w", err))
	}

	candidates := rankCandidates(*order.ClientLocation, masters, uc.cfg.Match.SearchRadiusKm)

	for _, candidate := range candidates {
		err := uc.orderRepo.AssignOrder(ctx, order.ID, candidate)
		switch {
		case err == nil:
			logger.Info("Assigned nearest master to order",
				logger.String("order_id", order.ID),
				logger.String("master_id", candidate.MasterID),
				logger.String("master_name", candidate.Name),
				logger.Float64("distance_km", candidate.DistanceKm))

			uc.publishAssigned(ctx, order.ID, candidate)
			return nil

		case errors.Is(err, matching.ErrMasterClaimed):
			// Another order won this master between retrieval and commit;
			// fall back to the next nearest candidate.
			logger.Debug("Master claimed concurrently, trying next candidate",
				logger.String("order_id", order.ID),
				logger.String("master_id", candidate.MasterID))
			continue

		case errors.Is(err, matching.ErrOrderNotPending):
			// A concurrent invocation finished this order first
			logger.Debug("Order left pending during commit, skipping",
				logger.String("order_id", order.ID))
			return nil

		default:
			return uc.failOrder(ctx, order.ID, fmt.Errorf("failed to commit assignment: %w", err))
		}
	}

	// No qualified master in radius, or every claim lost
	if err := uc.orderRepo.MarkUnmatched(ctx, order.ID); err != nil {
		if errors.Is(err, matching.ErrOrderNotPending) {
			return nil
		}
		return uc.failOrder(ctx, order.ID, fmt.Errorf("failed to mark order unmatched: %w", err))
	}

	logger.Info("No master found within search radius",
		logger.String("order_id", order.ID),
		logger.String("category", order.Category),
		logger.Float64("radius_km", uc.cfg.Match.SearchRadiusKm))

	uc.publishUnmatched(ctx, order.ID, order.Category)
	return nil
}

// rankCandidates scores each eligible master by haversine distance to the
// client and returns those within the search radius, nearest first. Masters
// without a name or a cached location are excluded from scoring. Equidistant
// candidates are ordered by master ID so the pick stays deterministic across
// differently-ordered query results.
func rankCandidates(client models.Location, masters []*models.Master, radiusKm float64) []models.Candidate {
	candidates := make([]models.Candidate, 0, len(masters))

	for _, master := range masters {
		if master.Name == "" || master.LastLocation == nil {
			continue
		}

		distance := geo.Distance(client, *master.LastLocation)
		if distance > radiusKm {
			continue
		}

		candidates = append(candidates, models.Candidate{
			MasterID:   master.ID,
			Name:       master.Name,
			Location:   *master.LastLocation,
			DistanceKm: distance,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].MasterID < candidates[j].MasterID
	})

	return candidates
}

// failOrder records a processing failure as the order's terminal state. When
// that write itself fails there is nothing left to write to, so it is logged
// only; NATS redelivery plus the pending guard is the retry path.
func (uc *MatchingUC) failOrder(ctx context.Context, orderID string, cause error) error {
	logger.Error("Matching failed for order",
		logger.String("order_id", orderID),
		logger.Err(cause))

	if err := uc.orderRepo.MarkError(ctx, orderID, cause.Error()); err != nil {
		if !errors.Is(err, matching.ErrOrderNotPending) {
			logger.Error("Failed to record matching error state",
				logger.String("order_id", orderID),
				logger.Err(err))
		}
	}

	return cause
}

func (uc *MatchingUC) publishAssigned(ctx context.Context, orderID string, candidate models.Candidate) {
	event := models.OrderAssignedEvent{
		OrderID:    orderID,
		MasterID:   candidate.MasterID,
		MasterName: candidate.Name,
		DistanceKm: candidate.DistanceKm,
		Timestamp:  time.Now(),
	}

	// The order record is the source of truth; a lost event is log-only
	if err := uc.matchGW.PublishOrderAssigned(ctx, event); err != nil {
		logger.Warn("Failed to publish order assigned event",
			logger.String("order_id", orderID),
			logger.Err(err))
	}
}

func (uc *MatchingUC) publishUnmatched(ctx context.Context, orderID, category string) {
	event := models.OrderUnmatchedEvent{
		OrderID:   orderID,
		Category:  category,
		Timestamp: time.Now(),
	}

	if err := uc.matchGW.PublishOrderUnmatched(ctx, event); err != nil {
		logger.Warn("Failed to publish order unmatched event",
			logger.String("order_id", orderID),
			logger.Err(err))
	}
}

// GetOrderMatch returns the current matching outcome for an order
func (uc *MatchingUC) GetOrderMatch(ctx context.Context, orderID string) (*models.Order, error) {
	return uc.orderRepo.GetOrder(ctx, orderID)
}
