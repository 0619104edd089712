package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
	"github.com/china630/bolt-usta-app/services/matching"
)

const orderColumns = `
	id, category,
	(client_location[0])::float8 AS client_longitude,
	(client_location[1])::float8 AS client_latitude,
	status, master_id, master_name, distance_to_master_km,
	error_message, retry_count, created_at, updated_at
`

// OrderRepo implements the order repository interface on PostgreSQL
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetOrder retrieves an order by ID
func (r *OrderRepo) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	var dto models.OrderDTO
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&dto.ID, &dto.Category,
		&dto.ClientLongitude, &dto.ClientLatitude,
		&dto.Status, &dto.MasterID, &dto.MasterName, &dto.DistanceKm,
		&dto.ErrorMessage, &dto.RetryCount, &dto.CreatedAt, &dto.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, matching.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return dto.ToOrder(), nil
}

// AssignOrder claims the candidate's availability and commits the assignment
// in a single transaction. Either both records change or neither does.
func (r *OrderRepo) AssignOrder(ctx context.Context, orderID string, candidate models.Candidate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	claim, err := tx.ExecContext(ctx,
		`UPDATE masters SET is_available = false, updated_at = now()
		 WHERE id = $1 AND is_available = true`,
		candidate.MasterID,
	)
	if err != nil {
		return fmt.Errorf("failed to claim master: %w", err)
	}
	if rows, _ := claim.RowsAffected(); rows == 0 {
		return matching.ErrMasterClaimed
	}

	assign, err := tx.ExecContext(ctx,
		`UPDATE orders
		 SET status = $2, master_id = $3, master_name = $4,
		     distance_to_master_km = $5, updated_at = now()
		 WHERE id = $1 AND status = $6`,
		orderID,
		models.OrderStatusAssigned,
		candidate.MasterID,
		candidate.Name,
		roundDistance(candidate.DistanceKm),
		models.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to assign order: %w", err)
	}
	if rows, _ := assign.RowsAffected(); rows == 0 {
		// Rollback releases the claimed master again
		return matching.ErrOrderNotPending
	}

	return tx.Commit()
}

// MarkUnmatched moves a pending order to no_master_found
func (r *OrderRepo) MarkUnmatched(ctx context.Context, orderID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = now()
		 WHERE id = $1 AND status = $3`,
		orderID, models.OrderStatusNoMasterFound, models.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to mark order unmatched: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return matching.ErrOrderNotPending
	}

	return nil
}

// MarkError moves a pending order to error_matching with a diagnostic message
func (r *OrderRepo) MarkError(ctx context.Context, orderID string, message string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2, error_message = $3, updated_at = now()
		 WHERE id = $1 AND status = $4`,
		orderID, models.OrderStatusErrorMatching, message, models.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to mark order errored: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return matching.ErrOrderNotPending
	}

	return nil
}

// Requeue moves a terminal order back to pending and bumps its retry counter
func (r *OrderRepo) Requeue(ctx context.Context, orderID string, maxRetries int) (*models.Order, error) {
	query := fmt.Sprintf(`
		UPDATE orders
		SET status = $2, master_id = NULL, master_name = NULL,
		    distance_to_master_km = NULL, error_message = NULL,
		    retry_count = retry_count + 1, updated_at = now()
		WHERE id = $1
		  AND status IN ($3, $4)
		  AND retry_count < $5
		RETURNING %s`, orderColumns)

	var dto models.OrderDTO
	err := r.db.QueryRowContext(ctx, query,
		orderID,
		models.OrderStatusPending,
		models.OrderStatusNoMasterFound,
		models.OrderStatusErrorMatching,
		maxRetries,
	).Scan(
		&dto.ID, &dto.Category,
		&dto.ClientLongitude, &dto.ClientLatitude,
		&dto.Status, &dto.MasterID, &dto.MasterName, &dto.DistanceKm,
		&dto.ErrorMessage, &dto.RetryCount, &dto.CreatedAt, &dto.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, matching.ErrOrderNotRequeueable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to requeue order: %w", err)
	}

	return dto.ToOrder(), nil
}

// roundDistance rounds to one decimal place for display
func roundDistance(km float64) float64 {
	return math.Round(km*10) / 10
}
