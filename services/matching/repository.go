package matching

import (
	"context"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

// OrderRepo defines the interface for order data access operations
type OrderRepo interface {
	// GetOrder retrieves an order by ID
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// AssignOrder atomically claims the candidate's availability and commits
	// the assignment. Returns ErrMasterClaimed when another order already took
	// the master, ErrOrderNotPending when the order left pending in the
	// meantime.
	AssignOrder(ctx context.Context, orderID string, candidate models.Candidate) error

	// MarkUnmatched moves a pending order to no_master_found
	MarkUnmatched(ctx context.Context, orderID string) error

	// MarkError moves a pending order to error_matching with a diagnostic message
	MarkError(ctx context.Context, orderID string, message string) error

	// Requeue moves a terminal order back to pending, incrementing its retry
	// counter. Returns ErrRetriesExhausted or ErrOrderNotRequeueable when the
	// transition is not allowed.
	Requeue(ctx context.Context, orderID string, maxRetries int) (*models.Order, error)
}

// MasterRepo defines the read interface over the externally owned master records
type MasterRepo interface {
	// FindAvailableByCategory returns every available master whose
	// specializations contain the category, with last known locations filled
	// in from the location cache (nil when never reported).
	FindAvailableByCategory(ctx context.Context, category string) ([]*models.Master, error)

	// UpdateLocation refreshes a master's entry in the location cache
	UpdateLocation(ctx context.Context, masterID string, location *models.Location) error

	// RemoveLocation drops a master from the location cache
	RemoveLocation(ctx context.Context, masterID string) error
}
