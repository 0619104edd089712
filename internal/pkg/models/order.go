package models

import "time"

// OrderStatus represents the current status of an order
type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusAssigned      OrderStatus = "assigned"
	OrderStatusNoMasterFound OrderStatus = "no_master_found"
	OrderStatusErrorMatching OrderStatus = "error_matching"
)

// Order represents a service request awaiting master assignment. Orders are
// created externally; the matching engine only moves them out of pending.
type Order struct {
	ID             string      `json:"order_id" db:"id"`
	Category       string      `json:"category" db:"category"`
	ClientLocation *Location   `json:"client_location,omitempty"`
	Status         OrderStatus `json:"status" db:"status"`
	MasterID       *string     `json:"master_id,omitempty" db:"master_id"`
	MasterName     *string     `json:"master_name,omitempty" db:"master_name"`
	DistanceKm     *float64    `json:"distance_to_master_km,omitempty" db:"distance_to_master_km"`
	ErrorMessage   *string     `json:"error_message,omitempty" db:"error_message"`
	RetryCount     int         `json:"retry_count" db:"retry_count"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderDTO is used for database operations to flatten the nested client
// location and keep NULL handling in one place.
type OrderDTO struct {
	ID              string      `db:"id"`
	Category        string      `db:"category"`
	ClientLatitude  *float64    `db:"client_latitude"`
	ClientLongitude *float64    `db:"client_longitude"`
	Status          OrderStatus `db:"status"`
	MasterID        *string     `db:"master_id"`
	MasterName      *string     `db:"master_name"`
	DistanceKm      *float64    `db:"distance_to_master_km"`
	ErrorMessage    *string     `db:"error_message"`
	RetryCount      int         `db:"retry_count"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

// ToOrder converts an OrderDTO to an Order
func (dto *OrderDTO) ToOrder() *Order {
	order := &Order{
		ID:           dto.ID,
		Category:     dto.Category,
		Status:       dto.Status,
		MasterID:     dto.MasterID,
		MasterName:   dto.MasterName,
		DistanceKm:   dto.DistanceKm,
		ErrorMessage: dto.ErrorMessage,
		RetryCount:   dto.RetryCount,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}

	if dto.ClientLatitude != nil && dto.ClientLongitude != nil {
		order.ClientLocation = &Location{
			Latitude:  *dto.ClientLatitude,
			Longitude: *dto.ClientLongitude,
		}
	}

	return order
}
