package models

import "time"

// OrderCreatedEvent signals that an order was created upstream. It carries a
// snapshot of the fields at creation time; the engine re-reads the order record
// before acting so redelivered events stay harmless.
type OrderCreatedEvent struct {
	OrderID        string      `json:"order_id"`
	Status         OrderStatus `json:"status"`
	Category       string      `json:"category"`
	ClientLocation *Location   `json:"client_location,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// OrderAssignedEvent is published once an order has been committed to a master.
type OrderAssignedEvent struct {
	OrderID    string    `json:"order_id"`
	MasterID   string    `json:"master_id"`
	MasterName string    `json:"master_name"`
	DistanceKm float64   `json:"distance_to_master_km"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderUnmatchedEvent is published when no qualified master was found within
// the search radius.
type OrderUnmatchedEvent struct {
	OrderID   string    `json:"order_id"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}
