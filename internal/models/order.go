package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	ShopID      uuid.UUID   `json:"shopId"`
	OrderNumber string      `json:"orderNumber"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	Notes       *string     `json:"notes,omitempty"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CanTransitionTo enforces the forward-only order lifecycle; cancellation
// is allowed until the order has shipped.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	switch next {
	case OrderProcessing:
		return o.Status == OrderPending
	case OrderShipped:
		return o.Status == OrderProcessing
	case OrderDelivered:
		return o.Status == OrderShipped
	case OrderCancelled:
		return o.Status == OrderPending || o.Status == OrderProcessing
	}
	return false
}

// OrderItem snapshots the unit price at the time the order was placed.
type OrderItem struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"orderId"`
	ProductID  uuid.UUID `json:"productId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}
