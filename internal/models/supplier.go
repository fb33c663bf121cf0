package models

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	CompanyName  string    `json:"companyName"`
	Description  *string   `json:"description,omitempty"`
	ContactEmail string    `json:"contactEmail"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SupplierOrderStatus string

const (
	SupplierOrderPending   SupplierOrderStatus = "pending"
	SupplierOrderConfirmed SupplierOrderStatus = "confirmed"
	SupplierOrderShipped   SupplierOrderStatus = "shipped"
	SupplierOrderReceived  SupplierOrderStatus = "received"
	SupplierOrderCancelled SupplierOrderStatus = "cancelled"
)

// SupplierOrder is a shop's restocking order against a supplier.
// Receiving it is the stock_in path into inventory.
type SupplierOrder struct {
	ID          uuid.UUID           `json:"id"`
	ShopID      uuid.UUID           `json:"shopId"`
	SupplierID  uuid.UUID           `json:"supplierId"`
	OrderNumber string              `json:"orderNumber"`
	Status      SupplierOrderStatus `json:"status"`
	Total       float64             `json:"total"`
	Notes       *string             `json:"notes,omitempty"`
	Items       []SupplierOrderItem `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func (so *SupplierOrder) CanTransitionTo(next SupplierOrderStatus) bool {
	switch next {
	case SupplierOrderConfirmed:
		return so.Status == SupplierOrderPending
	case SupplierOrderShipped:
		return so.Status == SupplierOrderConfirmed
	case SupplierOrderReceived:
		return so.Status == SupplierOrderShipped
	case SupplierOrderCancelled:
		return so.Status == SupplierOrderPending || so.Status == SupplierOrderConfirmed
	}
	return false
}

type SupplierOrderItem struct {
	ID              uuid.UUID `json:"id"`
	SupplierOrderID uuid.UUID `json:"supplierOrderId"`
	ProductID       uuid.UUID `json:"productId"`
	Quantity        int       `json:"quantity"`
	UnitCost        float64   `json:"unitCost"`
	TotalCost       float64   `json:"totalCost"`
	CreatedAt       time.Time `json:"createdAt"`
}
