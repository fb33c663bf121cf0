package models

import (
	"time"

	"github.com/google/uuid"
)

type InventoryTransactionType string

const (
	TxStockIn    InventoryTransactionType = "stock_in"
	TxStockOut   InventoryTransactionType = "stock_out"
	TxAdjustment InventoryTransactionType = "adjustment"
	TxReturn     InventoryTransactionType = "return"
	TxDamage     InventoryTransactionType = "damage"
)

// Inventory tracks per-shop stock of one product.
type Inventory struct {
	ID                uuid.UUID  `json:"id"`
	ProductID         uuid.UUID  `json:"productId"`
	ShopID            uuid.UUID  `json:"shopId"`
	Quantity          int        `json:"quantity"`
	ReservedQuantity  int        `json:"reservedQuantity"`
	LowStockThreshold int        `json:"lowStockThreshold"`
	ReorderPoint      int        `json:"reorderPoint"`
	MaxStock          *int       `json:"maxStock,omitempty"`
	LastRestockedAt   *time.Time `json:"lastRestockedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func (i *Inventory) AvailableQuantity() int {
	return i.Quantity - i.ReservedQuantity
}

func (i *Inventory) IsLowStock() bool {
	return i.AvailableQuantity() <= i.LowStockThreshold
}

func (i *Inventory) NeedsReorder() bool {
	return i.AvailableQuantity() <= i.ReorderPoint
}

// InventoryTransaction is an append-only ledger row recording one stock
// movement with its before/after quantities.
type InventoryTransaction struct {
	ID               uuid.UUID                `json:"id"`
	InventoryID      uuid.UUID                `json:"inventoryId"`
	Type             InventoryTransactionType `json:"type"`
	Quantity         int                      `json:"quantity"`
	PreviousQuantity int                      `json:"previousQuantity"`
	NewQuantity      int                      `json:"newQuantity"`
	Reason           *string                  `json:"reason,omitempty"`
	ReferenceID      *uuid.UUID               `json:"referenceId,omitempty"`
	PerformedBy      *uuid.UUID               `json:"performedBy,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
}
