package dtos

type AdjustStockRequest struct {
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Type     string  `json:"type" validate:"required,oneof=stock_in stock_out adjustment return damage"`
	Reason   *string `json:"reason,omitempty"`
}

type UpdateInventoryRequest struct {
	LowStockThreshold *int `json:"lowStockThreshold,omitempty" validate:"omitempty,gte=0"`
	ReorderPoint      *int `json:"reorderPoint,omitempty" validate:"omitempty,gte=0"`
	MaxStock          *int `json:"maxStock,omitempty" validate:"omitempty,gt=0"`
}

type ReserveStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}
