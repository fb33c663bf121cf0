package dtos

type CreateOrderRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}
