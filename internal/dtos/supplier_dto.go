package dtos

import "github.com/google/uuid"

type CreateSupplierRequest struct {
	CompanyName  string  `json:"companyName" validate:"required,min=2,max=200"`
	Description  *string `json:"description,omitempty"`
	ContactEmail string  `json:"contactEmail" validate:"required,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=7"`
	Address      *string `json:"address,omitempty"`
}

type UpdateSupplierRequest struct {
	CompanyName  *string `json:"companyName,omitempty" validate:"omitempty,min=2,max=200"`
	Description  *string `json:"description,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=7"`
	Address      *string `json:"address,omitempty"`
	Verified     *bool   `json:"verified,omitempty"`
}

type SupplierOrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	UnitCost  float64   `json:"unitCost" validate:"required,gt=0"`
}

type CreateSupplierOrderRequest struct {
	SupplierID uuid.UUID                  `json:"supplierId" validate:"required"`
	Notes      *string                    `json:"notes,omitempty"`
	Items      []SupplierOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateSupplierOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped received cancelled"`
}
