package dtos

type CreateProductRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=200"`
	Slug         string   `json:"slug" validate:"required,min=2,max=200"`
	SKU          string   `json:"sku" validate:"required,min=2,max=64"`
	Description  *string  `json:"description,omitempty"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	ComparePrice *float64 `json:"comparePrice,omitempty" validate:"omitempty,gt=0"`
	StockQty     int      `json:"stockQty" validate:"gte=0"`
	ImageURL     *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	ComparePrice *float64 `json:"comparePrice,omitempty" validate:"omitempty,gt=0"`
	ImageURL     *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=draft active out_of_stock discontinued"`
}
