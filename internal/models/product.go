package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductDraft        ProductStatus = "draft"
	ProductActive       ProductStatus = "active"
	ProductOutOfStock   ProductStatus = "out_of_stock"
	ProductDiscontinued ProductStatus = "discontinued"
)

type Product struct {
	ID           uuid.UUID     `json:"id"`
	ShopID       uuid.UUID     `json:"shopId"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  *string       `json:"description,omitempty"`
	Price        float64       `json:"price"`
	ComparePrice *float64      `json:"comparePrice,omitempty"`
	SKU          string        `json:"sku"`
	StockQty     int           `json:"stockQty"`
	Status       ProductStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (p *Product) IsOnSale() bool {
	return p.ComparePrice != nil && *p.ComparePrice > p.Price
}

func (p *Product) IsInStock() bool {
	return p.StockQty > 0 && p.Status == ProductActive
}
