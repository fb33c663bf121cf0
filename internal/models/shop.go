package models

import (
	"time"

	"github.com/google/uuid"
)

type ShopStatus string

const (
	ShopPending   ShopStatus = "pending"
	ShopActive    ShopStatus = "active"
	ShopSuspended ShopStatus = "suspended"
	ShopClosed    ShopStatus = "closed"
)

type Shop struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	LogoURL     *string    `json:"logoUrl,omitempty"`
	BannerURL   *string    `json:"bannerUrl,omitempty"`
	Status      ShopStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
