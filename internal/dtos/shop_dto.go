package dtos

type CreateShopRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Slug        string  `json:"slug" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
	BannerURL   *string `json:"bannerUrl,omitempty" validate:"omitempty,url"`
}

type UpdateShopRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
	BannerURL   *string `json:"bannerUrl,omitempty" validate:"omitempty,url"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending active suspended closed"`
}
