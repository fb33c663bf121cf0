package dtos

type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=7"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=shopper shop_owner supplier admin"`
}
