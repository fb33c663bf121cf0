package dtos

type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
