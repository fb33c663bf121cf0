package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type ReviewService struct {
	reviews  repositories.ReviewRepository
	products repositories.ProductRepository
}

func NewReviewService(reviews repositories.ReviewRepository, products repositories.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// CreateReview adds one review per user per product.
func (s *ReviewService) CreateReview(ctx context.Context, userID, productID uuid.UUID, req dtos.CreateReviewRequest) (*models.Review, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if product == nil {
		return nil, utils.NotFound("Product not found")
	}

	existing, err := s.reviews.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if existing != nil {
		return nil, utils.Conflict("You have already reviewed this product")
	}

	review := &models.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, utils.Internal(err)
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.Review, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return reviews, nil
}

// UpdateReview only allows the author to edit; admins may edit or
// remove anything.
func (s *ReviewService) UpdateReview(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, req dtos.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.getOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = req.Title
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, utils.Internal(err)
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID, actor AuthenticatedUser) error {
	review, err := s.getOwned(ctx, id, actor)
	if err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, review.ID); err != nil {
		return utils.Internal(err)
	}
	return nil
}

func (s *ReviewService) getOwned(ctx context.Context, id uuid.UUID, actor AuthenticatedUser) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if review == nil {
		return nil, utils.NotFound("Review not found")
	}
	if err := requireOwnerOrAdmin(actor, review.UserID); err != nil {
		return nil, err
	}
	return review, nil
}
