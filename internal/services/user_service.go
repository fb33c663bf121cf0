package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return users, nil
}

// UpdateProfile applies partial updates to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req dtos.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, utils.Internal(err)
	}
	return user, nil
}

// UpdateRole is admin-only; the route guard enforces that.
func (s *UserService) UpdateRole(ctx context.Context, id uuid.UUID, role models.UserRole) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, utils.BadRequest(utils.ErrCodeValidation, "Invalid role")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithFields(map[string]interface{}{
		"userId": id,
		"role":   role,
	}).Info("User role updated")
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return utils.Internal(err)
	}
	return nil
}
