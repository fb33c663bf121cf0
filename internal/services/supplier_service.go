package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type SupplierService struct {
	suppliers repositories.SupplierRepository
}

func NewSupplierService(suppliers repositories.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// CreateProfile registers the caller's supplier profile; a user gets at
// most one.
func (s *SupplierService) CreateProfile(ctx context.Context, userID uuid.UUID, req dtos.CreateSupplierRequest) (*models.Supplier, error) {
	existing, err := s.suppliers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if existing != nil {
		return nil, utils.Conflict("Supplier profile already exists for this user")
	}

	supplier := &models.Supplier{
		ID:           uuid.New(),
		UserID:       userID,
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		ContactEmail: normalizeEmail(req.ContactEmail),
		Phone:        req.Phone,
		Address:      req.Address,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithField("supplierId", supplier.ID).Info("Supplier profile created")
	return supplier, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if supplier == nil {
		return nil, utils.NotFound("Supplier not found")
	}
	return supplier, nil
}

func (s *SupplierService) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.suppliers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if supplier == nil {
		return nil, utils.NotFound("Supplier profile not found")
	}
	return supplier, nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return suppliers, nil
}

// UpdateProfile edits the caller's profile. The verified flag is only
// settable by admins.
func (s *SupplierService) UpdateProfile(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, req dtos.UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(actor, supplier.UserID); err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		supplier.CompanyName = *req.CompanyName
	}
	if req.Description != nil {
		supplier.Description = req.Description
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = normalizeEmail(*req.ContactEmail)
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	if req.Address != nil {
		supplier.Address = req.Address
	}
	if req.Verified != nil {
		if actor.Role != models.RoleAdmin {
			return nil, utils.Forbidden("Only admins can verify suppliers")
		}
		supplier.Verified = *req.Verified
	}

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, utils.Internal(err)
	}
	return supplier, nil
}
