package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

func TestAdminHoldsEveryPermission(t *testing.T) {
	for _, p := range allPermissions {
		assert.True(t, RoleHasPermission(models.RoleAdmin, p), "admin missing %s", p)
	}
}

func TestShopOwnerSupersetOfShopper(t *testing.T) {
	for _, p := range RolePermissions(models.RoleShopper) {
		assert.True(t, RoleHasPermission(models.RoleShopOwner, p), "shop_owner missing shopper permission %s", p)
	}
}

func TestShopperCannotManageShops(t *testing.T) {
	assert.False(t, RoleHasPermission(models.RoleShopper, ShopCreate))
	assert.False(t, RoleHasPermission(models.RoleShopper, ProductCreate))
	assert.False(t, RoleHasPermission(models.RoleShopper, AdminAccess))
	assert.False(t, RoleHasPermission(models.RoleShopper, InventoryUpdate))
}

func TestRoleHasAllIsConjunction(t *testing.T) {
	assert.True(t, RoleHasAll(models.RoleShopOwner, ShopCreate, ProductCreate, InventoryRead))
	// One missing permission fails the whole check.
	assert.False(t, RoleHasAll(models.RoleShopOwner, ShopCreate, AdminAccess))
	assert.False(t, RoleHasAll(models.RoleShopper, CartRead, ShopCreate))
}

func TestUnknownRoleHasNothing(t *testing.T) {
	assert.False(t, RoleHasPermission(models.UserRole("ghost"), ProductRead))
	assert.False(t, RoleHasAll(models.UserRole("ghost"), ProductRead))
}

func TestSupplierScope(t *testing.T) {
	assert.True(t, RoleHasPermission(models.RoleSupplier, SupplierOrderUpdate))
	assert.True(t, RoleHasPermission(models.RoleSupplier, InventoryUpdate))
	assert.False(t, RoleHasPermission(models.RoleSupplier, OrderCreate))
	assert.False(t, RoleHasPermission(models.RoleSupplier, ShopCreate))
}
