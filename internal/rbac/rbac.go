// Package rbac defines the static role -> permission mapping evaluated on
// every authenticated request. The table is built once at init and never
// mutated; lookups are pure functions of (role, permission).
package rbac

import (
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

type Permission string

const (
	UserRead   Permission = "user:read"
	UserCreate Permission = "user:create"
	UserUpdate Permission = "user:update"
	UserDelete Permission = "user:delete"

	ShopRead        Permission = "shop:read"
	ShopCreate      Permission = "shop:create"
	ShopUpdate      Permission = "shop:update"
	ShopDelete      Permission = "shop:delete"
	ShopManageStaff Permission = "shop:manage_staff"

	ProductRead   Permission = "product:read"
	ProductCreate Permission = "product:create"
	ProductUpdate Permission = "product:update"
	ProductDelete Permission = "product:delete"

	OrderRead   Permission = "order:read"
	OrderCreate Permission = "order:create"
	OrderUpdate Permission = "order:update"
	OrderCancel Permission = "order:cancel"

	CartRead   Permission = "cart:read"
	CartUpdate Permission = "cart:update"

	ReviewRead   Permission = "review:read"
	ReviewCreate Permission = "review:create"
	ReviewUpdate Permission = "review:update"
	ReviewDelete Permission = "review:delete"

	SupplierRead        Permission = "supplier:read"
	SupplierCreate      Permission = "supplier:create"
	SupplierUpdate      Permission = "supplier:update"
	SupplierDelete      Permission = "supplier:delete"
	SupplierOrderCreate Permission = "supplier_order:create"
	SupplierOrderUpdate Permission = "supplier_order:update"

	InventoryRead   Permission = "inventory:read"
	InventoryUpdate Permission = "inventory:update"

	AnalyticsRead   Permission = "analytics:read"
	AnalyticsExport Permission = "analytics:export"

	AdminAccess        Permission = "admin:access"
	AdminManageUsers   Permission = "admin:manage_users"
	AdminManageShops   Permission = "admin:manage_shops"
	AdminViewAllOrders Permission = "admin:view_all_orders"
)

var allPermissions = []Permission{
	UserRead, UserCreate, UserUpdate, UserDelete,
	ShopRead, ShopCreate, ShopUpdate, ShopDelete, ShopManageStaff,
	ProductRead, ProductCreate, ProductUpdate, ProductDelete,
	OrderRead, OrderCreate, OrderUpdate, OrderCancel,
	CartRead, CartUpdate,
	ReviewRead, ReviewCreate, ReviewUpdate, ReviewDelete,
	SupplierRead, SupplierCreate, SupplierUpdate, SupplierDelete,
	SupplierOrderCreate, SupplierOrderUpdate,
	InventoryRead, InventoryUpdate,
	AnalyticsRead, AnalyticsExport,
	AdminAccess, AdminManageUsers, AdminManageShops, AdminViewAllOrders,
}

var shopperPermissions = []Permission{
	ProductRead, ShopRead, ReviewRead,
	CartRead, CartUpdate,
	OrderRead, OrderCreate, OrderCancel,
	ReviewCreate, ReviewUpdate,
	UserRead, UserUpdate,
}

var rolePermissions = map[models.UserRole][]Permission{
	models.RoleShopper: shopperPermissions,

	models.RoleShopOwner: append(append([]Permission{}, shopperPermissions...),
		ShopCreate, ShopUpdate, ShopManageStaff,
		ProductCreate, ProductUpdate, ProductDelete,
		OrderUpdate,
		InventoryRead, InventoryUpdate,
		SupplierRead, SupplierOrderCreate, SupplierOrderUpdate,
		AnalyticsRead,
	),

	models.RoleSupplier: {
		ProductRead, ShopRead, UserRead, UserUpdate,
		SupplierRead, SupplierUpdate,
		ProductCreate, ProductUpdate, ProductDelete,
		InventoryRead, InventoryUpdate,
		SupplierOrderUpdate,
		AnalyticsRead,
	},

	models.RoleAdmin: allPermissions,
}

// permissionSets is the lookup form of rolePermissions, built once.
var permissionSets = func() map[models.UserRole]map[Permission]struct{} {
	sets := make(map[models.UserRole]map[Permission]struct{}, len(rolePermissions))
	for role, perms := range rolePermissions {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		sets[role] = set
	}
	return sets
}()

// RoleHasPermission reports whether the role's permission set contains p.
func RoleHasPermission(role models.UserRole, p Permission) bool {
	_, ok := permissionSets[role][p]
	return ok
}

// RoleHasAll reports whether the role holds every one of the required
// permissions (conjunction).
func RoleHasAll(role models.UserRole, required ...Permission) bool {
	set, ok := permissionSets[role]
	if !ok {
		return false
	}
	for _, p := range required {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}

// RolePermissions returns the permissions granted to a role.
func RolePermissions(role models.UserRole) []Permission {
	return rolePermissions[role]
}
