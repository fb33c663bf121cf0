package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/controllers"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/middleware"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/rbac"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
)

const (
	PathHealth = "/health"

	PathAuthRegister  = "/auth/register"
	PathAuthLogin     = "/auth/login"
	PathAuthMe        = "/auth/me"
	PathAuthRefresh   = "/auth/refresh"
	PathAuthLogout    = "/auth/logout"
	PathAuthLogoutAll = "/auth/logout-all"
	PathAuthSessions  = "/auth/sessions"
	PathAuthSession   = "/auth/sessions/{sessionId}"

	PathUsers    = "/users"
	PathUser     = "/users/{userId}"
	PathUserRole = "/users/{userId}/role"
	PathMe       = "/users/me"

	PathShops         = "/shops"
	PathMyShops       = "/shops/mine"
	PathShop          = "/shops/{shopId}"
	PathShopBySlug    = "/shops/slug/{slug}"
	PathShopProducts  = "/shops/{shopId}/products"
	PathShopOrders    = "/shops/{shopId}/orders"
	PathShopInventory = "/shops/{shopId}/inventory"
	PathShopSupplying = "/shops/{shopId}/supplier-orders"

	PathProducts       = "/products"
	PathProduct        = "/products/{productId}"
	PathProductBySlug  = "/products/slug/{slug}"
	PathProductReviews = "/products/{productId}/reviews"

	PathInventoryLowStock     = "/inventory/low-stock"
	PathInventoryItem         = "/inventory/{inventoryId}"
	PathInventoryAdjust       = "/inventory/{inventoryId}/adjust"
	PathInventoryTransactions = "/inventory/{inventoryId}/transactions"

	PathCart      = "/cart"
	PathCartItems = "/cart/items"
	PathCartItem  = "/cart/items/{itemId}"

	PathOrders      = "/orders"
	PathOrder       = "/orders/{orderId}"
	PathOrderStatus = "/orders/{orderId}/status"

	PathReview = "/reviews/{reviewId}"

	PathSuppliers           = "/suppliers"
	PathSupplierMe          = "/suppliers/me"
	PathSupplier            = "/suppliers/{supplierId}"
	PathSupplierOrdersMine  = "/supplier-orders/mine"
	PathSupplierOrder       = "/supplier-orders/{supplierOrderId}"
	PathSupplierOrderStatus = "/supplier-orders/{supplierOrderId}/status"

	PathAnalyticsDashboard   = "/analytics/dashboard"
	PathAnalyticsSales       = "/analytics/sales"
	PathAnalyticsTopProducts = "/analytics/top-products"
	PathAnalyticsOrderStatus = "/analytics/order-statuses"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Health        *controllers.HealthController
	Auth          *controllers.AuthController
	User          *controllers.UserController
	Shop          *controllers.ShopController
	Product       *controllers.ProductController
	Inventory     *controllers.InventoryController
	Cart          *controllers.CartController
	Order         *controllers.OrderController
	Review        *controllers.ReviewController
	Supplier      *controllers.SupplierController
	SupplierOrder *controllers.SupplierOrderController
	Analytics     *controllers.AnalyticsController
}

// NewRouter assembles the full HTTP surface. Public routes (health,
// register, login, refresh, catalog reads) skip authentication; the
// rest run behind the JWT middleware plus per-route permission guards.
func NewRouter(jwt *services.JWTManager, c Controllers) *mux.Router {
	r := mux.NewRouter()

	// Public surface.
	r.HandleFunc(PathHealth, c.Health.Health).Methods(http.MethodGet)
	r.HandleFunc(PathAuthRegister, c.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc(PathAuthLogin, c.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc(PathAuthRefresh, c.Auth.Refresh).Methods(http.MethodPost)

	r.HandleFunc(PathShops, c.Shop.List).Methods(http.MethodGet)
	r.HandleFunc(PathShopBySlug, c.Shop.GetBySlug).Methods(http.MethodGet)
	r.HandleFunc(PathProducts, c.Product.List).Methods(http.MethodGet)
	r.HandleFunc(PathProductBySlug, c.Product.GetBySlug).Methods(http.MethodGet)
	r.HandleFunc(PathShopProducts, c.Product.ListByShop).Methods(http.MethodGet)
	r.HandleFunc(PathProductReviews, c.Review.ListByProduct).Methods(http.MethodGet)

	// Everything below requires a valid access token.
	auth := r.NewRoute().Subrouter()
	auth.Use(middleware.Authenticate(jwt))

	auth.HandleFunc(PathAuthMe, c.Auth.Me).Methods(http.MethodGet)
	auth.HandleFunc(PathAuthLogout, c.Auth.Logout).Methods(http.MethodPost)
	auth.HandleFunc(PathAuthLogoutAll, c.Auth.LogoutAll).Methods(http.MethodPost)
	auth.HandleFunc(PathAuthSessions, c.Auth.Sessions).Methods(http.MethodGet)
	auth.HandleFunc(PathAuthSession, c.Auth.RevokeSession).Methods(http.MethodDelete)

	auth.HandleFunc(PathMe, c.User.UpdateMe).Methods(http.MethodPatch)

	// Admin-only user management.
	admin := auth.NewRoute().Subrouter()
	admin.Use(middleware.RequirePermissions(rbac.AdminAccess, rbac.AdminManageUsers))
	admin.HandleFunc(PathUsers, c.User.List).Methods(http.MethodGet)
	admin.HandleFunc(PathUser, c.User.Get).Methods(http.MethodGet)
	admin.HandleFunc(PathUserRole, c.User.UpdateRole).Methods(http.MethodPatch)
	admin.HandleFunc(PathUser, c.User.Delete).Methods(http.MethodDelete)

	// Shops. Reads above are public; shop detail stays readable here so
	// owners get their pending shops too.
	auth.HandleFunc(PathShop, c.Shop.Get).Methods(http.MethodGet)
	auth.HandleFunc(PathMyShops, c.Shop.ListMine).Methods(http.MethodGet)

	shopWrite := auth.NewRoute().Subrouter()
	shopWrite.Use(middleware.RequirePermissions(rbac.ShopCreate))
	shopWrite.HandleFunc(PathShops, c.Shop.Create).Methods(http.MethodPost)
	shopWrite.HandleFunc(PathShop, c.Shop.Update).Methods(http.MethodPatch)
	shopWrite.HandleFunc(PathShop, c.Shop.Delete).Methods(http.MethodDelete)

	// Products.
	auth.HandleFunc(PathProduct, c.Product.Get).Methods(http.MethodGet)

	productCreate := auth.NewRoute().Subrouter()
	productCreate.Use(middleware.RequirePermissions(rbac.ProductCreate))
	productCreate.HandleFunc(PathShopProducts, c.Product.Create).Methods(http.MethodPost)

	productUpdate := auth.NewRoute().Subrouter()
	productUpdate.Use(middleware.RequirePermissions(rbac.ProductUpdate))
	productUpdate.HandleFunc(PathProduct, c.Product.Update).Methods(http.MethodPatch)

	productDelete := auth.NewRoute().Subrouter()
	productDelete.Use(middleware.RequirePermissions(rbac.ProductDelete))
	productDelete.HandleFunc(PathProduct, c.Product.Delete).Methods(http.MethodDelete)

	// Inventory.
	inventory := auth.NewRoute().Subrouter()
	inventory.Use(middleware.RequirePermissions(rbac.InventoryRead))
	inventory.HandleFunc(PathShopInventory, c.Inventory.ListByShop).Methods(http.MethodGet)
	inventory.HandleFunc(PathInventoryLowStock, c.Inventory.ListLowStock).Methods(http.MethodGet)
	inventory.HandleFunc(PathInventoryItem, c.Inventory.Get).Methods(http.MethodGet)
	inventory.HandleFunc(PathInventoryTransactions, c.Inventory.Transactions).Methods(http.MethodGet)

	inventoryWrite := auth.NewRoute().Subrouter()
	inventoryWrite.Use(middleware.RequirePermissions(rbac.InventoryRead, rbac.InventoryUpdate))
	inventoryWrite.HandleFunc(PathInventoryAdjust, c.Inventory.Adjust).Methods(http.MethodPost)
	inventoryWrite.HandleFunc(PathInventoryItem, c.Inventory.UpdateSettings).Methods(http.MethodPatch)

	// Cart.
	cart := auth.NewRoute().Subrouter()
	cart.Use(middleware.RequirePermissions(rbac.CartRead, rbac.CartUpdate))
	cart.HandleFunc(PathCart, c.Cart.Get).Methods(http.MethodGet)
	cart.HandleFunc(PathCartItems, c.Cart.AddItem).Methods(http.MethodPost)
	cart.HandleFunc(PathCartItem, c.Cart.UpdateItem).Methods(http.MethodPatch)
	cart.HandleFunc(PathCartItem, c.Cart.RemoveItem).Methods(http.MethodDelete)
	cart.HandleFunc(PathCart, c.Cart.Clear).Methods(http.MethodDelete)

	// Orders.
	orders := auth.NewRoute().Subrouter()
	orders.Use(middleware.RequirePermissions(rbac.OrderRead))
	orders.HandleFunc(PathOrders, c.Order.ListMine).Methods(http.MethodGet)
	orders.HandleFunc(PathOrder, c.Order.Get).Methods(http.MethodGet)
	orders.HandleFunc(PathShopOrders, c.Order.ListByShop).Methods(http.MethodGet)

	orderCreate := auth.NewRoute().Subrouter()
	orderCreate.Use(middleware.RequirePermissions(rbac.OrderCreate))
	orderCreate.HandleFunc(PathOrders, c.Order.Checkout).Methods(http.MethodPost)

	auth.HandleFunc(PathOrderStatus, c.Order.UpdateStatus).Methods(http.MethodPatch)

	// Reviews.
	reviewCreate := auth.NewRoute().Subrouter()
	reviewCreate.Use(middleware.RequirePermissions(rbac.ReviewCreate))
	reviewCreate.HandleFunc(PathProductReviews, c.Review.Create).Methods(http.MethodPost)

	reviewUpdate := auth.NewRoute().Subrouter()
	reviewUpdate.Use(middleware.RequirePermissions(rbac.ReviewUpdate))
	reviewUpdate.HandleFunc(PathReview, c.Review.Update).Methods(http.MethodPatch)

	reviewDelete := auth.NewRoute().Subrouter()
	reviewDelete.Use(middleware.RequirePermissions(rbac.ReviewDelete))
	reviewDelete.HandleFunc(PathReview, c.Review.Delete).Methods(http.MethodDelete)

	// Suppliers and restocking orders.
	auth.HandleFunc(PathSuppliers, c.Supplier.List).Methods(http.MethodGet)
	auth.HandleFunc(PathSupplier, c.Supplier.Get).Methods(http.MethodGet)

	supplierSelf := auth.NewRoute().Subrouter()
	supplierSelf.Use(middleware.RequireRoles(models.RoleSupplier, models.RoleAdmin))
	supplierSelf.HandleFunc(PathSuppliers, c.Supplier.Create).Methods(http.MethodPost)
	supplierSelf.HandleFunc(PathSupplierMe, c.Supplier.GetMine).Methods(http.MethodGet)
	supplierSelf.HandleFunc(PathSupplierOrdersMine, c.SupplierOrder.ListMine).Methods(http.MethodGet)
	auth.HandleFunc(PathSupplier, c.Supplier.Update).Methods(http.MethodPatch)

	supplierOrders := auth.NewRoute().Subrouter()
	supplierOrders.Use(middleware.RequirePermissions(rbac.SupplierRead))
	supplierOrders.HandleFunc(PathSupplierOrder, c.SupplierOrder.Get).Methods(http.MethodGet)
	supplierOrders.HandleFunc(PathShopSupplying, c.SupplierOrder.ListByShop).Methods(http.MethodGet)
	supplierOrders.HandleFunc(PathSupplierOrderStatus, c.SupplierOrder.UpdateStatus).Methods(http.MethodPatch)

	supplierOrderCreate := auth.NewRoute().Subrouter()
	supplierOrderCreate.Use(middleware.RequirePermissions(rbac.SupplierOrderCreate))
	supplierOrderCreate.HandleFunc(PathShopSupplying, c.SupplierOrder.Create).Methods(http.MethodPost)

	// Analytics.
	analytics := auth.NewRoute().Subrouter()
	analytics.Use(middleware.RequirePermissions(rbac.AnalyticsRead))
	analytics.HandleFunc(PathAnalyticsDashboard, c.Analytics.Dashboard).Methods(http.MethodGet)
	analytics.HandleFunc(PathAnalyticsSales, c.Analytics.Sales).Methods(http.MethodGet)
	analytics.HandleFunc(PathAnalyticsTopProducts, c.Analytics.TopProducts).Methods(http.MethodGet)
	analytics.HandleFunc(PathAnalyticsOrderStatus, c.Analytics.OrderStatuses).Methods(http.MethodGet)

	return r
}
