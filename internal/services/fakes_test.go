package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

// In-memory repository fakes backing the service tests. They mirror the
// SQL semantics the real implementations rely on: nil for missing rows,
// conditional revoke reporting whether it flipped the flag.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uuid.UUID]*models.RefreshToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, rt *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rt
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.tokens[rt.ID] = &cp
	return nil
}

func (r *fakeTokenRepo) GetByIDAndUser(_ context.Context, id, userID uuid.UUID) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.tokens[id]
	if !ok || rt.UserID != userID {
		return nil, nil
	}
	cp := *rt
	return &cp, nil
}

func (r *fakeTokenRepo) ListActiveByUser(_ context.Context, userID uuid.UUID) ([]*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.RefreshToken
	for _, rt := range r.tokens {
		if rt.UserID == userID && !rt.IsRevoked {
			cp := *rt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTokenRepo) RevokeIfActive(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.tokens[id]
	if !ok || rt.UserID != userID || rt.IsRevoked {
		return false, nil
	}
	rt.IsRevoked = true
	return true, nil
}

func (r *fakeTokenRepo) Revoke(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rt, ok := r.tokens[id]; ok && rt.UserID == userID {
		rt.IsRevoked = true
	}
	return nil
}

func (r *fakeTokenRepo) RevokeAllByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.tokens {
		if rt.UserID == userID {
			rt.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, rt := range r.tokens {
		if time.Now().After(rt.ExpiresAt) {
			delete(r.tokens, id)
			deleted++
		}
	}
	return deleted, nil
}

// expire backdates a stored record so it reads as naturally expired.
func (r *fakeTokenRepo) expire(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rt, ok := r.tokens[id]; ok {
		rt.ExpiresAt = time.Now().Add(-time.Hour)
	}
}

func (r *fakeTokenRepo) activeCount(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rt := range r.tokens {
		if rt.UserID == userID && !rt.IsRevoked {
			n++
		}
	}
	return n
}

type fakeShopRepo struct {
	mu    sync.Mutex
	shops map[uuid.UUID]*models.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[uuid.UUID]*models.Shop)}
}

func (r *fakeShopRepo) Create(_ context.Context, s *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.shops[s.ID] = &cp
	return nil
}

func (r *fakeShopRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.shops[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeShopRepo) GetBySlug(_ context.Context, slug string) (*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shops {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeShopRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Shop
	for _, s := range r.shops {
		if s.OwnerID == ownerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeShopRepo) List(_ context.Context) ([]*models.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Shop, 0, len(r.shops))
	for _, s := range r.shops {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeShopRepo) Update(_ context.Context, s *models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.shops[s.ID] = &cp
	return nil
}

func (r *fakeShopRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shops, id)
	return nil
}

type fakeInventoryRepo struct {
	mu           sync.Mutex
	records      map[uuid.UUID]*models.Inventory
	transactions []*models.InventoryTransaction
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: make(map[uuid.UUID]*models.Inventory)}
}

func (r *fakeInventoryRepo) Create(_ context.Context, inv *models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.records[inv.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inv, ok := r.records[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeInventoryRepo) GetByProductAndShop(_ context.Context, productID, shopID uuid.UUID) (*models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.records {
		if inv.ProductID == productID && inv.ShopID == shopID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) ListByShop(_ context.Context, shopID uuid.UUID) ([]*models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Inventory
	for _, inv := range r.records {
		if inv.ShopID == shopID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, inv *models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.records[inv.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *fakeInventoryRepo) ListLowStock(_ context.Context, shopID *uuid.UUID) ([]*models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Inventory
	for _, inv := range r.records {
		if shopID != nil && inv.ShopID != *shopID {
			continue
		}
		if inv.IsLowStock() {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) CreateTransaction(_ context.Context, tx *models.InventoryTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tx
	r.transactions = append(r.transactions, &cp)
	return nil
}

func (r *fakeInventoryRepo) ListTransactions(_ context.Context, inventoryID uuid.UUID) ([]*models.InventoryTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.InventoryTransaction
	for _, tx := range r.transactions {
		if tx.InventoryID == inventoryID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySlug(_ context.Context, slug string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListByShop(_ context.Context, shopID uuid.UUID) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Product
	for _, p := range r.products {
		if p.ShopID == shopID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*models.Cart
	items map[uuid.UUID]*models.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: make(map[uuid.UUID]*models.Cart),
		items: make(map[uuid.UUID]*models.CartItem),
	}
}

func (r *fakeCartRepo) Create(_ context.Context, c *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.carts[c.ID] = &cp
	return nil
}

func (r *fakeCartRepo) GetByUser(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.carts {
		if c.UserID == userID {
			cp := *c
			cp.Items = nil
			for _, it := range r.items {
				if it.CartID == c.ID {
					cp.Items = append(cp.Items, *it)
				}
			}
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) AddItem(_ context.Context, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeCartRepo) GetItem(_ context.Context, itemID uuid.UUID) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[itemID]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCartRepo) GetItemByProduct(_ context.Context, cartID, productID uuid.UUID) (*models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.CartID == cartID && it.ProductID == productID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) UpdateItemQuantity(_ context.Context, itemID uuid.UUID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[itemID]; ok {
		it.Quantity = quantity
	}
	return nil
}

func (r *fakeCartRepo) RemoveItem(_ context.Context, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, itemID)
	return nil
}

func (r *fakeCartRepo) ClearItems(_ context.Context, cartID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.items {
		if it.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		cp := *o
		cp.Items = append([]models.OrderItem(nil), o.Items...)
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByShop(_ context.Context, shopID uuid.UUID) ([]*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Order
	for _, o := range r.orders {
		if o.ShopID == shopID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}
