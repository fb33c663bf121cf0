package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusMachine(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderProcessing, OrderShipped, true},
		{OrderShipped, OrderDelivered, true},
		{OrderPending, OrderCancelled, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderPending, OrderDelivered, false},
		{OrderDelivered, OrderPending, false},
	}
	for _, c := range cases {
		o := &Order{Status: c.from}
		assert.Equal(t, c.ok, o.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestSupplierOrderStatusMachine(t *testing.T) {
	cases := []struct {
		from, to SupplierOrderStatus
		ok       bool
	}{
		{SupplierOrderPending, SupplierOrderConfirmed, true},
		{SupplierOrderConfirmed, SupplierOrderShipped, true},
		{SupplierOrderShipped, SupplierOrderReceived, true},
		{SupplierOrderPending, SupplierOrderCancelled, true},
		{SupplierOrderConfirmed, SupplierOrderCancelled, true},
		{SupplierOrderShipped, SupplierOrderCancelled, false},
		{SupplierOrderPending, SupplierOrderReceived, false},
		{SupplierOrderReceived, SupplierOrderPending, false},
	}
	for _, c := range cases {
		so := &SupplierOrder{Status: c.from}
		assert.Equal(t, c.ok, so.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestInventoryDerivedValues(t *testing.T) {
	inv := &Inventory{Quantity: 20, ReservedQuantity: 5, LowStockThreshold: 10, ReorderPoint: 15}
	assert.Equal(t, 15, inv.AvailableQuantity())
	assert.False(t, inv.IsLowStock())
	assert.True(t, inv.NeedsReorder())

	inv.ReservedQuantity = 12
	assert.Equal(t, 8, inv.AvailableQuantity())
	assert.True(t, inv.IsLowStock())
}
