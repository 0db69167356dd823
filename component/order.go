package component

import "github.com/lixenwraith/plug-n-chug/order"

// PendingOrderComponent is a spawned order awaiting a free tap
type PendingOrderComponent struct {
	Order order.Order
}

// ActiveOrderComponent is the order being poured into a cup
type ActiveOrderComponent struct {
	Order order.Order
}
