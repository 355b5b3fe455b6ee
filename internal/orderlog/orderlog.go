// Package orderlog records orders confirmed by the remote system during
// the current session. It is a passive client-side cache for local
// display, not a system of record; the full history lives behind the API.
package orderlog

import (
	"food-court/internal/model"
)

// Log is an append-only sequence of orders placed this session. It
// performs no deduplication or identity checks: appending the same order
// twice produces two entries. Like the cart, it assumes a
// single-goroutine caller.
type Log struct {
	orders []model.Order
}

// New creates an empty order log.
func New() *Log {
	return &Log{}
}

// Append adds an order to the end of the log. The caller must already
// hold a server-assigned order ID.
func (l *Log) Append(order model.Order) {
	l.orders = append(l.orders, order)
}

// Orders returns a copy of the logged orders in append order.
func (l *Log) Orders() []model.Order {
	orders := make([]model.Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

// Len returns the number of logged orders.
func (l *Log) Len() int {
	return len(l.orders)
}
