// Package view builds the read-only order projections the two audiences
// see: a customer's own orders and the staff work queue. Both operate on
// order lists fetched independently from the remote API; neither mutates
// the session's order log.
package view

import (
	"sort"
	"strings"

	"food-court/internal/model"
)

// ForCustomer returns the orders belonging to the given profile, in the
// order they were fetched. Device tokens are staff-side plumbing and are
// stripped from the customer projection.
func ForCustomer(orders []model.Order, profile model.Profile) []model.Order {
	own := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserEmail == profile.Email && o.UserName == profile.Name {
			o.UserToken = ""
			own = append(own, o)
		}
	}
	return own
}

// ForStaff returns all orders with pending ones first, preserving the
// fetched order within each group. Staff see full contact details.
func ForStaff(orders []model.Order) []model.Order {
	queue := make([]model.Order, len(orders))
	copy(queue, orders)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Status == model.StatusPending && queue[j].Status != model.StatusPending
	})
	return queue
}

// Search filters orders by a case-insensitive match of term against the
// user's email, name, or phone. An empty term returns the input as is.
func Search(orders []model.Order, term string) []model.Order {
	if term == "" {
		return orders
	}

	needle := strings.ToLower(term)
	matched := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.UserEmail), needle) ||
			strings.Contains(strings.ToLower(o.UserName), needle) ||
			strings.Contains(strings.ToLower(o.UserPhone), needle) {
			matched = append(matched, o)
		}
	}
	return matched
}
