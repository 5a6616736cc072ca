package service

import "github.com/quotallc/grabbit-rewards/internal/domain"

// SelectCustomers returns the customers whose orders contain the target
// product. An order qualifies when at least one line item's product ID is an
// exact match. Orders without a customer (guest checkouts) are dropped.
// Input order is preserved and customers are not deduplicated: a customer
// with several qualifying orders appears once per order.
func SelectCustomers(orders []domain.Order, productID string) []domain.Customer {
	var customers []domain.Customer
	for _, order := range orders {
		if order.Customer == nil {
			continue
		}
		for _, item := range order.LineItems {
			if item.ProductID == productID {
				customers = append(customers, *order.Customer)
				break
			}
		}
	}
	return customers
}
