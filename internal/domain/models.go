package domain

import "fmt"

// Customer is the buyer attached to a Shopify order.
type Customer struct {
	ID    string // Shopify GID (e.g. "gid://shopify/Customer/123")
	Email string
}

// LineItem is one product entry within an order. ProductID is empty when
// the product was deleted or the line item is custom.
type LineItem struct {
	ProductID string
}

// Order is a Shopify order as fetched from the Admin API. Customer is nil
// for guest checkouts.
type Order struct {
	Customer  *Customer
	LineItems []LineItem
}

// Product is a store product shown in the picker UI.
type Product struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DiscountRequest is the merchant's input for one export run. Amount is the
// raw form value; it is parsed and validated by the issuance pipeline before
// any remote call.
type DiscountRequest struct {
	ProductID string
	Amount    string
	Scope     ScopePolicy
}

// DiscountResult is one successfully created discount code. Results keep
// order-list iteration order; a customer with several qualifying orders gets
// one code per order.
type DiscountResult struct {
	CustomerEmail string
	Code          string
}

// ScopePolicy controls who may redeem a generated code.
type ScopePolicy string

const (
	// ScopeMatchedCustomer restricts each code to the customer it was issued for.
	ScopeMatchedCustomer ScopePolicy = "customer"
	// ScopeAllCustomers lets any customer redeem the code.
	ScopeAllCustomers ScopePolicy = "all"
)

// ParseScopePolicy parses the DISCOUNT_SCOPE config value. Empty defaults to
// ScopeMatchedCustomer.
func ParseScopePolicy(s string) (ScopePolicy, error) {
	switch s {
	case "", string(ScopeMatchedCustomer):
		return ScopeMatchedCustomer, nil
	case string(ScopeAllCustomers):
		return ScopeAllCustomers, nil
	default:
		return "", fmt.Errorf("invalid discount scope %q (want %q or %q)", s, ScopeMatchedCustomer, ScopeAllCustomers)
	}
}
