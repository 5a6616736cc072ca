package shopify

// DiscountCodeBasicCreateMutation creates a basic single-use discount code
const DiscountCodeBasicCreateMutation = `
mutation discountCodeBasicCreate($basicCodeDiscount: DiscountCodeBasicInput!) {
  discountCodeBasicCreate(basicCodeDiscount: $basicCodeDiscount) {
    codeDiscountNode {
      id
    }
    userErrors {
      field
      message
    }
  }
}
`

// DiscountCodeBasicInput represents the input for creating a basic code discount
type DiscountCodeBasicInput struct {
	Title                  string                 `json:"title"`
	Code                   string                 `json:"code"`
	StartsAt               string                 `json:"startsAt"`
	UsageLimit             int                    `json:"usageLimit"`
	AppliesOncePerCustomer bool                   `json:"appliesOncePerCustomer"`
	CustomerSelection      CustomerSelectionInput `json:"customerSelection"`
	CustomerGets           CustomerGetsInput      `json:"customerGets"`
}

// CustomerSelectionInput selects who can redeem the code: either all
// customers or an explicit list. Exactly one branch must be set.
type CustomerSelectionInput struct {
	All       *bool                `json:"all,omitempty"`
	Customers *CustomersToAddInput `json:"customers,omitempty"`
}

type CustomersToAddInput struct {
	Add []string `json:"add"`
}

// CustomerGetsInput describes what the discount grants
type CustomerGetsInput struct {
	Items DiscountItemsInput `json:"items"`
	Value DiscountValueInput `json:"value"`
}

type DiscountItemsInput struct {
	All bool `json:"all"`
}

type DiscountValueInput struct {
	DiscountAmount DiscountAmountInput `json:"discountAmount"`
}

// DiscountAmountInput is a fixed amount off the whole order (Shopify expects
// the amount as a decimal string, e.g. "10.00").
type DiscountAmountInput struct {
	Amount            string `json:"amount"`
	AppliesOnEachItem bool   `json:"appliesOnEachItem"`
}
