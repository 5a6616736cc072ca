package errors

import (
	"fmt"
	"strings"
)

// ErrInvalidAmount is returned when the discount amount fails to parse or is
// not strictly positive. Raised before any remote call; surfaced as HTTP 400.
type ErrInvalidAmount struct {
	Raw string
}

func (e *ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid discount amount: %q", e.Raw)
}

// ErrUpstreamFetch is returned when listing orders (or products) from the
// Admin API fails. Fatal for the whole run; surfaced as HTTP 502.
type ErrUpstreamFetch struct {
	Op  string
	Err error
}

func (e *ErrUpstreamFetch) Error() string {
	return fmt.Sprintf("%s: upstream fetch failed: %v", e.Op, e.Err)
}

func (e *ErrUpstreamFetch) Unwrap() error {
	return e.Err
}

// ErrUpstreamTimeout is returned when a remote call exceeds its deadline.
// Fatal for the whole run; surfaced as HTTP 504.
type ErrUpstreamTimeout struct {
	Op string
}

func (e *ErrUpstreamTimeout) Error() string {
	return fmt.Sprintf("%s: upstream call timed out", e.Op)
}

// UserError is one field-level error from a Shopify mutation response.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// ErrDiscountCreation is returned when discountCodeBasicCreate reports user
// errors for one customer. Non-fatal: the pipeline logs it and continues
// with the next customer.
type ErrDiscountCreation struct {
	Code       string
	UserErrors []UserError
}

func (e *ErrDiscountCreation) Error() string {
	msgs := make([]string, len(e.UserErrors))
	for i, ue := range e.UserErrors {
		msgs[i] = ue.Message
	}
	return fmt.Sprintf("discount creation failed for code %s: %s", e.Code, strings.Join(msgs, "; "))
}
