package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quotallc/grabbit-rewards/internal/config"
	"github.com/quotallc/grabbit-rewards/internal/domain"
	apperrors "github.com/quotallc/grabbit-rewards/pkg/errors"
)

// Admin exposes the Admin API operations the service needs on top of the raw
// GraphQL client.
type Admin struct {
	client *Client
	logger *zap.Logger
}

// NewAdmin creates an Admin API wrapper
func NewAdmin(cfg config.ShopifyConfig, logger *zap.Logger) *Admin {
	return &Admin{
		client: NewClient(cfg, logger),
		logger: logger,
	}
}

// wrapFetchErr maps transport failures to the error taxonomy: deadline
// overruns become ErrUpstreamTimeout, everything else ErrUpstreamFetch.
func wrapFetchErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &apperrors.ErrUpstreamTimeout{Op: op}
	}
	return &apperrors.ErrUpstreamFetch{Op: op, Err: err}
}

// ListRecentOrders fetches up to 100 most recent orders with customer and
// line-item product IDs. No pagination beyond the first page.
func (a *Admin) ListRecentOrders(ctx context.Context) ([]domain.Order, error) {
	resp, err := a.client.Execute(ctx, RecentOrdersQuery, nil)
	if err != nil {
		return nil, wrapFetchErr("list orders", err)
	}

	var result struct {
		Orders struct {
			Edges []struct {
				Node struct {
					Customer *struct {
						ID    string `json:"id"`
						Email string `json:"email"`
					} `json:"customer"`
					LineItems struct {
						Edges []struct {
							Node struct {
								Product *struct {
									ID string `json:"id"`
								} `json:"product"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"lineItems"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"orders"`
	}

	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, wrapFetchErr("list orders", fmt.Errorf("parse orders response: %w", err))
	}

	orders := make([]domain.Order, 0, len(result.Orders.Edges))
	for _, edge := range result.Orders.Edges {
		order := domain.Order{}
		if edge.Node.Customer != nil {
			order.Customer = &domain.Customer{
				ID:    edge.Node.Customer.ID,
				Email: edge.Node.Customer.Email,
			}
		}
		for _, item := range edge.Node.LineItems.Edges {
			li := domain.LineItem{}
			if item.Node.Product != nil {
				li.ProductID = item.Node.Product.ID
			}
			order.LineItems = append(order.LineItems, li)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// ListProducts fetches the first 50 products for the picker UI
func (a *Admin) ListProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := a.client.Execute(ctx, ProductsQuery, nil)
	if err != nil {
		return nil, wrapFetchErr("list products", err)
	}

	var result struct {
		Products struct {
			Edges []struct {
				Node struct {
					ID    string `json:"id"`
					Title string `json:"title"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}

	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, wrapFetchErr("list products", fmt.Errorf("parse products response: %w", err))
	}

	products := make([]domain.Product, 0, len(result.Products.Edges))
	for _, edge := range result.Products.Edges {
		products = append(products, domain.Product{
			ID:    edge.Node.ID,
			Title: edge.Node.Title,
		})
	}

	return products, nil
}

// CreateSingleUseDiscount creates a single-use, once-per-customer fixed-amount
// discount with the given code. Scope decides whether only the matched
// customer or any customer may redeem it. User errors in the mutation
// response come back as *ErrDiscountCreation so callers can treat them as
// a per-item failure.
func (a *Admin) CreateSingleUseDiscount(ctx context.Context, code string, amount decimal.Decimal, customerID string, scope domain.ScopePolicy) error {
	input := DiscountCodeBasicInput{
		Title:                  fmt.Sprintf("Grabbit - %s", code),
		Code:                   code,
		StartsAt:               time.Now().UTC().Format(time.RFC3339),
		UsageLimit:             1,
		AppliesOncePerCustomer: true,
		CustomerGets: CustomerGetsInput{
			Items: DiscountItemsInput{All: true},
			Value: DiscountValueInput{
				DiscountAmount: DiscountAmountInput{
					Amount:            amount.StringFixed(2),
					AppliesOnEachItem: false,
				},
			},
		},
	}

	if scope == domain.ScopeAllCustomers {
		all := true
		input.CustomerSelection = CustomerSelectionInput{All: &all}
	} else {
		input.CustomerSelection = CustomerSelectionInput{
			Customers: &CustomersToAddInput{Add: []string{customerID}},
		}
	}

	variables := map[string]interface{}{
		"basicCodeDiscount": input,
	}

	resp, err := a.client.Execute(ctx, DiscountCodeBasicCreateMutation, variables)
	if err != nil {
		return wrapFetchErr("create discount", err)
	}

	var result struct {
		DiscountCodeBasicCreate struct {
			CodeDiscountNode struct {
				ID string `json:"id"`
			} `json:"codeDiscountNode"`
			UserErrors []apperrors.UserError `json:"userErrors"`
		} `json:"discountCodeBasicCreate"`
	}

	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return wrapFetchErr("create discount", fmt.Errorf("parse discount response: %w", err))
	}

	if len(result.DiscountCodeBasicCreate.UserErrors) > 0 {
		return &apperrors.ErrDiscountCreation{
			Code:       code,
			UserErrors: result.DiscountCodeBasicCreate.UserErrors,
		}
	}

	a.logger.Debug("Created discount code",
		zap.String("code", code),
		zap.String("discount_node_id", result.DiscountCodeBasicCreate.CodeDiscountNode.ID),
	)
	return nil
}
