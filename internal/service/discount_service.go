package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quotallc/grabbit-rewards/internal/domain"
	apperrors "github.com/quotallc/grabbit-rewards/pkg/errors"
)

// AdminAPI is the slice of the Shopify Admin API the pipeline depends on.
// Implemented by shopify.Admin; tests supply mocks.
type AdminAPI interface {
	ListRecentOrders(ctx context.Context) ([]domain.Order, error)
	CreateSingleUseDiscount(ctx context.Context, code string, amount decimal.Decimal, customerID string, scope domain.ScopePolicy) error
}

// CodeSource produces discount code strings
type CodeSource interface {
	Generate() string
}

// DiscountService runs the order-to-discount-code pipeline: fetch recent
// orders, select buyers of the target product, create one single-use code
// per selected customer, collect the successes.
type DiscountService struct {
	admin  AdminAPI
	codes  CodeSource
	logger *zap.Logger
}

// NewDiscountService creates the discount issuance service
func NewDiscountService(admin AdminAPI, codes CodeSource, logger *zap.Logger) *DiscountService {
	return &DiscountService{
		admin:  admin,
		codes:  codes,
		logger: logger,
	}
}

// IssueDiscounts validates the request, then issues one code per qualifying
// customer, strictly sequentially. Issuance is deliberately not parallel:
// the Admin API throttles aggressively and a serial loop stays under its
// limits. A user-error response for one customer skips that customer only;
// transport failures abort the run.
func (s *DiscountService) IssueDiscounts(ctx context.Context, req domain.DiscountRequest) ([]domain.DiscountResult, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, &apperrors.ErrInvalidAmount{Raw: req.Amount}
	}

	orders, err := s.admin.ListRecentOrders(ctx)
	if err != nil {
		return nil, err
	}

	customers := SelectCustomers(orders, req.ProductID)
	s.logger.Info("Selected customers for discount issuance",
		zap.String("product_id", req.ProductID),
		zap.Int("orders", len(orders)),
		zap.Int("customers", len(customers)),
	)

	results := make([]domain.DiscountResult, 0, len(customers))
	for _, customer := range customers {
		code := s.codes.Generate()

		if err := s.admin.CreateSingleUseDiscount(ctx, code, amount, customer.ID, req.Scope); err != nil {
			var creationErr *apperrors.ErrDiscountCreation
			if errors.As(err, &creationErr) {
				s.logger.Warn("Skipping customer: discount creation rejected",
					zap.String("email", customer.Email),
					zap.Error(creationErr),
				)
				continue
			}
			return nil, err
		}

		results = append(results, domain.DiscountResult{
			CustomerEmail: customer.Email,
			Code:          code,
		})
	}

	return results, nil
}
