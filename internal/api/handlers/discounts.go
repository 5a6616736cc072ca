package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quotallc/grabbit-rewards/internal/domain"
	"github.com/quotallc/grabbit-rewards/internal/export"
	apperrors "github.com/quotallc/grabbit-rewards/pkg/errors"
)

// DiscountIssuer runs the issuance pipeline. Implemented by
// service.DiscountService.
type DiscountIssuer interface {
	IssueDiscounts(ctx context.Context, req domain.DiscountRequest) ([]domain.DiscountResult, error)
}

// HandleExportDiscounts handles POST /v1/discounts/export. It reads the
// productId/discountAmount form fields, runs the pipeline with the configured
// scope policy and responds with a downloadable CSV of (email, code) rows.
func HandleExportDiscounts(scope domain.ScopePolicy, svc DiscountIssuer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.PostForm("productId")
		if productID == "" {
			c.String(http.StatusBadRequest, "productId is required")
			return
		}
		amount := c.PostForm("discountAmount")

		results, err := svc.IssueDiscounts(c.Request.Context(), domain.DiscountRequest{
			ProductID: productID,
			Amount:    amount,
			Scope:     scope,
		})
		if err != nil {
			var invalidAmount *apperrors.ErrInvalidAmount
			var timeout *apperrors.ErrUpstreamTimeout
			var fetch *apperrors.ErrUpstreamFetch
			switch {
			case errors.As(err, &invalidAmount):
				c.String(http.StatusBadRequest, "Invalid discount amount")
			case errors.As(err, &timeout):
				logger.Error("Discount export timed out", zap.Error(err))
				c.JSON(http.StatusGatewayTimeout, gin.H{"error": "upstream timeout"})
			case errors.As(err, &fetch):
				logger.Error("Discount export failed fetching from Shopify", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "upstream error"})
			default:
				logger.Error("Discount export failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		body, err := export.ToCSV(results)
		if err != nil {
			logger.Error("Failed to serialize CSV", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		logger.Info("Discount export complete",
			zap.String("product_id", productID),
			zap.Int("codes_issued", len(results)),
		)

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
		c.Data(http.StatusOK, "text/csv", []byte(body))
	}
}
