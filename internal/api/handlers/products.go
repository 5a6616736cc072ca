package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quotallc/grabbit-rewards/internal/domain"
	apperrors "github.com/quotallc/grabbit-rewards/pkg/errors"
)

// ProductLister fetches store products for the picker UI. Implemented by
// shopify.Admin.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// HandleListProducts handles GET /v1/products
func HandleListProducts(svc ProductLister, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			var timeout *apperrors.ErrUpstreamTimeout
			if errors.As(err, &timeout) {
				logger.Error("Product listing timed out", zap.Error(err))
				c.JSON(http.StatusGatewayTimeout, gin.H{"error": "upstream timeout"})
				return
			}
			logger.Error("Failed to list products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
