package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quotallc/grabbit-rewards/internal/domain"
	apperrors "github.com/quotallc/grabbit-rewards/pkg/errors"
)

type mockIssuer struct {
	gotReq  domain.DiscountRequest
	results []domain.DiscountResult
	err     error
	calls   int
}

func (m *mockIssuer) IssueDiscounts(_ context.Context, req domain.DiscountRequest) ([]domain.DiscountResult, error) {
	m.calls++
	m.gotReq = req
	return m.results, m.err
}

func postExport(t *testing.T, issuer *mockIssuer, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/v1/discounts/export", HandleExportDiscounts(domain.ScopeMatchedCustomer, issuer, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/v1/discounts/export", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleExportDiscounts_Success(t *testing.T) {
	issuer := &mockIssuer{
		results: []domain.DiscountResult{
			{CustomerEmail: "a@x.com", Code: "GRABBIT-AAAAAAAA"},
			{CustomerEmail: "b@x.com", Code: "GRABBIT-BBBBBBBB"},
		},
	}

	w := postExport(t, issuer, url.Values{
		"productId":      {"gid://shopify/Product/1"},
		"discountAmount": {"10.00"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=grabbit-codes.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "email,code\na@x.com,GRABBIT-AAAAAAAA\nb@x.com,GRABBIT-BBBBBBBB\n", w.Body.String())

	assert.Equal(t, "gid://shopify/Product/1", issuer.gotReq.ProductID)
	assert.Equal(t, "10.00", issuer.gotReq.Amount)
	assert.Equal(t, domain.ScopeMatchedCustomer, issuer.gotReq.Scope)
}

func TestHandleExportDiscounts_EmptyRunIsHeaderOnlyCSV(t *testing.T) {
	issuer := &mockIssuer{}

	w := postExport(t, issuer, url.Values{
		"productId":      {"gid://shopify/Product/1"},
		"discountAmount": {"10.00"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "email,code\n", w.Body.String())
}

func TestHandleExportDiscounts_InvalidAmountIs400(t *testing.T) {
	issuer := &mockIssuer{err: &apperrors.ErrInvalidAmount{Raw: "-1"}}

	w := postExport(t, issuer, url.Values{
		"productId":      {"gid://shopify/Product/1"},
		"discountAmount": {"-1"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid discount amount", w.Body.String())
}

func TestHandleExportDiscounts_MissingProductIs400(t *testing.T) {
	issuer := &mockIssuer{}

	w := postExport(t, issuer, url.Values{"discountAmount": {"10.00"}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, issuer.calls, "pipeline must not run without a product")
}

func TestHandleExportDiscounts_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"fetch failure", &apperrors.ErrUpstreamFetch{Op: "list orders", Err: assert.AnError}, http.StatusBadGateway},
		{"timeout", &apperrors.ErrUpstreamTimeout{Op: "list orders"}, http.StatusGatewayTimeout},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postExport(t, &mockIssuer{err: tt.err}, url.Values{
				"productId":      {"gid://shopify/Product/1"},
				"discountAmount": {"10.00"},
			})
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
