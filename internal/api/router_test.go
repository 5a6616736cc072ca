package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/quotallc/grabbit-rewards/internal/api/middleware"
	"github.com/quotallc/grabbit-rewards/internal/config"
	"github.com/quotallc/grabbit-rewards/internal/domain"
)

type stubIssuer struct{}

func (stubIssuer) IssueDiscounts(_ context.Context, _ domain.DiscountRequest) ([]domain.DiscountResult, error) {
	return nil, nil
}

type stubLister struct{}

func (stubLister) ListProducts(_ context.Context) ([]domain.Product, error) {
	return []domain.Product{}, nil
}

func newTestRouter(t *testing.T, keyHash string) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Environment: "test",
		Discount: config.DiscountConfig{
			CodePrefix: "GRABBIT",
			Scope:      domain.ScopeMatchedCustomer,
		},
		API: config.APIConfig{KeyHash: keyHash},
	}
	return NewRouter(cfg, stubIssuer{}, stubLister{}, zap.NewNop())
}

func TestRouter_HealthAndRoot(t *testing.T) {
	router := newTestRouter(t, "")

	for _, path := range []string{"/", "/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_KeepsCallerRequestID(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_AuthDisabledWithoutKeyHash(t *testing.T) {
	router := newTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AuthEnforcedWithKeyHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-key"), bcrypt.MinCost)
	require.NoError(t, err)
	router := newTestRouter(t, string(hash))

	// No credentials
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong key
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct key
	req = httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.Header.Set("Authorization", "Bearer secret-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Health stays open
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
