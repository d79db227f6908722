package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/shop-admin/config"
	"github.com/d60-Lab/shop-admin/internal/api/handler"
	"github.com/d60-Lab/shop-admin/internal/middleware"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/internal/service"
	"github.com/d60-Lab/shop-admin/pkg/database"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	validate.Setup()

	cfg := &config.Config{}
	cfg.App.Name = "shop-admin"
	cfg.App.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000

	db, err := database.InitDB(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sessions := service.NewSessionStore(rdb, time.Hour)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	h := handler.New(
		service.NewCatalogService(
			repository.NewCategoryRepository(db),
			productRepo,
			repository.NewProductImageRepository(db),
			repository.NewProductReviewRepository(db),
			userRepo,
		),
		service.NewCartService(
			repository.NewCartRepository(db),
			repository.NewCartItemRepository(db),
			productRepo,
			userRepo,
		),
		service.NewOrderService(
			repository.NewOrderRepository(db),
			repository.NewOrderItemRepository(db),
			repository.NewPaymentRepository(db),
			userRepo,
			addressRepo,
			productRepo,
		),
		service.NewAddressService(addressRepo, userRepo),
		service.NewAuthService(userRepo, sessions, "test-secret", time.Hour),
	)
	return NewRouter(cfg, h, middleware.Auth("test-secret", sessions))
}

// 全链路：健康检查下发 CSRF cookie，写请求必须回显
func TestRouterCSRFFlow(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var token string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.CSRFCookie {
			token = ck.Value
		}
	}
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Books"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Books"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookie, Value: token})
	req.Header.Set(middleware.CSRFHeader, token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRouterRequestIDHeader(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderXRequestID))
}

func TestRouterUnknownRouteIs404(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
