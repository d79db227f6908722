package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/shop-admin/config"
	"github.com/d60-Lab/shop-admin/internal/middleware"
	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/internal/service"
	"github.com/d60-Lab/shop-admin/pkg/database"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// newTestRouter 组装与生产等价的路由（跳过限流/CSRF 等外层中间件）
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validate.Setup()

	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
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

	catalogSvc := service.NewCatalogService(
		repository.NewCategoryRepository(db),
		productRepo,
		repository.NewProductImageRepository(db),
		repository.NewProductReviewRepository(db),
		userRepo,
	)
	cartSvc := service.NewCartService(
		repository.NewCartRepository(db),
		repository.NewCartItemRepository(db),
		productRepo,
		userRepo,
	)
	orderSvc := service.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewPaymentRepository(db),
		userRepo,
		addressRepo,
		productRepo,
	)
	addressSvc := service.NewAddressService(addressRepo, userRepo)
	authSvc := service.NewAuthService(userRepo, sessions, "test-secret", time.Hour)

	h := New(catalogSvc, cartSvc, orderSvc, addressSvc, authSvc)
	authMW := middleware.Auth("test-secret", sessions)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/hello", h.Hello)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", authMW, h.Logout)
		api.POST("/categories", h.CreateCategory)
		api.POST("/products", h.CreateProduct)
		api.GET("/getproducts", h.ListProducts)
		api.POST("/addresses", h.CreateAddress)
		api.POST("/carts", h.CreateCart)
		api.POST("/cart-items", h.CreateCartItem)
		api.POST("/orders", h.CreateOrder)
		api.POST("/order-items", h.CreateOrderItem)
		api.POST("/payments", h.CreatePayment)
		api.POST("/product-images", h.CreateProductImage)
		api.POST("/product-reviews", h.CreateProductReview)
	}
	r.GET("/dashboard", authMW, h.Dashboard)
	r.GET("/healthz", h.Healthz)
	return r, db
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload.Errors
}

func seedUser(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	u := &model.User{Name: "admin", Email: "admin@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func TestCreateCategory(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/categories", `{"name":"Books"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["id"])

	// 重复提交不做去重，生成第二行
	w = doJSON(r, http.MethodPost, "/api/categories", `{"name":"Books"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["id"])
}

func TestCreateCategoryValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/categories", `{"description":"only"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := fieldErrors(t, w)
	assert.Equal(t, []string{"The name field is required."}, errs["name"])

	w = doJSON(r, http.MethodPost, "/api/categories", `{"name":123}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The name field must be a string."}, fieldErrors(t, w)["name"])

	// 非法 JSON 不是字段错误
	w = doJSON(r, http.MethodPost, "/api/categories", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductListEmptyAndOrdered(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/getproducts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	for _, name := range []string{"keyboard", "mouse"} {
		w = doJSON(r, http.MethodPost, "/api/products",
			`{"name":"`+name+`","description":"d","price":49.5,"stock":10,"image_url":"http://img/x.png"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/getproducts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, uint(1), list[0].ID)
	assert.Equal(t, "keyboard", list[0].Name)
	assert.Equal(t, uint(2), list[1].ID)
	assert.Equal(t, 49.5, list[1].Price)
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/products", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := fieldErrors(t, w)
	for _, field := range []string{"name", "description", "price", "stock", "image_url"} {
		assert.Contains(t, errs, field)
	}

	// 显式 0 能通过 required（指针字段）
	w = doJSON(r, http.MethodPost, "/api/products",
		`{"name":"free","description":"d","price":0,"stock":0,"image_url":"http://img/x.png"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateOrder(t *testing.T) {
	r, db := newTestRouter(t)
	uid := seedUser(t, db)

	w := doJSON(r, http.MethodPost, "/api/orders", `{"total_amount":10}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The user_id field is required."}, fieldErrors(t, w)["user_id"])

	w = doJSON(r, http.MethodPost, "/api/orders", `{"user_id":999,"total_amount":10}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The selected user_id is invalid."}, fieldErrors(t, w)["user_id"])

	w = doJSON(r, http.MethodPost, "/api/orders", `{"user_id":1,"total_amount":10,"status":"refunded"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The selected status is invalid."}, fieldErrors(t, w)["status"])

	w = doJSON(r, http.MethodPost, "/api/orders", `{"user_id":1,"total_amount":10}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var saved model.Order
	require.NoError(t, db.First(&saved, 1).Error)
	assert.Equal(t, uid, saved.UserID)
	assert.Equal(t, model.OrderStatusPending, saved.Status)
}

func TestCreateOrderItemAndPayment(t *testing.T) {
	r, db := newTestRouter(t)
	seedUser(t, db)
	w := doJSON(r, http.MethodPost, "/api/orders", `{"user_id":1,"total_amount":10}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// quantity 缺省为 1
	w = doJSON(r, http.MethodPost, "/api/order-items", `{"order_id":1,"price":3.5}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item model.OrderItem
	require.NoError(t, db.First(&item, 1).Error)
	assert.Equal(t, 1, item.Quantity)
	assert.Nil(t, item.ProductID)

	w = doJSON(r, http.MethodPost, "/api/order-items", `{"order_id":1,"price":3.5,"quantity":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The quantity field must be at least 1."}, fieldErrors(t, w)["quantity"])

	w = doJSON(r, http.MethodPost, "/api/payments", `{"order_id":999,"amount":10}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The selected order_id is invalid."}, fieldErrors(t, w)["order_id"])

	w = doJSON(r, http.MethodPost, "/api/payments", `{"order_id":1,"amount":10,"provider":"stripe"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCartEndpoints(t *testing.T) {
	r, db := newTestRouter(t)

	// 匿名购物车
	w := doJSON(r, http.MethodPost, "/api/carts", `{}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/carts", `{"user_id":42}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The selected user_id is invalid."}, fieldErrors(t, w)["user_id"])

	w = doJSON(r, http.MethodPost, "/api/cart-items", `{"cart_id":99,"product_id":99,"quantity":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs, "cart_id")
	assert.Contains(t, errs, "product_id")

	seedUser(t, db)
	w = doJSON(r, http.MethodPost, "/api/products",
		`{"name":"p","description":"d","price":1,"stock":1,"image_url":"http://img/p.png"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/cart-items", `{"cart_id":1,"product_id":1,"quantity":2}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateAddress(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/addresses", `{"full_name":"n"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := fieldErrors(t, w)
	for _, field := range []string{"phone", "address_line1", "city", "state", "pincode"} {
		assert.Contains(t, errs, field)
	}

	seedUser(t, db)
	w = doJSON(r, http.MethodPost, "/api/addresses",
		`{"user_id":1,"full_name":"n","phone":"1","address_line1":"a","city":"c","state":"s","pincode":"0"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateProductImage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/product-images", `{"product_id":1,"image_url":"notaurl"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The image_url field must be a valid URL."}, fieldErrors(t, w)["image_url"])

	w = doJSON(r, http.MethodPost, "/api/product-images", `{"product_id":1,"image_url":"http://img/a.png"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The selected product_id is invalid."}, fieldErrors(t, w)["product_id"])

	w = doJSON(r, http.MethodPost, "/api/products",
		`{"name":"p","description":"d","price":1,"stock":1,"image_url":"http://img/p.png"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/product-images",
		`{"product_id":1,"image_url":"http://img/a.png","is_primary":true}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateProductReview(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/product-reviews", `{"user_id":1,"product_id":1,"rating":6}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The rating field must not be greater than 5."}, fieldErrors(t, w)["rating"])

	w = doJSON(r, http.MethodPost, "/api/product-reviews", `{"user_id":1,"product_id":1,"rating":3}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs, "user_id")
	assert.Contains(t, errs, "product_id")

	seedUser(t, db)
	w = doJSON(r, http.MethodPost, "/api/products",
		`{"name":"p","description":"d","price":1,"stock":1,"image_url":"http://img/p.png"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/product-reviews",
		`{"user_id":1,"product_id":1,"rating":5,"comment":"great"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestAuthFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register",
		`{"name":"jeffrey","email":"jeffrey@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 密码太短
	w = doJSON(r, http.MethodPost, "/api/auth/register",
		`{"name":"x","email":"x@example.com","password":"short"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"The password field must be at least 8 characters."}, fieldErrors(t, w)["password"])

	w = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"jeffrey@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"These credentials do not match our records."}, fieldErrors(t, w)["email"])

	w = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"jeffrey@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	// 未登录拒绝
	w = doJSON(r, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "jeffrey@example.com")

	// 注销后会话失效
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHello(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/hello", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello this is jeffrey", decode(t, w)["message"])
}
