package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/shop-admin/config"
	_ "github.com/d60-Lab/shop-admin/docs" // swagger 文档
	"github.com/d60-Lab/shop-admin/internal/api/handler"
	"github.com/d60-Lab/shop-admin/internal/middleware"
)

// NewRouter 组装中间件链与路由表
func NewRouter(cfg *config.Config, h *handler.Handler, authMW gin.HandlerFunc) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.Recovery(cfg.Sentry.DSN != ""))
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware(cfg.App.Name))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(middleware.CSRF())

	r.GET("/healthz", h.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

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

	return r
}
