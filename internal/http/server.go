package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trasua/internal/repository"
	"trasua/internal/service"
	"trasua/internal/shop"
)

type Server struct {
	engine  *gin.Engine
	prefix  string
	catalog *service.CatalogService
	cart    *service.CartService
	orders  *service.OrderService
	revenue *service.RevenueService
	auth    *service.AuthService
}

func NewServer(prefix string, catalog *service.CatalogService, cart *service.CartService, orders *service.OrderService, revenue *service.RevenueService, auth *service.AuthService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{
		engine:  r,
		prefix:  normalizePrefix(prefix),
		catalog: catalog,
		cart:    cart,
		orders:  orders,
		revenue: revenue,
		auth:    auth,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func normalizePrefix(p string) string {
	if p == "" {
		p = "/v1/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(p, "/")
}

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// the browser session cookie endpoint lives outside the API prefix
	s.engine.PUT("/api/cookie", s.putCookie)
	s.engine.DELETE("/api/cookie", s.deleteCookie)

	api := s.engine.Group(s.prefix)
	{
		api.GET("products", s.listProducts)
		api.GET("toppings", s.listToppings)
		api.GET("sweetness_levels", s.listSweetnessLevels)
		api.GET("ice_levels", s.listIceLevels)
		api.GET("sizes", s.listSizes)
		api.GET("cart_items", s.listCartItems)
		api.GET("orders", s.listOrders)
		api.GET("orders/:id", s.getOrder)
		api.GET("revenues", s.getRevenues)

		api.POST("login", s.login)
		api.POST("token", s.refreshToken)

		authed := api.Group("", s.requireAuth())
		authed.GET("me", s.me)
		authed.POST("cart_items", s.createCartItem)
		authed.POST("cart_item_toppings", s.createCartItemTopping)
		authed.DELETE("cart_items/:id", s.deleteCartItem)
		authed.POST("orders", s.createOrder)
		authed.POST("order_items", s.createOrderItem)
		authed.PUT("orders/:id", s.updateOrder)
	}
}

// envelope helpers

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, err error) {
	c.JSON(mapErrorToStatus(err), gin.H{"status": "error", "error": err.Error()})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": msg})
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	var cashErr *shop.CashError
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrCartEmpty),
		errors.As(err, &cashErr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// catalogFilter reads the fq query parameters the storefront sends, e.g.
// fq=is_active:1 or fq=is_active:1,sellable:1. fqnull=deleted_at is
// accepted for compatibility; soft-deleted rows are excluded anyway.
func catalogFilter(c *gin.Context) repository.CatalogFilter {
	var f repository.CatalogFilter
	for _, fq := range c.QueryArray("fq") {
		for _, clause := range strings.Split(fq, ",") {
			switch clause {
			case "is_active:1":
				f.ActiveOnly = true
			case "sellable:1":
				f.SellableOnly = true
			}
		}
	}
	return f
}
