package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trasua/internal/domain"
	"trasua/internal/service"
)

// Catalog handlers

// @Summary List milk teas
// @Tags catalog
// @Produce json
// @Param fq query string false "Filter, e.g. is_active:1"
// @Param fqnull query string false "Null filter, e.g. deleted_at"
// @Success 200 {object} map[string]any
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	list, err := s.catalog.ListMilkTeas(c, catalogFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

// @Summary List toppings
// @Tags catalog
// @Produce json
// @Param fq query string false "Filter, e.g. is_active:1,sellable:1"
// @Success 200 {object} map[string]any
// @Router /toppings [get]
func (s *Server) listToppings(c *gin.Context) {
	list, err := s.catalog.ListToppings(c, catalogFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

// @Summary List sweetness levels
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Router /sweetness_levels [get]
func (s *Server) listSweetnessLevels(c *gin.Context) {
	list, err := s.catalog.ListSweetnessLevels(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

// @Summary List ice levels
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Router /ice_levels [get]
func (s *Server) listIceLevels(c *gin.Context) {
	list, err := s.catalog.ListIceLevels(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

// @Summary List sizes
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Router /sizes [get]
func (s *Server) listSizes(c *gin.Context) {
	list, err := s.catalog.ListSizes(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

// Cart handlers

type createCartItemReq struct {
	ItemType    string `json:"item_type"`
	ProductID   int64  `json:"product_id"`
	ToppingID   int64  `json:"topping_id"`
	Quantity    int64  `json:"quantity"`
	SweetnessID string `json:"sweetness_id"`
	IceID       string `json:"ice_id"`
	SizeID      string `json:"size_id"`
	Notes       string `json:"notes"`
}

// @Summary List cart items
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]any
// @Router /cart_items [get]
func (s *Server) listCartItems(c *gin.Context) {
	list, err := s.cart.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

// @Summary Add cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param input body createCartItemReq true "Cart line"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /cart_items [post]
func (s *Server) createCartItem(c *gin.Context) {
	var req createCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}

	var (
		item *domain.CartItem
		err  error
	)
	if req.ItemType == domain.ItemTypeTopping {
		item, err = s.cart.AddStandaloneTopping(c, service.AddToppingInput{
			ToppingID: req.ToppingID,
			Quantity:  req.Quantity,
			Notes:     req.Notes,
		})
	} else {
		item, err = s.cart.AddProduct(c, service.AddProductInput{
			ProductID:   req.ProductID,
			Quantity:    req.Quantity,
			SweetnessID: req.SweetnessID,
			IceID:       req.IceID,
			SizeID:      req.SizeID,
			Notes:       req.Notes,
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

type createCartItemToppingReq struct {
	CartItemID int64 `json:"cart_item_id"`
	ToppingID  int64 `json:"topping_id"`
}

// @Summary Attach topping to a cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param input body createCartItemToppingReq true "Attachment"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /cart_item_toppings [post]
func (s *Server) createCartItemTopping(c *gin.Context) {
	var req createCartItemToppingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	if err := s.cart.AttachTopping(c, req.CartItemID, req.ToppingID); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"cart_item_id": req.CartItemID, "topping_id": req.ToppingID})
}

// @Summary Delete cart item
// @Tags cart
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /cart_items/{id} [delete]
func (s *Server) deleteCartItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid id")
		return
	}
	if err := s.cart.Remove(c, id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": id})
}

// Order handlers

type createOrderReq struct {
	PaymentMethodID int64     `json:"payment_method_id"`
	OrderTime       time.Time `json:"order_time"`
	TotalAmount     int64     `json:"total_amount"`
	DiscountAmount  int64     `json:"discount_amount"`
	IsCompleted     bool      `json:"is_completed"`
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {object} map[string]any
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	list, err := s.orders.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid id")
		return
	}
	o, err := s.orders.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, o)
}

// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	o, err := s.orders.Create(c, service.CreateInput{
		PaymentMethodID: req.PaymentMethodID,
		OrderTime:       req.OrderTime,
		TotalAmount:     req.TotalAmount,
		DiscountAmount:  req.DiscountAmount,
		IsCompleted:     req.IsCompleted,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, o)
}

type createOrderItemReq struct {
	OrderID     int64            `json:"order_id"`
	ProductID   int64            `json:"product_id"`
	ProductName string           `json:"product_name"`
	SizeID      string           `json:"size_id"`
	SweetnessID string           `json:"sweetness_id"`
	IceID       string           `json:"ice_id"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   int64            `json:"unit_price"`
	Notes       string           `json:"notes"`
	Toppings    []domain.Topping `json:"toppings"`
}

// @Summary Add order item
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderItemReq true "Order line snapshot"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /order_items [post]
func (s *Server) createOrderItem(c *gin.Context) {
	var req createOrderItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	item, err := s.orders.AddItem(c, service.ItemInput{
		OrderID:     req.OrderID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		SizeID:      req.SizeID,
		SweetnessID: req.SweetnessID,
		IceID:       req.IceID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Notes:       req.Notes,
		Toppings:    req.Toppings,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

type updateOrderReq struct {
	IsCompleted bool `json:"is_completed"`
}

// @Summary Update order completion
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param input body updateOrderReq true "Completion flag"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /orders/{id} [put]
func (s *Server) updateOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid id")
		return
	}
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	o, err := s.orders.SetCompleted(c, id, req.IsCompleted)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, o)
}

// Revenue handler

// @Summary Revenue report
// @Tags revenues
// @Produce json
// @Param startDate query string true "Start date, YYYY-MM-DD"
// @Param endDate query string true "End date, YYYY-MM-DD"
// @Param type query string true "day or month"
// @Param scope query string true "revenue, product, toppings or discount"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /revenues [get]
func (s *Server) getRevenues(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		respondBadRequest(c, "invalid startDate")
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		respondBadRequest(c, "invalid endDate")
		return
	}
	report, err := s.revenue.Report(c, service.RevenueQuery{
		Start: start,
		End:   end,
		Type:  c.Query("type"),
		Scope: c.Query("scope"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}
