package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"food_ordering/internal/models"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the menu, cart, and order operations over HTTP. It
// translates domain errors to transport responses and nothing else.
type OrderHandler struct {
	menuService  services.MenuService
	orderService services.OrderService
}

func NewOrderHandler(menuService services.MenuService, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{menuService: menuService, orderService: orderService}
}

type createMenuItemRequest struct {
	ItemName  string  `json:"item_name" binding:"required"`
	ItemPrice float64 `json:"item_price"`
}

type updateCartRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type createOrderRequest struct {
	Order struct {
		Username string `json:"username" binding:"required"`
		Status   string `json:"status" binding:"required"`
	} `json:"order" binding:"required"`
	Items []services.CartEntry `json:"items" binding:"required"`
}

// GET /menu
func (h *OrderHandler) GetMenu(c *gin.Context) {
	items, err := h.menuService.ListItems()
	if err != nil {
		respondError(c, err)
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "The menu is currently empty. Please check back later."})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /menu
func (h *OrderHandler) CreateMenuItem(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuService.CreateItem(req.ItemName, req.ItemPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /cartitems?username=
func (h *OrderHandler) GetCart(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	items, err := h.orderService.GetCart(username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /cartitems?username=
func (h *OrderHandler) AddToCart(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	var entries []services.CartEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	items, err := h.orderService.AddToCart(username, entries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, items)
}

// PUT /cartitems?username=
func (h *OrderHandler) UpdateCart(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.orderService.UpdateCart(username, req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if item == nil {
		// quantity <= 0 removed the line
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /cartitems?username=
func (h *OrderHandler) ClearCart(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	if err := h.orderService.ClearCart(username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cart cleared"})
}

// DELETE /cartitem?username=&item_id=
func (h *OrderHandler) DeleteCartItem(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(c.Query("item_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id query parameter is required"})
		return
	}

	if err := h.orderService.DeleteCartItem(username, uint(itemID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cart item deleted"})
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order := &models.Order{Username: req.Order.Username, Status: req.Order.Status}
	result, err := h.orderService.CreateOrder(order, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// POST /orders_cart?username=
func (h *OrderHandler) CreateOrderFromCart(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	result, err := h.orderService.CreateOrderFromCart(username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /orders?username=
func (h *OrderHandler) GetMostRecentOrder(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetMostRecentOrder(username)
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /orders/history?username=&status=
func (h *OrderHandler) OrderHistory(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	orders, err := h.orderService.OrdersByStatus(username, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func requireUsername(c *gin.Context) (string, bool) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username query parameter is required"})
		return "", false
	}
	return username, true
}

func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var nfErr *services.NotFoundError
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
