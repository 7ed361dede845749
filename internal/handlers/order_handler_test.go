package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"food_ordering/internal/database"
	"food_ordering/internal/handlers"
	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*services.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*services.Session)}
}

func (f *fakeSessionStore) Set(tokenID string, session *services.Session, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[tokenID] = session
	return nil
}

func (f *fakeSessionStore) Get(tokenID string) (*services.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[tokenID]
	if !ok {
		return nil, services.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) Delete(tokenID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, tokenID)
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	menuRepo := repository.NewMenuRepository(db)
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(
		db,
		menuRepo,
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		log,
	)
	userService := services.NewUserService(
		repository.NewUserRepository(db),
		newFakeSessionStore(),
		"test-secret",
		20*time.Minute,
	)
	chatService := services.NewChatService(repository.NewConversationRepository(db))

	return handlers.SetupRouter(
		handlers.NewOrderHandler(menuService, orderService),
		handlers.NewUserHandler(userService, chatService),
		userService,
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createMenuItem(t *testing.T, router *gin.Engine, name string, price float64) models.MenuItem {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/order/menu", gin.H{"item_name": name, "item_price": price}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var item models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func TestGetMenu_EmptyIs404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/order/menu", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuCreateAndList(t *testing.T) {
	router := newTestRouter(t)

	createMenuItem(t, router, "Margherita", 9.50)

	w := doJSON(t, router, http.MethodGet, "/api/v1/order/menu", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].ItemName)
}

func TestCreateMenuItem_NegativePriceIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/order/menu", gin.H{"item_name": "Bad", "item_price": -2.0}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartRoutes_RequireUsername(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/order/cartitems"},
		{http.MethodPost, "/api/v1/order/cartitems"},
		{http.MethodPut, "/api/v1/order/cartitems"},
		{http.MethodDelete, "/api/v1/order/cartitems"},
		{http.MethodDelete, "/api/v1/order/cartitem"},
		{http.MethodPost, "/api/v1/order/orders_cart"},
		{http.MethodGet, "/api/v1/order/orders"},
	} {
		w := doJSON(t, router, tc.method, tc.path, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAddToCart_CreatedThenMerged(t *testing.T) {
	router := newTestRouter(t)
	item := createMenuItem(t, router, "Margherita", 9.50)

	body := []gin.H{{"item_id": item.ItemID, "quantity": 2}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/order/cartitems?username=alice", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/order/cartitems?username=alice", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/order/cartitems?username=alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestAddToCart_UnknownItemIs400(t *testing.T) {
	router := newTestRouter(t)

	body := []gin.H{{"item_id": 999, "quantity": 1}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/order/cartitems?username=alice", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCart_DeleteViaZeroReturnsEmptyObject(t *testing.T) {
	router := newTestRouter(t)
	item := createMenuItem(t, router, "Margherita", 9.50)

	body := []gin.H{{"item_id": item.ItemID, "quantity": 2}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/order/cartitems?username=alice", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/order/cartitems?username=alice", gin.H{"item_id": item.ItemID, "quantity": 0}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestUpdateCart_MissingLineIs404(t *testing.T) {
	router := newTestRouter(t)
	item := createMenuItem(t, router, "Margherita", 9.50)

	w := doJSON(t, router, http.MethodPut, "/api/v1/order/cartitems?username=alice", gin.H{"item_id": item.ItemID, "quantity": 1}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderFromCart_EmptyCartIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/order/orders_cart?username=alice", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}

func TestOrderFlow_CartToOrder(t *testing.T) {
	router := newTestRouter(t)
	item := createMenuItem(t, router, "Margherita", 9.50)

	body := []gin.H{{"item_id": item.ItemID, "quantity": 3}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/order/cartitems?username=alice", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/order/orders_cart?username=alice", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var result services.OrderWithItems
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotNil(t, result.Order)
	assert.Equal(t, "received", result.Order.Status)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 3, result.Items[0].Quantity)

	w = doJSON(t, router, http.MethodGet, "/api/v1/order/cartitems?username=alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart)

	w = doJSON(t, router, http.MethodGet, "/api/v1/order/orders?username=alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recent models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	assert.Equal(t, result.Order.OrderID, recent.OrderID)
}

func TestGetMostRecentOrder_NoOrdersIsEmptyObject(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/order/orders?username=alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())
}

func TestCreateOrder_ExplicitLines(t *testing.T) {
	router := newTestRouter(t)
	item := createMenuItem(t, router, "Margherita", 9.50)

	body := gin.H{
		"order": gin.H{"username": "alice", "status": "received"},
		"items": []gin.H{{"item_id": item.ItemID, "quantity": 2}},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/order/orders", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var result services.OrderWithItems
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotZero(t, result.Order.OrderID)
	require.Len(t, result.Items, 1)
}
