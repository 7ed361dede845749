package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"gorm.io/gorm"
)

// CartEntry is one (item, quantity) pair supplied by a caller, for cart adds
// and explicit order lines.
type CartEntry struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

// OrderWithItems is the result of the order-creation paths: the order row
// together with the lines snapshotted into it.
type OrderWithItems struct {
	Order *models.Order      `json:"order"`
	Items []models.OrderItem `json:"items"`
}

// OrderService owns every cart mutation and the transactional conversion of a
// cart into an order.
type OrderService interface {
	GetCart(username string) ([]models.CartItem, error)
	AddToCart(username string, entries []CartEntry) ([]models.CartItem, error)
	UpdateCart(username string, itemID uint, quantity int) (*models.CartItem, error)
	DeleteCartItem(username string, itemID uint) error
	ClearCart(username string) error
	CreateOrder(order *models.Order, lines []CartEntry) (*OrderWithItems, error)
	CreateOrderFromCart(username string) (*OrderWithItems, error)
	GetMostRecentOrder(username string) (*models.Order, error)
	OrdersByStatus(username, status string) ([]models.Order, error)
}

type orderService struct {
	db            *gorm.DB
	menuRepo      repository.MenuRepository
	cartRepo      repository.CartRepository
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	log           *slog.Logger

	// per-user serialization for the cart drain; two concurrent drains for
	// the same user must not both consume the same cart snapshot
	userLocks sync.Map
}

func NewOrderService(
	db *gorm.DB,
	menuRepo repository.MenuRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	log *slog.Logger,
) OrderService {
	return &orderService{
		db:            db,
		menuRepo:      menuRepo,
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		log:           log,
	}
}

func (s *orderService) GetCart(username string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(username)
}

// AddToCart merges the given entries into the user's cart: an existing line
// for (username, item) has its quantity incremented, a missing one is created.
// The whole batch is validated before any write and committed as one
// transaction, so a bad entry leaves the cart untouched.
func (s *orderService) AddToCart(username string, entries []CartEntry) ([]models.CartItem, error) {
	if len(entries) == 0 {
		return nil, validationErrorf("no cart entries provided")
	}
	for _, e := range entries {
		if e.Quantity <= 0 {
			return nil, validationErrorf("quantity must be greater than zero for item %d", e.ItemID)
		}
	}
	for _, e := range entries {
		if _, err := s.menuRepo.GetByID(e.ItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErrorf("menu item %d not found", e.ItemID)
			}
			return nil, fmt.Errorf("failed to look up menu item %d: %w", e.ItemID, err)
		}
	}

	var processed []models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		carts := s.cartRepo.WithTx(tx)
		for _, e := range entries {
			existing, err := carts.GetByUserAndItem(username, e.ItemID)
			switch {
			case err == nil:
				existing.Quantity += e.Quantity
				if err := carts.Update(existing); err != nil {
					return err
				}
				processed = append(processed, *existing)
			case errors.Is(err, gorm.ErrRecordNotFound):
				line := models.CartItem{Username: username, ItemID: e.ItemID, Quantity: e.Quantity}
				if err := carts.Create(&line); err != nil {
					return err
				}
				processed = append(processed, line)
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add items to cart: %w", err)
	}
	return processed, nil
}

// UpdateCart overwrites the quantity of an existing cart line. A quantity of
// zero or less deletes the line and returns nil.
func (s *orderService) UpdateCart(username string, itemID uint, quantity int) (*models.CartItem, error) {
	existing, err := s.cartRepo.GetByUserAndItem(username, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErrorf("cart item %d not found for user %s", itemID, username)
		}
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	if quantity <= 0 {
		if err := s.cartRepo.Delete(existing); err != nil {
			return nil, fmt.Errorf("failed to remove cart item: %w", err)
		}
		return nil, nil
	}

	existing.Quantity = quantity
	if err := s.cartRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return existing, nil
}

func (s *orderService) DeleteCartItem(username string, itemID uint) error {
	return s.cartRepo.DeleteByUserAndItem(username, itemID)
}

func (s *orderService) ClearCart(username string) error {
	return s.cartRepo.DeleteByUser(username)
}

// CreateOrder creates an order from an explicitly supplied line list,
// independent of any cart state. Every referenced item must exist and every
// quantity must be positive; the order row and all its lines commit as one
// transaction.
func (s *orderService) CreateOrder(order *models.Order, lines []CartEntry) (*OrderWithItems, error) {
	if order == nil || order.Username == "" {
		return nil, validationErrorf("order username must not be empty")
	}
	if len(lines) == 0 {
		return nil, validationErrorf("order must have at least one line")
	}
	seen := make(map[uint]bool, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, validationErrorf("quantity must be greater than zero for item %d", l.ItemID)
		}
		if seen[l.ItemID] {
			return nil, validationErrorf("duplicate order line for item %d", l.ItemID)
		}
		seen[l.ItemID] = true
		if _, err := s.menuRepo.GetByID(l.ItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErrorf("menu item %d not found", l.ItemID)
			}
			return nil, fmt.Errorf("failed to look up menu item %d: %w", l.ItemID, err)
		}
	}

	// identity is assigned by the store, never by the caller
	order.OrderID = 0
	if order.Status == "" {
		order.Status = string(models.OrderReceived)
	}

	var items []models.OrderItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		orderItems := s.orderItemRepo.WithTx(tx)
		for _, l := range lines {
			oi := models.OrderItem{OrderID: order.OrderID, ItemID: l.ItemID, Quantity: l.Quantity}
			if err := orderItems.Create(&oi); err != nil {
				return err
			}
			items = append(items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.log.Info("order created", "username", order.Username, "order_id", order.OrderID, "lines", len(items))
	return &OrderWithItems{Order: order, Items: items}, nil
}

// CreateOrderFromCart drains the user's cart into a new order: every cart
// line becomes an order line and the cart lines are removed, all within one
// transaction. Drains for the same user are serialized, so a concurrent
// second drain sees the emptied cart and fails with ErrEmptyCart instead of
// producing a duplicate order.
func (s *orderService) CreateOrderFromCart(username string) (*OrderWithItems, error) {
	mu := s.lockUser(username)
	defer mu.Unlock()

	lines, err := s.cartRepo.GetByUser(username)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := models.Order{Username: username, Status: string(models.OrderReceived)}
	var items []models.OrderItem
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(&order); err != nil {
			return err
		}
		orderItems := s.orderItemRepo.WithTx(tx)
		for _, c := range lines {
			oi := models.OrderItem{OrderID: order.OrderID, ItemID: c.ItemID, Quantity: c.Quantity}
			if err := orderItems.Create(&oi); err != nil {
				return err
			}
			items = append(items, oi)
		}
		return s.cartRepo.WithTx(tx).DeleteByUser(username)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order from cart: %w", err)
	}

	s.log.Info("cart drained", "username", username, "order_id", order.OrderID, "lines", len(items))
	return &OrderWithItems{Order: &order, Items: items}, nil
}

// GetMostRecentOrder returns the user's latest order, or nil without error if
// the user has never ordered.
func (s *orderService) GetMostRecentOrder(username string) (*models.Order, error) {
	order, err := s.orderRepo.GetMostRecent(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up most recent order: %w", err)
	}
	return order, nil
}

// OrdersByStatus returns the user's orders in the given status. Statuses
// outside the small whitelist yield an empty result rather than an error.
func (s *orderService) OrdersByStatus(username, status string) ([]models.Order, error) {
	switch models.OrderStatus(status) {
	case models.OrderReceived, models.OrderPreparing:
	default:
		return []models.Order{}, nil
	}
	return s.orderRepo.GetByUserAndStatus(username, status)
}

// lockUser acquires and returns the mutex for a username, creating it on
// first use. The caller unlocks.
func (s *orderService) lockUser(username string) *sync.Mutex {
	v, _ := s.userLocks.LoadOrStore(username, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}
