package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetMostRecent(username string) (*models.Order, error)
	GetByUserAndStatus(username, status string) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetMostRecent returns the order with the highest ID for the user. IDs are
// assigned monotonically, so highest ID means most recently created.
func (r *orderRepository) GetMostRecent(username string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("username = ?", username).Order("order_id DESC").First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUserAndStatus(username, status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("username = ? AND status = ?", username, status).Find(&orders).Error
	return orders, err
}
