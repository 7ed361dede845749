package repository

import (
	"food_ordering/internal/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) CartRepository
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	GetByUser(username string) ([]models.CartItem, error)
	GetByUserAndItem(username string, itemID uint) (*models.CartItem, error)
	Delete(item *models.CartItem) error
	DeleteByUserAndItem(username string, itemID uint) error
	DeleteByUser(username string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) WithTx(tx *gorm.DB) CartRepository {
	return &cartRepository{db: tx}
}

func (r *cartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepository) Update(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepository) GetByUser(username string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("username = ?", username).Find(&items).Error
	return items, err
}

func (r *cartRepository) GetByUserAndItem(username string, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("username = ? AND item_id = ?", username, itemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Delete(item *models.CartItem) error {
	return r.db.Delete(item).Error
}

func (r *cartRepository) DeleteByUserAndItem(username string, itemID uint) error {
	return r.db.Where("username = ? AND item_id = ?", username, itemID).Delete(&models.CartItem{}).Error
}

func (r *cartRepository) DeleteByUser(username string) error {
	return r.db.Where("username = ?", username).Delete(&models.CartItem{}).Error
}
