package services

import (
	"strings"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
)

type MenuService interface {
	ListItems() ([]models.MenuItem, error)
	CreateItem(name string, price float64) (*models.MenuItem, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) ListItems() ([]models.MenuItem, error) {
	return s.menuRepo.GetAll()
}

func (s *menuService) CreateItem(name string, price float64) (*models.MenuItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErrorf("item name must not be empty")
	}
	if price < 0 {
		return nil, validationErrorf("item price must not be negative")
	}

	item := &models.MenuItem{ItemName: name, ItemPrice: price}
	if err := s.menuRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}
