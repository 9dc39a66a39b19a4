package service

import (
	"context"

	"github.com/spicevilla/catering/internal/models"
	"github.com/spicevilla/catering/internal/repo"
)

type MenuService struct {
	menu *repo.MenuRepository
}

func NewMenuService(menu *repo.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

// List returns every menu item, ordered by category then id.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.menu.List(ctx)
}
