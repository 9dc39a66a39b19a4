package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/spicevilla/catering/internal/models"
)

type MenuRepository struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{db: db} }

func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Order("category ASC, id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error
	return count, err
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
