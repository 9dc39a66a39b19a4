package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/spicevilla/catering/internal/models"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// Lookups are case-sensitive exact matches against the unique columns.

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create persists u. Uniqueness is enforced by the database indexes, so a
// concurrent insert of the same username or email loses here rather than at
// some prior read.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.attributeDuplicate(ctx, u)
	}
	return err
}

// attributeDuplicate decides which unique column collided. The reads here
// only pick the error value; the failed insert above stays the single write
// authority.
func (r *UserRepository) attributeDuplicate(ctx context.Context, u *models.User) error {
	if _, err := r.FindByUsername(ctx, u.Username); err == nil {
		return ErrDuplicateUsername
	}
	if _, err := r.FindByEmail(ctx, u.Email); err == nil {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
