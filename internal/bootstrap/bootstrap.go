// Package bootstrap prepares the baseline data the site expects on every
// start: the schema, exactly one admin account, and a non-empty menu.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/spicevilla/catering/internal/config"
	"github.com/spicevilla/catering/internal/hash"
	"github.com/spicevilla/catering/internal/models"
	"github.com/spicevilla/catering/internal/repo"
)

func Run(ctx context.Context, database *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	if err := database.WithContext(ctx).AutoMigrate(&models.User{}, &models.MenuItem{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if err := EnsureAdmin(ctx, repo.NewUserRepository(database), cfg, log); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if err := SeedMenu(ctx, repo.NewMenuRepository(database)); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}

// EnsureAdmin creates the admin account on first start. Re-running is a
// no-op as long as any admin-role user exists.
func EnsureAdmin(ctx context.Context, users *repo.UserRepository, cfg *config.Config, log zerolog.Logger) error {
	count, err := users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pwHash, err := hash.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:     cfg.AdminUsername,
		Email:        strings.ToLower(cfg.AdminEmail),
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	if cfg.AdminPassword == config.DefaultAdminPassword {
		log.Warn().Str("username", admin.Username).
			Msg("admin account created with the default password, set ADMIN_PASSWORD")
	} else {
		log.Info().Str("username", admin.Username).Msg("admin account created")
	}
	return nil
}

// SeedMenu inserts the starter menu when the table is empty.
func SeedMenu(ctx context.Context, menu *repo.MenuRepository) error {
	count, err := menu.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	items := seedItems()
	for i := range items {
		if err := menu.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}
