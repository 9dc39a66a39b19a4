// Package repo holds the GORM-backed persistence layer. Lookup misses and
// uniqueness violations come back as the sentinel errors below so callers
// never have to inspect driver errors.
package repo

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already registered")
)
