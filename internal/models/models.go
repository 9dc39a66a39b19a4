package models

import "time"

// Role is the authorization tier attached to a user account.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"          json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80;not null"      json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120;not null"     json:"email"`
	PasswordHash string    `gorm:"size:255;not null"                 json:"-"`
	Role         Role      `gorm:"size:20;not null;default:customer" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin exists so templates can branch on the role without comparing
// a Role against a plain string.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type MenuItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:100;not null"        json:"name"`
	Description string  `gorm:"type:text"                json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Category    string  `gorm:"size:50;not null"         json:"category"`
}
