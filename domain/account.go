package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleGuru   Role = "guru"
	RoleSantri Role = "santri"
	RoleWali   Role = "wali"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(s)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleGuru:
		return RoleGuru, nil
	case RoleSantri:
		return RoleSantri, nil
	case RoleWali:
		return RoleWali, nil
	}
	return "", fmt.Errorf("unknown role %q: %w", s, ErrValidation)
}

// Account is the credential row shared by every actor (pengguna). Guardian
// accounts start inactive and are switched on when their santri is verified.
type Account struct {
	AccountID int       `gorm:"primaryKey;autoIncrement" json:"account_id"`
	FullName  string    `gorm:"type:varchar(150);not null" json:"full_name" valid:"required~Full name is required"`
	Username  string    `gorm:"type:varchar(100);unique" json:"username"`
	Email     *string   `gorm:"type:varchar(150);unique" json:"email,omitempty"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"`
	Telephone string    `gorm:"type:varchar(15)" json:"telephone"`
	Role      Role      `gorm:"type:role_enum;not null" json:"role"`
	Active    bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
