package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin          = 1
	RoleRevenueManager = 2
	RoleViewer         = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	PropertyIDs  []string   `json:"property_ids"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	// Propriedades que o usuário pode consultar; vazio significa todas
	UserProperties []string
	jwt.RegisteredClaims
}

// CanAccessProperty verifica se o usuário do token pode consultar a propriedade
func (c *Claims) CanAccessProperty(propertyID string) bool {
	if c.UserRoleID == RoleAdmin || len(c.UserProperties) == 0 {
		return true
	}
	for _, id := range c.UserProperties {
		if id == propertyID {
			return true
		}
	}
	return false
}
