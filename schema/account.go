package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleDonor     = "donor"
	RoleHospital  = "hospital"
	RoleBloodBank = "bloodbank"
)

// Roles lists every role an account may register with.
var Roles = []string{RoleDonor, RoleHospital, RoleBloodBank}

// RequesterRoles are the roles allowed to own blood requests.
var RequesterRoles = []string{RoleHospital, RoleBloodBank}

// IsRequesterRole tells whether a role may create and manage blood requests.
func IsRequesterRole(role string) bool {
	return contains(RequesterRoles, role)
}

// IsValidRole tells whether a role is known.
func IsValidRole(role string) bool {
	return contains(Roles, role)
}

type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email        string    `json:"email" gorm:"unique_index;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID string
	Role   string
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
