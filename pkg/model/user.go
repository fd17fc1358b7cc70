package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RolePubOwner Role = "pub_owner"
	RoleCustomer Role = "customer"
)

type User struct {
	gorm.Model
	UUID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()"`
	Username  string
	FirstName string
	LastName  string
	Email     string
	Role      Role `gorm:"type:varchar(16);default:'customer'"`
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePubOwner, RoleCustomer:
		return true
	}

	return false
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
