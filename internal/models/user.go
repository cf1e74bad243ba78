package models

import (
	"time"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleOwner    Role = "OWNER"
	RoleClient   Role = "CLIENT"
)

// User é a conta de acesso. Roles vazio significa conta sem perfil definido;
// o valor da tag decide qual perfil (Employee/Owner/Client) pode ser criado.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	User     string `gorm:"uniqueIndex;not null" json:"user"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Roles     Role    `gorm:"type:varchar(20);index" json:"roles"`
	Image     string  `gorm:"type:text" json:"image"`
	ResetCode *string `gorm:"type:varchar(10)" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:UserID;references:ID" json:"employee,omitempty"`
	Owner    *Owner    `gorm:"foreignKey:UserID;references:ID" json:"owner,omitempty"`
	Client   *Client   `gorm:"foreignKey:UserID;references:ID" json:"client,omitempty"`

	RealEstates []RealEstate `gorm:"foreignKey:UserID;references:ID" json:"real_estates,omitempty"`
}
