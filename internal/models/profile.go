package models

import "time"

// Perfis 1:1 com User, liberados pela tag Roles da conta.

type Employee struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	CPF     string `gorm:"type:varchar(14)" json:"cpf"`
	CRECI   string `gorm:"type:varchar(20)" json:"creci"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type Owner struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	CPF           string `gorm:"type:varchar(14)" json:"cpf"`
	Phone         string `gorm:"type:varchar(30)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`
	MaritalStatus string `gorm:"type:varchar(30)" json:"marital_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	CPF        string  `gorm:"type:varchar(14)" json:"cpf"`
	Phone      string  `gorm:"type:varchar(30)" json:"phone"`
	Address    string  `gorm:"type:text" json:"address"`
	Income     float64 `json:"income"`
	Profession string  `gorm:"type:varchar(80)" json:"profession"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
