package models

import (
	"time"

	"gorm.io/datatypes"
)

type RealEstate struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Registration string `gorm:"uniqueIndex;not null" json:"registration"`

	Street     string `gorm:"type:varchar(150)" json:"street"`
	Number     string `gorm:"type:varchar(20)" json:"number"`
	Complement string `gorm:"type:varchar(100)" json:"complement"`
	District   string `gorm:"type:varchar(100)" json:"district"`
	ZipCode    string `gorm:"type:varchar(12)" json:"zipCode"`
	City       string `gorm:"type:varchar(120)" json:"city"`
	State      string `gorm:"type:varchar(2)" json:"state"`

	// Medidas e cômodos ficam como texto livre, do jeito que o formulário envia.
	BuiltArea   string `gorm:"type:varchar(20)" json:"builtArea"`
	TotalArea   string `gorm:"type:varchar(20)" json:"totalArea"`
	Bedrooms    string `gorm:"type:varchar(10)" json:"bedrooms"`
	Bathrooms   string `gorm:"type:varchar(10)" json:"bathrooms"`
	LivingRooms string `gorm:"type:varchar(10)" json:"livingRooms"`
	Kitchens    string `gorm:"type:varchar(10)" json:"kitchens"`

	Garage bool `json:"garage"`
	Yard   bool `json:"yard"`
	Pool   bool `json:"pool"`

	Type        string  `gorm:"type:varchar(40);index" json:"type"`
	Description string  `gorm:"type:text" json:"description"`
	SalePrice   float64 `json:"salePrice"`

	// Status true = disponível para visitação/venda.
	Status     bool           `gorm:"default:true" json:"status"`
	IsPosted   bool           `gorm:"default:false" json:"isPosted"`
	ViewsCount int            `gorm:"default:0" json:"viewsCount"`
	Images     datatypes.JSON `json:"images"`

	UserID uint `gorm:"not null;index" json:"userId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:EstateID" json:"appointments,omitempty"`
	Tasks        []Task        `gorm:"foreignKey:EstateID" json:"tasks,omitempty"`
}
