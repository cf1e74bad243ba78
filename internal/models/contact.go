package models

import "time"

// Contact é o lead capturado pelo funil público. UserID só é preenchido
// quando o contato é associado ao corretor dono de um imóvel.
type Contact struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Phone string `gorm:"type:varchar(30)" json:"phone"`

	UserID *uint `gorm:"index" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Tasks        []Task        `gorm:"foreignKey:ContactID" json:"tasks,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:ContactID" json:"appointments,omitempty"`
}
