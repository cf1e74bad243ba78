package models

import "time"

type Appointment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	VisitDate     time.Time `gorm:"not null;index" json:"visitDate"`
	VisitApproved bool      `gorm:"default:false" json:"visitApproved"`

	UserID    uint `gorm:"not null;index" json:"userId"`
	EstateID  uint `gorm:"not null;index" json:"estateId"`
	ContactID uint `gorm:"not null;index" json:"contactId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Contact    *Contact    `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	RealEstate *RealEstate `gorm:"foreignKey:EstateID" json:"realEstate,omitempty"`
}
