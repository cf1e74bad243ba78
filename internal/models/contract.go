package models

import "time"

type Contract struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID   uint `gorm:"not null;index" json:"clientId"`
	EmployeeID uint `gorm:"not null;index" json:"employeeId"`
	EstateID   uint `gorm:"not null;index" json:"estateId"`

	// sale | lease
	Type  string  `gorm:"type:varchar(20)" json:"type"`
	Value float64 `json:"value"`
	Terms string  `gorm:"type:text" json:"terms"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client     *Client     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Employee   *Employee   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	RealEstate *RealEstate `gorm:"foreignKey:EstateID" json:"realEstate,omitempty"`
}
