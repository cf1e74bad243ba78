package models

import "time"

// Status usados pelo fluxo de agendamento e pelos relatórios.
const (
	TaskStatusAwaitingVisit = "Aguardando Visita"
	TaskStatusInProgress    = "Em Andamento"
	TaskStatusDone          = "Concluído"
)

type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Status      string `gorm:"type:varchar(40);not null" json:"status"`
	Description string `gorm:"type:text" json:"description"`

	UserID        uint  `gorm:"not null;index" json:"userId"`
	ContactID     uint  `gorm:"not null;index" json:"contactId"`
	EstateID      uint  `gorm:"not null;index" json:"estateId"`
	AppointmentID *uint `gorm:"index" json:"appointmentId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Contact     *Contact     `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	RealEstate  *RealEstate  `gorm:"foreignKey:EstateID" json:"realEstate,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}
