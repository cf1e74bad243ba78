package models

// All lista as entidades na ordem de criação das tabelas.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Employee{},
		&Owner{},
		&Client{},
		&RealEstate{},
		&Contact{},
		&Appointment{},
		&Task{},
		&Contract{},
		&Notification{},
	}
}
