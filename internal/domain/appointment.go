package domain

import "time"

// Appointment is a customer service request. Records are immutable once
// created; follow-up happens over WhatsApp, outside this system.
// Date and Time are kept as opaque strings, no calendar semantics apply.
type Appointment struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `json:"name"`
	Whatsapp    string    `json:"whatsapp"`
	CarModel    string    `json:"carModel"`
	Description string    `json:"description"`
	Notes       string    `json:"notas"`
	Date        string    `gorm:"size:32" json:"date"`
	Time        string    `gorm:"size:32" json:"time"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName Specify table name
func (Appointment) TableName() string {
	return "appointments"
}
