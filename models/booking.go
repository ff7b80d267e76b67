package models

import "time"

// Booking is a confirmed reservation of one slot of a treatment on a date.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	Treatment string    `bson:"treatment" json:"treatment"` // Matches Service.Name
	Date      string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	Patient   string    `bson:"patient" json:"patient"`     // Patient email
	Slot      string    `bson:"slot" json:"slot"`           // Slot label from the service catalog
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
