package models

// Service is a bookable treatment with its fixed daily slot catalog.
type Service struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`   // Treatment name, join key for bookings
	Slots []string `bson:"slots" json:"slots"` // Ordered slot labels, e.g. "10:00 AM"
}
