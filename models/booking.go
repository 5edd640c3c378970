package models

import "time"

// Booking is a patient's reservation of one service slot on one date.
// (Treatment, Date, Patient) is the conflict key: the bookings collection
// carries a unique compound index on it, so at most one booking can exist
// per key regardless of concurrent requests.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Treatment     string    `bson:"treatment" json:"treatment"`
	Date          string    `bson:"date" json:"date"`
	Slot          string    `bson:"slot" json:"slot"`
	Patient       string    `bson:"patient" json:"patient"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	Paid          bool      `bson:"paid" json:"paid"`
	TransactionID string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// AvailableService is a catalog entry annotated with the slots still open
// on the requested date.
type AvailableService struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}
