package models

import "time"

// Payment is an append-only record of a completed transaction, linked to its
// booking by BookingID. It is never updated after insertion.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Patient       string    `bson:"patient" json:"patient"`
	Treatment     string    `bson:"treatment" json:"treatment"`
	Amount        float64   `bson:"amount" json:"amount"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
