package paymentRepo

import "doctorsportal/models"

// PaymentRepository defines methods for the append-only payment ledger.
type PaymentRepository interface {
	// Create inserts a new payment record. Payments are never updated.
	Create(p *models.Payment) error
}
