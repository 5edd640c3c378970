package models

// Service is a bookable treatment with a fixed roster of offerable times.
// The catalog is maintained out of band (see tests/seed); handlers only read it.
type Service struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}
