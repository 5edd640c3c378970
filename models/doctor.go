package models

// Doctor is a roster entry managed only by admins.
type Doctor struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Specialty string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string `bson:"img,omitempty" json:"img,omitempty"`
}
