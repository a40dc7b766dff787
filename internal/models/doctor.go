package models

type Doctor struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Surname     string `bson:"surname" json:"surname"`
	Email       string `bson:"email" json:"email"`
	SpecialtyID string `bson:"specialtyId" json:"specialtyId"` // May be empty until assigned
}
