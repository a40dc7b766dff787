package models

type Patient struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	Surname  string `bson:"surname" json:"surname"`
	Phone    string `bson:"phone" json:"phone"`
	Sex      string `bson:"sex" json:"sex"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // Hide from JSON responses
	Role     string `bson:"role" json:"role"`  // "patient" or "admin"
}
