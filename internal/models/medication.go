package models

// AvailableMedication is a catalog entry patients can add to their own list.
type AvailableMedication struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Indications string `bson:"indications" json:"indications"`
}

// Medication is a catalog entry copied into a patient's list.
type Medication struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Indications string `bson:"indications" json:"indications"`
	PatientID   string `bson:"patientId" json:"patientId"`
}
