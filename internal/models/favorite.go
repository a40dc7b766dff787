package models

// Favorite is a join document: one per (patient, doctor) pair.
type Favorite struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	PatientID string `bson:"patientId" json:"patientId"`
	DoctorID  string `bson:"doctorId" json:"doctorId"`
}
