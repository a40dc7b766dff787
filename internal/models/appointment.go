package models

type Appointment struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Date        string `bson:"date" json:"date"` // "2006-01-02"
	Time        string `bson:"time" json:"time"` // "15:04"
	SpecialtyID string `bson:"specialtyId" json:"specialtyId"`
	DoctorID    string `bson:"doctorId" json:"doctorId"`
	PatientID   string `bson:"patientId" json:"patientId"`
}
