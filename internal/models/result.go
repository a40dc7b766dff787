package models

type Result struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	Date          string `bson:"date" json:"date"`
	Description   string `bson:"description" json:"description"`
	AppointmentID string `bson:"appointmentId" json:"appointmentId"`
	PatientID     string `bson:"patientId" json:"patientId"`
	PDFURL        string `bson:"pdfUrl" json:"pdfUrl"`
}
