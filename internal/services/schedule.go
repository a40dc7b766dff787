package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// DateLayout is the stored appointment date format.
const DateLayout = "2006-01-02"

// TimeLayout is the stored appointment time format.
const TimeLayout = "15:04"

// PartitionAppointments splits appointment documents into upcoming and past
// relative to today. An appointment on today's date counts as upcoming.
// Dates are parsed and compared as real dates; a document whose date does
// not parse goes to past, so the two halves always cover the whole input.
func PartitionAppointments(docs []bson.M, today time.Time) (upcoming, past []bson.M) {
	upcoming = make([]bson.M, 0, len(docs))
	past = make([]bson.M, 0)
	year, month, dayOfMonth := today.Date()
	day := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)

	for _, doc := range docs {
		raw, _ := doc["date"].(string)
		date, err := time.Parse(DateLayout, raw)
		if err != nil || date.Before(day) {
			past = append(past, doc)
			continue
		}
		upcoming = append(upcoming, doc)
	}
	return upcoming, past
}
