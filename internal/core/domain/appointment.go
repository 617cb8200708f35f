package domain

import "time"

// Appointment is a scheduled client visit. Time is kept as the "HH:MM" string the client sent.
type Appointment struct {
	ID                 string    `json:"id"`
	Date               time.Time `json:"date"`
	Time               string    `json:"time"`
	Client             string    `json:"client"`
	ServiceDescription string    `json:"serviceDescription"`
	Ownership
}
