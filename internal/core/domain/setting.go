package domain

import "time"

// Setting keys read by the dashboard.
const (
	SettingParty1Name = "party1_name"
	SettingParty2Name = "party2_name"
)

// Setting is a global key/value pair.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PartyNames are the display names of the two parties.
type PartyNames struct {
	Party1 string `json:"party1"`
	Party2 string `json:"party2"`
}
