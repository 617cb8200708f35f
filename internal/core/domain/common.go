package domain

import "time"

// DateLayout is the calendar-date format used for appointment and period dates.
const DateLayout = "2006-01-02"

// Ownership ties a record to the tenant that created it.
type Ownership struct {
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatusLabelOther is the history bucket for rows whose status is missing or unrecognised.
const StatusLabelOther = "other"

// PageCursor marks the last row of a page in (created_at, id) descending order.
type PageCursor struct {
	CreatedAt time.Time
	ID        string
}
