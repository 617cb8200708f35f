package domain

import "github.com/shopspring/decimal"

// ServiceStatus is the lifecycle state of a ServiceRecord.
type ServiceStatus string

const (
	ServiceActive    ServiceStatus = "active"
	ServiceCompleted ServiceStatus = "completed"
	ServiceCancelled ServiceStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceActive, ServiceCompleted, ServiceCancelled:
		return true
	}
	return false
}

// Label is the key used when grouping services by status. Unknown values fall into "other".
func (s ServiceStatus) Label() string {
	if s.IsValid() {
		return string(s)
	}
	return StatusLabelOther
}

// ServiceRecord is a unit of billable work for a client vehicle.
// Active → completed happens only through a period close; active → cancelled through cancel.
type ServiceRecord struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Vehicle     string          `json:"vehicle"`
	Price       decimal.Decimal `json:"price"`
	Status      ServiceStatus   `json:"status"`
	Ownership
}

// IsEditable reports whether price and details may still change.
func (s ServiceRecord) IsEditable() bool {
	return s.Status == ServiceActive
}
