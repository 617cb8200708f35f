package mapping

import (
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/models"
)

// ToModelServiceRecord converts a domain.ServiceRecord to a storage row
func ToModelServiceRecord(d domain.ServiceRecord) models.ServiceRecord {
	status := string(d.Status)
	return models.ServiceRecord{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Description: d.Description,
		Vehicle:     d.Vehicle,
		Price:       d.Price,
		Status:      &status,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainServiceRecord converts a storage row to a domain.ServiceRecord.
// A NULL status maps to the empty status, which reports as "other".
func ToDomainServiceRecord(m models.ServiceRecord) domain.ServiceRecord {
	var status domain.ServiceStatus
	if m.Status != nil {
		status = domain.ServiceStatus(*m.Status)
	}
	return domain.ServiceRecord{
		ID:          m.ID,
		Description: m.Description,
		Vehicle:     m.Vehicle,
		Price:       m.Price,
		Status:      status,
		Ownership:   domain.Ownership{OwnerID: m.OwnerID, CreatedAt: m.CreatedAt},
	}
}

func ToDomainServiceRecordSlice(ms []models.ServiceRecord) []domain.ServiceRecord {
	res := make([]domain.ServiceRecord, len(ms))
	for i, m := range ms {
		res[i] = ToDomainServiceRecord(m)
	}
	return res
}
