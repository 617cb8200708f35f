package mapping

import (
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/models"
)

func ToModelAppointment(d domain.Appointment) models.Appointment {
	return models.Appointment{
		ID:                 d.ID,
		OwnerID:            d.OwnerID,
		Date:               d.Date.Format(domain.DateLayout),
		Time:               d.Time,
		Client:             d.Client,
		ServiceDescription: d.ServiceDescription,
		CreatedAt:          d.CreatedAt,
	}
}

func ToDomainAppointment(m models.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:                 m.ID,
		Date:               parseDate(m.Date),
		Time:               m.Time,
		Client:             m.Client,
		ServiceDescription: m.ServiceDescription,
		Ownership:          domain.Ownership{OwnerID: m.OwnerID, CreatedAt: m.CreatedAt},
	}
}

func ToDomainAppointmentSlice(ms []models.Appointment) []domain.Appointment {
	res := make([]domain.Appointment, len(ms))
	for i, m := range ms {
		res[i] = ToDomainAppointment(m)
	}
	return res
}
