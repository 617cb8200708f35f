package dto

import (
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// CreateAppointmentRequest defines the data needed to schedule an appointment.
type CreateAppointmentRequest struct {
	Date               string `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	Time               string `json:"time" binding:"required" validate:"required,datetime=15:04"`
	Client             string `json:"client" binding:"required" validate:"required,max=200"`
	ServiceDescription string `json:"serviceDescription" validate:"max=500"`
}

type AppointmentResponse struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	Client             string    `json:"client"`
	ServiceDescription string    `json:"serviceDescription"`
	CreatedAt          time.Time `json:"createdAt"`
}

func ToAppointmentResponse(a domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:                 a.ID,
		Date:               a.Date.Format(domain.DateLayout),
		Time:               a.Time,
		Client:             a.Client,
		ServiceDescription: a.ServiceDescription,
		CreatedAt:          a.CreatedAt,
	}
}

func ToListAppointmentResponse(appointments []domain.Appointment) []AppointmentResponse {
	res := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		res[i] = ToAppointmentResponse(a)
	}
	return res
}
