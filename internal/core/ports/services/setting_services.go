package services

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
)

// PartyNamesReaderSvc resolves party display names, falling back to configured defaults.
type PartyNamesReaderSvc interface {
	GetPartyNames(ctx context.Context) (domain.PartyNames, error)
}

// SettingSvcFacade reads and writes party names.
type SettingSvcFacade interface {
	PartyNamesReaderSvc
	UpdatePartyNames(ctx context.Context, req dto.UpdatePartyNamesRequest) (domain.PartyNames, error)
}
