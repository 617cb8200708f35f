package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/utils/validation"
)

type settingService struct {
	BaseService
	settingRepo portsrepo.SettingRepositoryFacade
	defaults    domain.PartyNames
}

// SettingServiceOption configures the setting service
type SettingServiceOption func(*settingService)

// WithSettingClock overrides the clock used for updated_at.
func WithSettingClock(clock Clock) SettingServiceOption {
	return func(s *settingService) {
		s.clock = clock
	}
}

// NewSettingService creates a setting service. defaults are returned for keys that were never written.
func NewSettingService(repo portsrepo.SettingRepositoryFacade, defaults domain.PartyNames, options ...SettingServiceOption) portssvc.SettingSvcFacade {
	svc := &settingService{settingRepo: repo, defaults: defaults}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

func (s *settingService) GetPartyNames(ctx context.Context) (domain.PartyNames, error) {
	party1, err := s.settingOrDefault(ctx, domain.SettingParty1Name, s.defaults.Party1)
	if err != nil {
		return domain.PartyNames{}, err
	}
	party2, err := s.settingOrDefault(ctx, domain.SettingParty2Name, s.defaults.Party2)
	if err != nil {
		return domain.PartyNames{}, err
	}
	return domain.PartyNames{Party1: party1, Party2: party2}, nil
}

func (s *settingService) UpdatePartyNames(ctx context.Context, req dto.UpdatePartyNamesRequest) (domain.PartyNames, error) {
	if err := validation.Struct(req); err != nil {
		return domain.PartyNames{}, err
	}

	now := s.Now()
	for _, setting := range []domain.Setting{
		{Key: domain.SettingParty1Name, Value: req.Party1, UpdatedAt: now},
		{Key: domain.SettingParty2Name, Value: req.Party2, UpdatedAt: now},
	} {
		if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
			s.LogError(ctx, err, "Failed to upsert setting", slog.String("key", setting.Key))
			return domain.PartyNames{}, err
		}
	}

	s.LogInfo(ctx, "Party names updated")
	return domain.PartyNames{Party1: req.Party1, Party2: req.Party2}, nil
}

func (s *settingService) settingOrDefault(ctx context.Context, key, fallback string) (string, error) {
	setting, err := s.settingRepo.GetSetting(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to read setting", slog.String("key", key))
		return "", err
	}
	if setting.Value == "" {
		return fallback, nil
	}
	return setting.Value, nil
}
