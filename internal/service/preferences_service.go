package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

type PreferencesService struct {
	repo repository.PreferencesRepositoryI
}

func NewPreferencesService(preferencesRepo repository.PreferencesRepositoryI) *PreferencesService {
	if preferencesRepo == nil {
		log.Fatal("provided nil preferencesRepo")
	}
	return &PreferencesService{
		repo: preferencesRepo,
	}
}

func DefaultPreferences(uid uuid.UUID) *entity.Preferences {
	return &entity.Preferences{
		UserID:          uid,
		Theme:           entity.ThemeSystem,
		DashboardLayout: []string{},
	}
}

func (ps *PreferencesService) Get(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error) {
	p, err := ps.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPreferencesNotFound) {
			return DefaultPreferences(uid), nil
		}
		return nil, errors.New("preferences repository error: " + err.Error())
	}
	if p.DashboardLayout == nil {
		p.DashboardLayout = []string{}
	}
	return p, nil
}

func (ps *PreferencesService) Save(ctx context.Context, uid uuid.UUID, req *PreferencesRequest) (*entity.Preferences, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	layout := req.DashboardLayout
	if layout == nil {
		layout = []string{}
	}
	p := entity.Preferences{
		UserID:          uid,
		Theme:           req.Theme,
		OnboardingSeen:  req.OnboardingSeen,
		DashboardLayout: layout,
	}
	if err := ps.repo.Save(ctx, &p); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("preferences repository error: " + err.Error())
	}
	return &p, nil
}
