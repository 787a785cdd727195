package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/JuliPapp/Redimfinal-sub000/internal/checkin"
	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

const recentWindow = 7 * 24 * time.Hour

type CheckinsService struct {
	repo repository.CheckinsRepositoryI
	now  func() time.Time
}

func NewCheckinsService(checkinsRepo repository.CheckinsRepositoryI) *CheckinsService {
	if checkinsRepo == nil {
		log.Fatal("provided nil checkinsRepo")
	}
	return &CheckinsService{
		repo: checkinsRepo,
		now:  time.Now,
	}
}

func (cs *CheckinsService) Create(ctx context.Context, uid uuid.UUID, in checkin.Input) (*CheckinResult, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, err)
	}
	risk := checkin.Classify(in)
	c := entity.CheckIn{
		UserID:              uid,
		Struggles:           in.Struggles,
		StruggleIntensities: in.StruggleIntensities,
		Intensity:           in.Intensity,
		Trigger:             in.Trigger,
		Emotions:            in.Emotions,
		Risk:                risk,
	}
	if err := cs.repo.Create(ctx, &c); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return &CheckinResult{
		CheckIn:  &c,
		Risk:     risk,
		Next:     checkin.RouteFor(risk),
		Emotions: checkin.Partition(c.Emotions),
	}, nil
}

func (cs *CheckinsService) List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.CheckIn, error) {
	checkins, err := cs.repo.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return checkins, nil
}

func (cs *CheckinsService) Stats(ctx context.Context, uid uuid.UUID) (*entity.CheckInStats, error) {
	stats, err := cs.repo.Stats(ctx, uid, cs.now().Add(-recentWindow))
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return stats, nil
}
