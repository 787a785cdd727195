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

type PairingsService struct {
	users    repository.UsersRepositoryI
	pairings repository.PairingsRepositoryI
	checkins repository.CheckinsRepositoryI
}

func NewPairingsService(users repository.UsersRepositoryI, pairings repository.PairingsRepositoryI, checkins repository.CheckinsRepositoryI) *PairingsService {
	if users == nil || pairings == nil || checkins == nil {
		log.Fatal("provided nil repository to pairings service")
	}
	return &PairingsService{
		users:    users,
		pairings: pairings,
		checkins: checkins,
	}
}

func (ps *PairingsService) Pair(ctx context.Context, leader Actor, discipleName string) (*entity.UserInfo, error) {
	if leader.Role != entity.RoleLeader {
		return nil, errorvalues.ErrForbiddenRole
	}
	disciple, err := ps.users.FindByName(ctx, discipleName)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if disciple.Role != entity.RoleDisciple {
		return nil, errorvalues.ErrForbiddenRole
	}
	err = ps.pairings.Create(ctx, leader.ID, disciple.ID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyPaired), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("pairings repository error: " + err.Error())
	}
	return &entity.UserInfo{ID: disciple.ID, Name: disciple.Name, Role: disciple.Role}, nil
}

func (ps *PairingsService) ListDisciples(ctx context.Context, leader Actor) ([]entity.UserInfo, error) {
	if leader.Role != entity.RoleLeader {
		return nil, errorvalues.ErrForbiddenRole
	}
	disciples, err := ps.pairings.ListDisciples(ctx, leader.ID)
	if err != nil {
		return nil, errors.New("pairings repository error: " + err.Error())
	}
	return disciples, nil
}

func (ps *PairingsService) LeaderOf(ctx context.Context, disciple Actor) (*entity.UserInfo, error) {
	leader, err := ps.pairings.LeaderOf(ctx, disciple.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotPaired) {
			return nil, err
		}
		return nil, errors.New("pairings repository error: " + err.Error())
	}
	return leader, nil
}

func (ps *PairingsService) DiscipleCheckins(ctx context.Context, leader Actor, discipleID uuid.UUID, pagination PaginationOpts) ([]*entity.CheckIn, error) {
	if leader.Role != entity.RoleLeader {
		return nil, errorvalues.ErrForbiddenRole
	}
	if err := ensurePaired(ctx, ps.pairings, leader.ID, discipleID); err != nil {
		return nil, err
	}
	checkins, err := ps.checkins.ListByUser(ctx, discipleID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return checkins, nil
}

func ensurePaired(ctx context.Context, pairings repository.PairingsRepositoryI, leaderID, discipleID uuid.UUID) error {
	ok, err := pairings.Exists(ctx, leaderID, discipleID)
	if err != nil {
		return errors.New("pairings repository error: " + err.Error())
	}
	if !ok {
		return errorvalues.ErrNotPaired
	}
	return nil
}
