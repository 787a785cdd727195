package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JuliPapp/Redimfinal-sub000/internal/checkin"
	"github.com/JuliPapp/Redimfinal-sub000/internal/content"
	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository/mocks"
	"github.com/JuliPapp/Redimfinal-sub000/internal/service"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepositoryI(ctrl)
	pairings := mocks.NewMockPairingsRepositoryI(ctrl)
	ps := service.NewPairingsService(users, pairings, mocks.NewMockCheckinsRepositoryI(ctrl))
	ctx := context.Background()
	maria := &entity.User{ID: discipleID, Name: "maria", Role: entity.RoleDisciple}

	t.Run("success", func(t *testing.T) {
		users.EXPECT().FindByName(ctx, "maria").Return(maria, nil)
		pairings.EXPECT().Create(ctx, leaderID, discipleID).Return(nil)
		info, err := ps.Pair(ctx, leader, "maria")
		require.NoError(t, err)
		assert.Equal(t, entity.UserInfo{ID: discipleID, Name: "maria", Role: entity.RoleDisciple}, *info)
	})
	t.Run("disciple has a leader", func(t *testing.T) {
		users.EXPECT().FindByName(ctx, "maria").Return(maria, nil)
		pairings.EXPECT().Create(ctx, leaderID, discipleID).Return(errorvalues.ErrAlreadyPaired)
		_, err := ps.Pair(ctx, leader, "maria")
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyPaired)
	})
	t.Run("target is a leader", func(t *testing.T) {
		users.EXPECT().FindByName(ctx, "pedro").Return(&entity.User{ID: uuid.New(), Name: "pedro", Role: entity.RoleLeader}, nil)
		_, err := ps.Pair(ctx, leader, "pedro")
		assert.ErrorIs(t, err, errorvalues.ErrForbiddenRole)
	})
	t.Run("unknown disciple", func(t *testing.T) {
		users.EXPECT().FindByName(ctx, "nobody").Return(nil, errorvalues.ErrUserNotFound)
		_, err := ps.Pair(ctx, leader, "nobody")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("disciple can't pair", func(t *testing.T) {
		_, err := ps.Pair(ctx, disciple, "maria")
		assert.ErrorIs(t, err, errorvalues.ErrForbiddenRole)
	})
}

func TestDiscipleCheckins(t *testing.T) {
	ctrl := gomock.NewController(t)
	pairings := mocks.NewMockPairingsRepositoryI(ctrl)
	checkins := mocks.NewMockCheckinsRepositoryI(ctrl)
	ps := service.NewPairingsService(mocks.NewMockUsersRepositoryI(ctrl), pairings, checkins)
	ctx := context.Background()
	page := service.PaginationOpts{Limit: 10}

	t.Run("paired", func(t *testing.T) {
		history := []*entity.CheckIn{{ID: uuid.New(), UserID: discipleID}}
		pairings.EXPECT().Exists(ctx, leaderID, discipleID).Return(true, nil)
		checkins.EXPECT().ListByUser(ctx, discipleID, 10, 0).Return(history, nil)
		res, err := ps.DiscipleCheckins(ctx, leader, discipleID, page)
		assert.NoError(t, err)
		assert.Equal(t, history, res)
	})
	t.Run("someone else's disciple", func(t *testing.T) {
		pairings.EXPECT().Exists(ctx, leaderID, discipleID).Return(false, nil)
		_, err := ps.DiscipleCheckins(ctx, leader, discipleID, page)
		assert.ErrorIs(t, err, errorvalues.ErrNotPaired)
	})
	t.Run("db error", func(t *testing.T) {
		pairings.EXPECT().Exists(ctx, leaderID, discipleID).Return(false, errors.New("db error"))
		_, err := ps.DiscipleCheckins(ctx, leader, discipleID, page)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrNotPaired)
	})
}

func TestCreateCheckin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckinsRepositoryI(ctrl)
	cs := service.NewCheckinsService(repo)
	ctx := context.Background()

	t.Run("crisis struggle", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *entity.CheckIn) error {
			assert.Equal(t, entity.RiskHigh, c.Risk)
			assert.Equal(t, []string{"autolesion"}, c.Struggles)
			return nil
		})
		res, err := cs.Create(ctx, discipleID, checkin.Input{
			Struggles: []string{" autolesion ", "autolesion"},
			Intensity: 2,
			Emotions:  []string{"triste", "agradecido", "confundido"},
		})
		require.NoError(t, err)
		assert.Equal(t, checkin.RouteCrisis, res.Next)
		assert.Equal(t, []string{"triste"}, res.Emotions.Negative)
		assert.Equal(t, []string{"agradecido"}, res.Emotions.Positive)
		assert.Equal(t, []string{"confundido"}, res.Emotions.Other)
	})
	t.Run("low risk goes to questionnaire", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		res, err := cs.Create(ctx, discipleID, checkin.Input{Struggles: []string{"ansiedad"}, Intensity: 3})
		require.NoError(t, err)
		assert.Equal(t, entity.RiskLow, res.Risk)
		assert.Equal(t, checkin.RouteQuestionnaire, res.Next)
		assert.NotNil(t, res.CheckIn.Emotions)
	})
	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		_, err := cs.Create(ctx, discipleID, checkin.Input{Intensity: 11})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("db error", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))
		_, err := cs.Create(ctx, discipleID, checkin.Input{Struggles: []string{"ansiedad"}, Intensity: 3})
		assert.Error(t, err)
	})
}

func TestCheckinStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCheckinsRepositoryI(ctrl)
	cs := service.NewCheckinsService(repo)
	ctx := context.Background()
	stats := &entity.CheckInStats{Total: 4, AverageIntensity: 5.5}
	repo.EXPECT().Stats(ctx, discipleID, gomock.Any()).Return(stats, nil)
	res, err := cs.Stats(ctx, discipleID)
	assert.NoError(t, err)
	assert.Equal(t, stats, res)
}

func TestCreateAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyses := mocks.NewMockAnalysesRepositoryI(ctrl)
	checkins := mocks.NewMockCheckinsRepositoryI(ctrl)
	as := service.NewAnalysesService(analyses, checkins, nil)
	ctx := context.Background()
	checkinID := uuid.New()
	own := &entity.CheckIn{ID: checkinID, UserID: discipleID}

	t.Run("success", func(t *testing.T) {
		checkins.EXPECT().GetByID(ctx, checkinID).Return(own, nil)
		analyses.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *entity.RootAnalysis) error {
			assert.Equal(t, []string{"papa-ausente", "falta-intimidad-dios", "algo-nuevo"}, a.IdentifiedRoots)
			a.ID = uuid.New()
			return nil
		})
		res, err := as.Create(ctx, discipleID, &service.CreateAnalysisRequest{
			CheckInID:       checkinID,
			IdentifiedRoots: []string{"papa-ausente", "falta-intimidad-dios", "algo-nuevo", "papa-ausente"},
		})
		require.NoError(t, err)
		assert.Equal(t, []content.Category{content.CategoryFamily, content.CategorySpiritual}, res.Categories)
		assert.Equal(t, []string{"algo-nuevo"}, res.UnknownRoots)
		assert.Equal(t, "Papá ausente", res.Labels["papa-ausente"])
		assert.Equal(t, "algo-nuevo", res.Labels["algo-nuevo"])
		assert.NotEmpty(t, res.Plan.Scriptures)
	})
	t.Run("someone else's check-in", func(t *testing.T) {
		checkins.EXPECT().GetByID(ctx, checkinID).Return(&entity.CheckIn{ID: checkinID, UserID: uuid.New()}, nil)
		_, err := as.Create(ctx, discipleID, &service.CreateAnalysisRequest{CheckInID: checkinID, IdentifiedRoots: []string{"papa-ausente"}})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("missing check-in", func(t *testing.T) {
		checkins.EXPECT().GetByID(ctx, checkinID).Return(nil, errorvalues.ErrCheckInNotFound)
		_, err := as.Create(ctx, discipleID, &service.CreateAnalysisRequest{CheckInID: checkinID, IdentifiedRoots: []string{"papa-ausente"}})
		assert.ErrorIs(t, err, errorvalues.ErrCheckInNotFound)
	})
	t.Run("no roots", func(t *testing.T) {
		_, err := as.Create(ctx, discipleID, &service.CreateAnalysisRequest{CheckInID: checkinID})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestAnalysisPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyses := mocks.NewMockAnalysesRepositoryI(ctrl)
	as := service.NewAnalysesService(analyses, mocks.NewMockCheckinsRepositoryI(ctrl), nil)
	ctx := context.Background()
	id := uuid.New()

	t.Run("unknown roots only", func(t *testing.T) {
		analyses.EXPECT().GetByID(ctx, id).Return(&entity.RootAnalysis{ID: id, UserID: discipleID, IdentifiedRoots: []string{"retired-root"}}, nil)
		res, err := as.Plan(ctx, discipleID, id)
		require.NoError(t, err)
		assert.Empty(t, res.Categories)
		assert.Empty(t, res.Plan.Scriptures)
		assert.Empty(t, res.Plan.Actions)
	})
	t.Run("wrong owner", func(t *testing.T) {
		analyses.EXPECT().GetByID(ctx, id).Return(&entity.RootAnalysis{ID: id, UserID: uuid.New()}, nil)
		_, err := as.Plan(ctx, discipleID, id)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPreferencesRepositoryI(ctrl)
	ps := service.NewPreferencesService(repo)
	ctx := context.Background()

	t.Run("defaults when never saved", func(t *testing.T) {
		repo.EXPECT().Get(ctx, discipleID).Return(nil, errorvalues.ErrPreferencesNotFound)
		p, err := ps.Get(ctx, discipleID)
		require.NoError(t, err)
		assert.Equal(t, service.DefaultPreferences(discipleID), p)
		assert.NotNil(t, p.DashboardLayout)
	})
	t.Run("save keeps empty layout non-nil", func(t *testing.T) {
		repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *entity.Preferences) error {
			assert.NotNil(t, p.DashboardLayout)
			return nil
		})
		p, err := ps.Save(ctx, discipleID, &service.PreferencesRequest{Theme: entity.ThemeDark, OnboardingSeen: true})
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeDark, p.Theme)
		assert.True(t, p.OnboardingSeen)
	})
	t.Run("unknown theme", func(t *testing.T) {
		_, err := ps.Save(ctx, discipleID, &service.PreferencesRequest{Theme: "neon"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
