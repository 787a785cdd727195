package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JuliPapp/Redimfinal-sub000/internal/api"
	"github.com/JuliPapp/Redimfinal-sub000/internal/checkin"
	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/JuliPapp/Redimfinal-sub000/internal/service"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckinsHandlers(t *testing.T) {
	f := newFixture(t)
	t.Run("create", func(t *testing.T) {
		in := checkin.Input{Struggles: []string{"lust"}, Intensity: 4, Emotions: []string{"shame"}}
		f.checkins.EXPECT().Create(gomock.Any(), discipleUser.ID, in).Return(&service.CheckinResult{
			CheckIn: &entity.CheckIn{ID: uuid.New(), UserID: discipleUser.ID, Intensity: 4, Risk: entity.RiskHigh},
			Risk:    entity.RiskHigh,
			Next:    checkin.RouteQuestionnaire,
		}, nil)
		rr := f.do(t, http.MethodPost, "/checkins", in, discipleUser)
		require.Equal(t, http.StatusCreated, rr.Code)
		body := decode[map[string]any](t, rr)
		assert.Equal(t, "high", body["risk"])
	})
	t.Run("validation", func(t *testing.T) {
		f.checkins.EXPECT().Create(gomock.Any(), discipleUser.ID, gomock.Any()).Return(nil, errorvalues.ErrValidation)
		rr := f.do(t, http.MethodPost, "/checkins", checkin.Input{}, discipleUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("list pagination", func(t *testing.T) {
		f.checkins.EXPECT().List(gomock.Any(), discipleUser.ID, service.PaginationOpts{Limit: 5, Offset: 10}).Return(nil, nil)
		rr := f.do(t, http.MethodGet, "/checkins?page=3&limit=5", nil, discipleUser)
		require.Equal(t, http.StatusOK, rr.Code)
		body := decode[map[string]any](t, rr)
		assert.EqualValues(t, 3, body["page"])
		assert.EqualValues(t, 5, body["limit"])
		assert.Equal(t, []any{}, body["checkins"])
	})
	t.Run("list clamps bad pagination", func(t *testing.T) {
		f.checkins.EXPECT().List(gomock.Any(), discipleUser.ID, service.PaginationOpts{Limit: 10, Offset: 0}).Return(nil, nil)
		rr := f.do(t, http.MethodGet, "/checkins?page=-1&limit=500", nil, discipleUser)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("stats", func(t *testing.T) {
		f.checkins.EXPECT().Stats(gomock.Any(), discipleUser.ID).Return(&entity.CheckInStats{Total: 2, AverageIntensity: 3.5}, nil)
		rr := f.do(t, http.MethodGet, "/checkins-stats", nil, discipleUser)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.EqualValues(t, 2, decode[map[string]any](t, rr)["total"])
	})
}

func TestAnalysesHandlers(t *testing.T) {
	f := newFixture(t)
	checkinID := uuid.New()
	t.Run("create", func(t *testing.T) {
		f.analyses.EXPECT().Create(gomock.Any(), discipleUser.ID, &service.CreateAnalysisRequest{
			CheckInID:       checkinID,
			IdentifiedRoots: []string{"soledad"},
		}).Return(&service.AnalysisResult{Analysis: &entity.RootAnalysis{ID: uuid.New()}}, nil)
		rr := f.do(t, http.MethodPost, "/analyses", api.CreateAnalysisRequest{
			CheckInID:       checkinID.String(),
			IdentifiedRoots: []string{"soledad"},
		}, discipleUser)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("foreign checkin", func(t *testing.T) {
		f.analyses.EXPECT().Create(gomock.Any(), discipleUser.ID, gomock.Any()).Return(nil, errorvalues.ErrCheckInNotFound)
		rr := f.do(t, http.MethodPost, "/analyses", api.CreateAnalysisRequest{
			CheckInID:       checkinID.String(),
			IdentifiedRoots: []string{"soledad"},
		}, discipleUser)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("bad checkin id", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/analyses", api.CreateAnalysisRequest{CheckInID: "x"}, discipleUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("plan", func(t *testing.T) {
		id := uuid.New()
		f.analyses.EXPECT().Plan(gomock.Any(), discipleUser.ID, id).Return(&service.AnalysisResult{}, nil)
		rr := f.do(t, http.MethodGet, "/analyses/"+id.String()+"/plan", nil, discipleUser)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestPairingsHandlers(t *testing.T) {
	f := newFixture(t)
	t.Run("pair", func(t *testing.T) {
		f.pairings.EXPECT().Pair(gomock.Any(), actorOf(leaderUser), "maria").
			Return(&entity.UserInfo{ID: discipleUser.ID, Name: "maria", Role: entity.RoleDisciple}, nil)
		rr := f.do(t, http.MethodPost, "/pairings", api.PairRequest{DiscipleName: "maria"}, leaderUser)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("already paired", func(t *testing.T) {
		f.pairings.EXPECT().Pair(gomock.Any(), actorOf(leaderUser), "maria").Return(nil, errorvalues.ErrAlreadyPaired)
		rr := f.do(t, http.MethodPost, "/pairings", api.PairRequest{DiscipleName: "maria"}, leaderUser)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("empty name", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/pairings", api.PairRequest{}, leaderUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("unpaired disciple history", func(t *testing.T) {
		f.pairings.EXPECT().DiscipleCheckins(gomock.Any(), actorOf(leaderUser), discipleUser.ID, gomock.Any()).
			Return(nil, errorvalues.ErrNotPaired)
		rr := f.do(t, http.MethodGet, "/disciples/"+discipleUser.ID.String()+"/checkins", nil, leaderUser)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("my leader", func(t *testing.T) {
		f.pairings.EXPECT().LeaderOf(gomock.Any(), actorOf(discipleUser)).
			Return(&entity.UserInfo{ID: leaderUser.ID, Name: "pedro", Role: entity.RoleLeader}, nil)
		rr := f.do(t, http.MethodGet, "/my-leader", nil, discipleUser)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pedro", decode[map[string]any](t, rr)["name"])
	})
}

func TestSlotsHandlers(t *testing.T) {
	f := newFixture(t)
	t.Run("create", func(t *testing.T) {
		f.scheduling.EXPECT().CreateSlot(gomock.Any(), actorOf(leaderUser), &service.CreateSlotRequest{
			Date:      "2024-05-13",
			StartTime: "10:00",
			EndTime:   "11:00",
		}).Return(&entity.TimeSlot{ID: uuid.New(), StartTime: "10:00", EndTime: "11:00", IsAvailable: true}, nil)
		rr := f.do(t, http.MethodPost, "/time-slots", api.CreateSlotRequest{
			Date: "2024-05-13", StartTime: "10:00", EndTime: "11:00",
		}, leaderUser)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("inverted times", func(t *testing.T) {
		f.scheduling.EXPECT().CreateSlot(gomock.Any(), actorOf(leaderUser), gomock.Any()).Return(nil, errorvalues.ErrInvalidTime)
		rr := f.do(t, http.MethodPost, "/time-slots", api.CreateSlotRequest{
			Date: "2024-05-13", StartTime: "11:00", EndTime: "10:00",
		}, leaderUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("bulk", func(t *testing.T) {
		f.scheduling.EXPECT().BulkCreateSlots(gomock.Any(), actorOf(leaderUser), &service.BulkSlotsRequest{
			From: "2024-05-13", To: "2024-05-14", StartTime: "09:00", Count: 2,
		}).Return(&scheduling.BulkSummary{Created: 3, Skipped: 1, Errors: []string{}}, nil)
		rr := f.do(t, http.MethodPost, "/time-slots/bulk", api.BulkSlotsRequest{
			From: "2024-05-13", To: "2024-05-14", StartTime: "09:00", Count: 2,
		}, leaderUser)
		require.Equal(t, http.StatusOK, rr.Code)
		body := decode[map[string]any](t, rr)
		assert.EqualValues(t, 3, body["created"])
		assert.EqualValues(t, 1, body["skipped"])
	})
	t.Run("delete booked", func(t *testing.T) {
		id := uuid.New()
		f.scheduling.EXPECT().DeleteSlot(gomock.Any(), actorOf(leaderUser), id).Return(errorvalues.ErrSlotHasMeeting)
		rr := f.do(t, http.MethodDelete, "/time-slots/"+id.String(), nil, leaderUser)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("delete", func(t *testing.T) {
		id := uuid.New()
		f.scheduling.EXPECT().DeleteSlot(gomock.Any(), actorOf(leaderUser), id).Return(nil)
		rr := f.do(t, http.MethodDelete, "/time-slots/"+id.String(), nil, leaderUser)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
	t.Run("delete bad id", func(t *testing.T) {
		rr := f.do(t, http.MethodDelete, "/time-slots/not-a-uuid", nil, leaderUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("leader slots", func(t *testing.T) {
		f.scheduling.EXPECT().ListLeaderSlots(gomock.Any(), actorOf(discipleUser), leaderUser.ID).Return(nil, nil)
		rr := f.do(t, http.MethodGet, "/leader-time-slots/"+leaderUser.ID.String(), nil, discipleUser)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []any{}, decode[map[string]any](t, rr)["slots"])
	})
}

func TestMeetingsHandlers(t *testing.T) {
	f := newFixture(t)
	meeting := &entity.Meeting{
		ID:         uuid.New(),
		SlotID:     uuid.New(),
		LeaderID:   leaderUser.ID,
		DiscipleID: discipleUser.ID,
		Date:       time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "11:00",
		Status:     entity.MeetingPending,
	}
	t.Run("request", func(t *testing.T) {
		f.scheduling.EXPECT().RequestMeeting(gomock.Any(), actorOf(discipleUser), meeting.SlotID, "hola").
			Return(&service.MeetingView{Meeting: meeting, Actions: []scheduling.Action{scheduling.ActionCancel}}, nil)
		rr := f.do(t, http.MethodPost, "/request-meeting", api.RequestMeetingRequest{
			SlotID: meeting.SlotID.String(), Notes: "hola",
		}, discipleUser)
		require.Equal(t, http.StatusCreated, rr.Code)
		body := decode[map[string]any](t, rr)
		assert.Equal(t, meeting.ID.String(), body["id"])
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, []any{"cancel"}, body["actions"])
	})
	t.Run("slot taken", func(t *testing.T) {
		f.scheduling.EXPECT().RequestMeeting(gomock.Any(), actorOf(discipleUser), meeting.SlotID, "").
			Return(nil, errorvalues.ErrSlotUnavailable)
		rr := f.do(t, http.MethodPost, "/request-meeting", api.RequestMeetingRequest{SlotID: meeting.SlotID.String()}, discipleUser)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("list", func(t *testing.T) {
		f.scheduling.EXPECT().ListMeetings(gomock.Any(), actorOf(leaderUser)).
			Return([]service.MeetingView{{Meeting: meeting, Actions: []scheduling.Action{}}}, nil)
		rr := f.do(t, http.MethodGet, "/meetings", nil, leaderUser)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[map[string][]any](t, rr)["meetings"], 1)
	})
	t.Run("confirm without body", func(t *testing.T) {
		confirmed := *meeting
		confirmed.Status = entity.MeetingConfirmed
		f.scheduling.EXPECT().Act(gomock.Any(), actorOf(leaderUser), meeting.ID, service.ActRequest{Action: scheduling.ActionConfirm}).
			Return(&service.MeetingView{Meeting: &confirmed, Actions: []scheduling.Action{}}, nil)
		rr := f.do(t, http.MethodPost, "/meetings/"+meeting.ID.String()+"/confirm", nil, leaderUser)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "confirmed", decode[map[string]any](t, rr)["status"])
	})
	t.Run("reschedule carries reason", func(t *testing.T) {
		f.scheduling.EXPECT().Act(gomock.Any(), actorOf(discipleUser), meeting.ID, service.ActRequest{
			Action: scheduling.ActionRequestReschedule,
			Reason: "viaje",
		}).Return(&service.MeetingView{Meeting: meeting}, nil)
		rr := f.do(t, http.MethodPost, "/meetings/"+meeting.ID.String()+"/request-reschedule",
			api.MeetingActionRequest{Reason: "viaje"}, discipleUser)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("cancel confirmed needs confirmation", func(t *testing.T) {
		f.scheduling.EXPECT().Act(gomock.Any(), actorOf(leaderUser), meeting.ID, service.ActRequest{
			Action: scheduling.ActionCancelConfirmed,
		}).Return(nil, errorvalues.ErrNotConfirmed)
		rr := f.do(t, http.MethodPost, "/meetings/"+meeting.ID.String()+"/cancel-confirmed",
			api.MeetingActionRequest{}, leaderUser)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("invalid transition", func(t *testing.T) {
		f.scheduling.EXPECT().Act(gomock.Any(), actorOf(leaderUser), meeting.ID, gomock.Any()).
			Return(nil, errorvalues.ErrInvalidTransition)
		rr := f.do(t, http.MethodPost, "/meetings/"+meeting.ID.String()+"/approve-reschedule", nil, leaderUser)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("unknown action", func(t *testing.T) {
		rr := f.do(t, http.MethodPost, "/meetings/"+meeting.ID.String()+"/archive", nil, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// Handlers can also be driven directly with a chi route context.
func TestActOnMeetingDirect(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	actor := actorOf(discipleUser)
	f.scheduling.EXPECT().Act(gomock.Any(), actor, id, service.ActRequest{Action: scheduling.ActionCancel}).
		Return(nil, errorvalues.ErrMeetingNotFound)

	req := httptest.NewRequest(http.MethodPost, "/meetings/"+id.String()+"/cancel", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id.String())
	ctx := api.WithActor(req.Context(), actor)
	req = req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()
	f.serv.ActOnMeeting(scheduling.ActionCancel)(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
