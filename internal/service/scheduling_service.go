package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository"
	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

type SchedulingService struct {
	slots    repository.SlotsRepositoryI
	meetings repository.MeetingsRepositoryI
	pairings repository.PairingsRepositoryI
	now      func() time.Time
}

type SchedulingOption func(*SchedulingService)

// WithClock replaces time.Now, used to decide what "today" is.
func WithClock(now func() time.Time) SchedulingOption {
	return func(ss *SchedulingService) {
		ss.now = now
	}
}

func NewSchedulingService(slots repository.SlotsRepositoryI, meetings repository.MeetingsRepositoryI, pairings repository.PairingsRepositoryI, opts ...SchedulingOption) *SchedulingService {
	if slots == nil || meetings == nil || pairings == nil {
		log.Fatal("provided nil repository to scheduling service")
	}
	ss := &SchedulingService{
		slots:    slots,
		meetings: meetings,
		pairings: pairings,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(ss)
	}
	return ss
}

func (ss *SchedulingService) CreateSlot(ctx context.Context, leader Actor, req *CreateSlotRequest) (*entity.TimeSlot, error) {
	if leader.Role != entity.RoleLeader {
		return nil, errorvalues.ErrForbiddenRole
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	before, err := scheduling.ClockBefore(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !before {
		return nil, errorvalues.ErrInvalidTime
	}
	slot := entity.TimeSlot{
		LeaderID:    leader.ID,
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
	}
	if req.Date != "" {
		date, err := scheduling.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		slot.Date = &date
		slot.Day = nil
	}
	if err := ss.slots.Create(ctx, &slot); err != nil {
		if errors.Is(err, errorvalues.ErrSlotExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("slots repository error: " + err.Error())
	}
	return &slot, nil
}

func (ss *SchedulingService) BulkCreateSlots(ctx context.Context, leader Actor, req *BulkSlotsRequest) (*scheduling.BulkSummary, error) {
	if leader.Role != entity.RoleLeader {
		return nil, errorvalues.ErrForbiddenRole
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	dates, err := bulkDates(req)
	if err != nil {
		return nil, err
	}
	plan, err := scheduling.PlanBulk(dates, req.StartTime, req.Count)
	if err != nil {
		return nil, err
	}
	var result scheduling.BulkResult
	for i, p := range plan {
		// slots left unsubmitted when the request ends are reported as failures
		if err := ctx.Err(); err != nil {
			for _, rest := range plan[i:] {
				result.Add(rest, err)
			}
			break
		}
		date := p.Date
		slot := entity.TimeSlot{
			LeaderID:    leader.ID,
			Date:        &date,
			StartTime:   p.Start,
			EndTime:     p.End,
			IsAvailable: true,
		}
		result.Add(p, ss.slots.Create(ctx, &slot))
	}
	summary := result.Summary()
	return &summary, nil
}

func bulkDates(req *BulkSlotsRequest) ([]time.Time, error) {
	if len(req.Dates) > 0 {
		dates := make([]time.Time, 0, len(req.Dates))
		for _, d := range req.Dates {
			date, err := scheduling.ParseDate(d)
			if err != nil {
				return nil, err
			}
			dates = append(dates, date)
		}
		return dates, nil
	}
	if req.From == "" {
		return nil, errorvalues.ErrNoDates
	}
	from, err := scheduling.ParseDate(req.From)
	if err != nil {
		return nil, err
	}
	to, err := scheduling.ParseDate(req.To)
	if err != nil {
		return nil, err
	}
	return scheduling.DatesInRange(from, to)
}

func (ss *SchedulingService) ListOwnSlots(ctx context.Context, leader Actor) ([]*entity.TimeSlot, error) {
	if leader.Role != entity.RoleLeader {
		return nil, errorvalues.ErrForbiddenRole
	}
	slots, err := ss.slots.ListByLeader(ctx, leader.ID)
	if err != nil {
		return nil, errors.New("slots repository error: " + err.Error())
	}
	return slots, nil
}

func (ss *SchedulingService) ListLeaderSlots(ctx context.Context, disciple Actor, leaderID uuid.UUID) ([]*entity.TimeSlot, error) {
	if disciple.Role != entity.RoleDisciple {
		return nil, errorvalues.ErrForbiddenRole
	}
	if err := ensurePaired(ctx, ss.pairings, leaderID, disciple.ID); err != nil {
		return nil, err
	}
	slots, err := ss.slots.ListAvailable(ctx, leaderID, scheduling.Day(ss.now()))
	if err != nil {
		return nil, errors.New("slots repository error: " + err.Error())
	}
	return slots, nil
}

func (ss *SchedulingService) DeleteSlot(ctx context.Context, leader Actor, slotID uuid.UUID) error {
	if leader.Role != entity.RoleLeader {
		return errorvalues.ErrForbiddenRole
	}
	slot, err := ss.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSlotNotFound) {
			return err
		}
		return errors.New("slots repository error: " + err.Error())
	}
	if slot.LeaderID != leader.ID {
		return errorvalues.ErrWrongOwner
	}
	err = ss.slots.Delete(ctx, slotID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSlotNotFound) || errors.Is(err, errorvalues.ErrSlotHasMeeting) {
			return err
		}
		return errors.New("slots repository error: " + err.Error())
	}
	return nil
}

func (ss *SchedulingService) RequestMeeting(ctx context.Context, disciple Actor, slotID uuid.UUID, notes string) (*MeetingView, error) {
	if disciple.Role != entity.RoleDisciple {
		return nil, errorvalues.ErrForbiddenRole
	}
	slot, err := ss.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSlotNotFound) {
			return nil, err
		}
		return nil, errors.New("slots repository error: " + err.Error())
	}
	if err := ensurePaired(ctx, ss.pairings, slot.LeaderID, disciple.ID); err != nil {
		return nil, err
	}
	_, m, err := scheduling.Reserve(*slot, disciple.ID, notes, ss.now())
	if err != nil {
		return nil, err
	}
	if m.Date.Before(scheduling.Day(ss.now())) {
		return nil, errorvalues.ErrSlotUnavailable
	}
	// the stored flag is authoritative; Reserve only checked our copy
	if err := ss.meetings.Reserve(ctx, &m); err != nil {
		if errors.Is(err, errorvalues.ErrSlotUnavailable) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("meetings repository error: " + err.Error())
	}
	return viewFor(&m, disciple.Role), nil
}

func (ss *SchedulingService) ListMeetings(ctx context.Context, actor Actor) ([]MeetingView, error) {
	meetings, err := ss.meetings.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, errors.New("meetings repository error: " + err.Error())
	}
	views := make([]MeetingView, 0, len(meetings))
	for _, m := range meetings {
		views = append(views, *viewFor(m, actor.Role))
	}
	return views, nil
}

func (ss *SchedulingService) Act(ctx context.Context, actor Actor, meetingID uuid.UUID, req ActRequest) (*MeetingView, error) {
	if !scheduling.Permitted(req.Action, actor.Role) {
		return nil, errorvalues.ErrForbiddenRole
	}
	if req.Action == scheduling.ActionCancelConfirmed && !req.Confirm {
		return nil, errorvalues.ErrNotConfirmed
	}
	if req.Action == scheduling.ActionRequestReschedule && strings.TrimSpace(req.Reason) == "" {
		return nil, errorvalues.ErrRescheduleReason
	}
	prev, err := ss.meetings.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMeetingNotFound) {
			return nil, err
		}
		return nil, errors.New("meetings repository error: " + err.Error())
	}
	// meetings of other pairs are reported as missing
	if (actor.Role == entity.RoleLeader && prev.LeaderID != actor.ID) ||
		(actor.Role == entity.RoleDisciple && prev.DiscipleID != actor.ID) {
		return nil, errorvalues.ErrMeetingNotFound
	}
	next, effect, err := scheduling.Apply(*prev, req.Action, req.Reason)
	if err != nil {
		return nil, err
	}
	err = ss.meetings.Transition(ctx, prev, &next, effect == scheduling.SlotRelease)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidTransition) {
			return nil, err
		}
		return nil, errors.New("meetings repository error: " + err.Error())
	}
	return viewFor(&next, actor.Role), nil
}

func viewFor(m *entity.Meeting, role entity.Role) *MeetingView {
	return &MeetingView{
		Meeting: m,
		Actions: scheduling.AllowedActions(*m, role),
	}
}
