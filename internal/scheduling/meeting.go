package scheduling

import (
	"strings"
	"time"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	"github.com/google/uuid"
)

type Action string

const (
	ActionConfirm           Action = "confirm"
	ActionCancel            Action = "cancel"
	ActionCancelConfirmed   Action = "cancel-confirmed"
	ActionRequestReschedule Action = "request-reschedule"
	ActionApproveReschedule Action = "approve-reschedule"
	ActionRejectReschedule  Action = "reject-reschedule"
)

// Actions lists every meeting action.
var Actions = []Action{
	ActionConfirm,
	ActionCancel,
	ActionCancelConfirmed,
	ActionRequestReschedule,
	ActionApproveReschedule,
	ActionRejectReschedule,
}

// SlotEffect is what a transition does to the meeting's time slot.
type SlotEffect int

const (
	SlotUnchanged SlotEffect = iota
	SlotRelease
)

// Reserve books an available slot for a disciple: the slot becomes
// unavailable and a pending meeting is returned.
func Reserve(slot entity.TimeSlot, discipleID uuid.UUID, notes string, now time.Time) (entity.TimeSlot, entity.Meeting, error) {
	if !slot.IsAvailable {
		return slot, entity.Meeting{}, errorvalues.ErrSlotUnavailable
	}
	var date time.Time
	switch {
	case slot.Date != nil:
		date = Day(*slot.Date)
	case slot.Day != nil:
		date = NextWeekday(now, time.Weekday(*slot.Day))
	default:
		return slot, entity.Meeting{}, errorvalues.ErrInvalidRange
	}
	slot.IsAvailable = false
	m := entity.Meeting{
		SlotID:     slot.ID,
		LeaderID:   slot.LeaderID,
		DiscipleID: discipleID,
		Date:       date,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Status:     entity.MeetingPending,
		Notes:      strings.TrimSpace(notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return slot, m, nil
}

// Apply runs action against m. reason is only read by ActionRequestReschedule.
// The returned meeting is a copy; m is left untouched.
func Apply(m entity.Meeting, action Action, reason string) (entity.Meeting, SlotEffect, error) {
	switch action {
	case ActionConfirm:
		if m.Status != entity.MeetingPending {
			return m, SlotUnchanged, errorvalues.ErrInvalidTransition
		}
		m.Status = entity.MeetingConfirmed
		return m, SlotUnchanged, nil

	case ActionCancel:
		if m.Status != entity.MeetingPending && m.Status != entity.MeetingConfirmed {
			return m, SlotUnchanged, errorvalues.ErrInvalidTransition
		}
		return cancel(m), releaseOf(m), nil

	case ActionCancelConfirmed:
		if m.Status != entity.MeetingConfirmed {
			return m, SlotUnchanged, errorvalues.ErrInvalidTransition
		}
		return cancel(m), releaseOf(m), nil

	case ActionRequestReschedule:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return m, SlotUnchanged, errorvalues.ErrRescheduleReason
		}
		if m.Status != entity.MeetingConfirmed || m.RescheduleRequested || m.SlotReleased {
			return m, SlotUnchanged, errorvalues.ErrInvalidTransition
		}
		m.RescheduleRequested = true
		m.RescheduleReason = reason
		return m, SlotUnchanged, nil

	case ActionApproveReschedule, ActionRejectReschedule:
		if m.Status != entity.MeetingConfirmed || !m.RescheduleRequested {
			return m, SlotUnchanged, errorvalues.ErrInvalidTransition
		}
		m.RescheduleRequested = false
		m.RescheduleReason = ""
		if action == ActionApproveReschedule {
			effect := releaseOf(m)
			m.SlotReleased = true
			return m, effect, nil
		}
		return m, SlotUnchanged, nil
	}
	return m, SlotUnchanged, errorvalues.ErrInvalidTransition
}

func cancel(m entity.Meeting) entity.Meeting {
	m.Status = entity.MeetingCancelled
	m.RescheduleRequested = false
	m.RescheduleReason = ""
	return m
}

// releaseOf is the effect of m giving up its slot. A meeting whose slot went
// back after an approved reschedule no longer holds it.
func releaseOf(m entity.Meeting) SlotEffect {
	if m.SlotReleased {
		return SlotUnchanged
	}
	return SlotRelease
}

// Permitted reports whether role may perform action at all. Only leaders ask
// for a reschedule, only disciples answer one.
func Permitted(action Action, role entity.Role) bool {
	switch action {
	case ActionConfirm, ActionRequestReschedule:
		return role == entity.RoleLeader
	case ActionApproveReschedule, ActionRejectReschedule:
		return role == entity.RoleDisciple
	case ActionCancel, ActionCancelConfirmed:
		return role == entity.RoleLeader || role == entity.RoleDisciple
	}
	return false
}

// AllowedActions lists the controls to offer role for m, in display order.
// Confirmed meetings are cancelled through the guarded cancel-confirmed action.
func AllowedActions(m entity.Meeting, role entity.Role) []Action {
	var candidates []Action
	switch {
	case m.Status == entity.MeetingPending:
		candidates = []Action{ActionConfirm, ActionCancel}
	case m.Status == entity.MeetingConfirmed && m.SlotReleased:
		candidates = []Action{ActionCancelConfirmed}
	case m.Status == entity.MeetingConfirmed && m.RescheduleRequested:
		candidates = []Action{ActionApproveReschedule, ActionRejectReschedule, ActionCancelConfirmed}
	case m.Status == entity.MeetingConfirmed:
		candidates = []Action{ActionRequestReschedule, ActionCancelConfirmed}
	}
	actions := make([]Action, 0, len(candidates))
	for _, a := range candidates {
		if Permitted(a, role) {
			actions = append(actions, a)
		}
	}
	return actions
}
