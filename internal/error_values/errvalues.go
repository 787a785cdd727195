package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrForbiddenRole    = errors.New("action not allowed for this role")
	ErrValidation       = errors.New("validation error")

	ErrAlreadyPaired = errors.New("disciple already has a leader")
	ErrNotPaired     = errors.New("users are not paired")

	ErrCheckInNotFound  = errors.New("check-in doesn't exist")
	ErrAnalysisNotFound = errors.New("analysis doesn't exist")
	ErrWrongOwner       = errors.New("resource has different owner")

	ErrSlotNotFound      = errors.New("time slot doesn't exist")
	ErrSlotExists        = errors.New("time slot already exists")
	ErrSlotUnavailable   = errors.New("time slot is not available")
	ErrSlotHasMeeting    = errors.New("time slot has an active meeting")
	ErrMeetingNotFound   = errors.New("meeting doesn't exist")
	ErrNotConfirmed      = errors.New("destructive action requires confirmation")
	ErrInvalidTransition = errors.New("meeting status doesn't allow this action")

	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrInvalidCount     = errors.New("slot count must be positive")
	ErrNoDates          = errors.New("at least one date is required")
	ErrInvalidRange     = errors.New("invalid date range")
	ErrRescheduleReason = errors.New("reschedule reason is required")

	ErrPreferencesNotFound = errors.New("preferences were never saved")
)
