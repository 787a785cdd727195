package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/httputil"
)

var statusOf = []struct {
	err    error
	status int
}{
	{errorvalues.ErrValidation, http.StatusBadRequest},
	{errorvalues.ErrInvalidTime, http.StatusBadRequest},
	{errorvalues.ErrInvalidCount, http.StatusBadRequest},
	{errorvalues.ErrNoDates, http.StatusBadRequest},
	{errorvalues.ErrInvalidRange, http.StatusBadRequest},
	{errorvalues.ErrRescheduleReason, http.StatusBadRequest},
	{errorvalues.ErrNotConfirmed, http.StatusBadRequest},

	{errorvalues.ErrWrongCredentials, http.StatusUnauthorized},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized},

	{errorvalues.ErrForbiddenRole, http.StatusForbidden},
	{errorvalues.ErrNotPaired, http.StatusForbidden},

	// resources of other users are reported as missing
	{errorvalues.ErrWrongOwner, http.StatusNotFound},
	{errorvalues.ErrUserNotFound, http.StatusNotFound},
	{errorvalues.ErrCheckInNotFound, http.StatusNotFound},
	{errorvalues.ErrAnalysisNotFound, http.StatusNotFound},
	{errorvalues.ErrSlotNotFound, http.StatusNotFound},
	{errorvalues.ErrMeetingNotFound, http.StatusNotFound},

	{errorvalues.ErrUserExists, http.StatusConflict},
	{errorvalues.ErrAlreadyPaired, http.StatusConflict},
	{errorvalues.ErrSlotExists, http.StatusConflict},
	{errorvalues.ErrSlotUnavailable, http.StatusConflict},
	{errorvalues.ErrSlotHasMeeting, http.StatusConflict},
	{errorvalues.ErrInvalidTransition, http.StatusConflict},
}

// StatusFor maps a service error onto its HTTP status; unknown errors are 500.
func StatusFor(err error) int {
	for _, s := range statusOf {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err under op and answers with its mapped status.
// Messages of known errors are returned to the client, internal ones are not.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "internal error during "+op, nil)
		return
	}
	logger.Warn(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, err.Error(), nil)
}
