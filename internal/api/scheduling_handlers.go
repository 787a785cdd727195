package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/JuliPapp/Redimfinal-sub000/internal/service"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/httputil"
)

type CreateSlotRequest struct {
	Date      string `json:"date,omitempty"`
	Day       *int   `json:"day,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BulkSlotsRequest struct {
	Dates     []string `json:"dates,omitempty"`
	From      string   `json:"from,omitempty"`
	To        string   `json:"to,omitempty"`
	StartTime string   `json:"start_time"`
	Count     int      `json:"count"`
}

type RequestMeetingRequest struct {
	SlotID string `json:"slot_id"`
	Notes  string `json:"notes"`
}

type MeetingActionRequest struct {
	Reason  string `json:"reason"`
	Confirm bool   `json:"confirm"`
}

func (s *Server) CreateSlot(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateSlotRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create slot error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	slot, err := s.schedulingService.CreateSlot(ctx, actor, &service.CreateSlotRequest{
		Date:      req.Date,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeServiceError(w, logger, "creating slot", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, slot)
	logger.Info("slot created", slog.String("slot_id", slot.ID.String()))
}

func (s *Server) BulkCreateSlots(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req BulkSlotsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("bulk slots error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	summary, err := s.schedulingService.BulkCreateSlots(ctx, actor, &service.BulkSlotsRequest{
		Dates:     req.Dates,
		From:      req.From,
		To:        req.To,
		StartTime: req.StartTime,
		Count:     req.Count,
	})
	if err != nil {
		writeServiceError(w, logger, "bulk slot creation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("bulk slots processed",
		slog.Int("created", summary.Created),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", len(summary.Errors)+summary.MoreErrors),
	)
}

func (s *Server) GetOwnSlots(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	slots, err := s.schedulingService.ListOwnSlots(ctx, actor)
	if err != nil {
		writeServiceError(w, logger, "listing slots", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"slots": nonNil(slots)})
}

func (s *Server) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("slot deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid slot id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.schedulingService.DeleteSlot(ctx, actor, id); err != nil {
		writeServiceError(w, logger, "slot deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("slot deleted")
}

func (s *Server) GetLeaderSlots(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	leaderID, err := pathID(r, "leaderId")
	if err != nil {
		logger.Error("leader slots error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid leader id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	slots, err := s.schedulingService.ListLeaderSlots(ctx, actor, leaderID)
	if err != nil {
		writeServiceError(w, logger, "listing leader slots", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"slots": nonNil(slots)})
}

func (s *Server) RequestMeeting(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req RequestMeetingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("meeting request error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		logger.Error("meeting request error: invalid slot id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid slot id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.schedulingService.RequestMeeting(ctx, actor, slotID, req.Notes)
	if err != nil {
		writeServiceError(w, logger, "requesting meeting", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, view)
	logger.Info("meeting requested", slog.String("meeting_id", view.ID.String()))
}

func (s *Server) GetMeetings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	meetings, err := s.schedulingService.ListMeetings(ctx, actor)
	if err != nil {
		writeServiceError(w, logger, "listing meetings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"meetings": nonNil(meetings)})
}

// ActOnMeeting returns the handler of POST /meetings/{id}/<action>. The body
// is optional; only request-reschedule and cancel-confirmed read it.
func (s *Server) ActOnMeeting(action scheduling.Action) http.HandlerFunc {
	op := "meeting " + string(action)
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context()).With(slog.String("action", string(action)))
		actor, err := GetActorFromContext(r)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			logger.Error(op + " error: invalid id in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meeting id in path value", nil)
			return
		}
		var req MeetingActionRequest
		if r.ContentLength != 0 {
			if err := httputil.DecodeJSON(r, &req); err != nil {
				logger.Error(op + " error: invalid request body")
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
				return
			}
		}
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		view, err := s.schedulingService.Act(ctx, actor, id, service.ActRequest{
			Action:  action,
			Reason:  req.Reason,
			Confirm: req.Confirm,
		})
		if err != nil {
			writeServiceError(w, logger, op, err)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, view)
		logger.Info("meeting updated", slog.String("status", string(view.Status)))
	}
}
