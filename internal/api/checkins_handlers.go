package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JuliPapp/Redimfinal-sub000/internal/checkin"
	"github.com/JuliPapp/Redimfinal-sub000/internal/service"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/httputil"
)

type CreateAnalysisRequest struct {
	CheckInID       string   `json:"checkin_id"`
	IdentifiedRoots []string `json:"identified_roots"`
}

type GetCheckinsResponse struct {
	UserID string `json:"uid"`
	Page
	Checkins []*entity.CheckIn `json:"checkins"`
}

type GetAnalysesResponse struct {
	UserID string `json:"uid"`
	Page
	Analyses []*entity.RootAnalysis `json:"analyses"`
}

func (s *Server) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("create checkin error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var in checkin.Input
	if err := httputil.DecodeJSON(r, &in); err != nil {
		logger.Error("create checkin error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.checkinsService.Create(ctx, actor.ID, in)
	if err != nil {
		writeServiceError(w, logger, "creating checkin", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("checkin created", slog.String("risk", string(res.Risk)))
}

func (s *Server) GetCheckins(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("get checkins error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	checkins, err := s.checkinsService.List(ctx, actor.ID, opts)
	if err != nil {
		writeServiceError(w, logger, "getting checkins list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCheckinsResponse{
		UserID:   actor.ID.String(),
		Page:     page,
		Checkins: nonNil(checkins),
	})
	logger.Info("checkins provided")
}

func (s *Server) GetCheckinStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	stats, err := s.checkinsService.Stats(ctx, actor.ID)
	if err != nil {
		writeServiceError(w, logger, "getting checkin stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("create analysis error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateAnalysisRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create analysis error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	checkinID, err := uuid.Parse(req.CheckInID)
	if err != nil {
		logger.Error("create analysis error: invalid checkin id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid checkin id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.analysesService.Create(ctx, actor.ID, &service.CreateAnalysisRequest{
		CheckInID:       checkinID,
		IdentifiedRoots: req.IdentifiedRoots,
	})
	if err != nil {
		writeServiceError(w, logger, "creating analysis", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("analysis created")
}

func (s *Server) GetAnalyses(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	analyses, err := s.analysesService.List(ctx, actor.ID, opts)
	if err != nil {
		writeServiceError(w, logger, "getting analyses list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetAnalysesResponse{
		UserID:   actor.ID.String(),
		Page:     page,
		Analyses: nonNil(analyses),
	})
}

func (s *Server) GetAnalysisPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		logger.Error("analysis plan error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid analysis id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.analysesService.Plan(ctx, actor.ID, id)
	if err != nil {
		writeServiceError(w, logger, "rendering analysis plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
