package api

import (
	"context"
	"net/http"

	"github.com/JuliPapp/Redimfinal-sub000/pkg/httputil"
)

type PairRequest struct {
	DiscipleName string `json:"disciple_name"`
}

func (s *Server) Pair(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PairRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || req.DiscipleName == "" {
		logger.Error("pairing error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	disciple, err := s.pairingsService.Pair(ctx, actor, req.DiscipleName)
	if err != nil {
		writeServiceError(w, logger, "pairing", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, disciple)
	logger.Info("disciple paired")
}

func (s *Server) GetDisciples(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	disciples, err := s.pairingsService.ListDisciples(ctx, actor)
	if err != nil {
		writeServiceError(w, logger, "listing disciples", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"disciples": nonNil(disciples)})
}

func (s *Server) GetDiscipleCheckins(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	discipleID, err := pathID(r, "id")
	if err != nil {
		logger.Error("disciple checkins error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid disciple id in path value", nil)
		return
	}
	page, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	checkins, err := s.pairingsService.DiscipleCheckins(ctx, actor, discipleID, opts)
	if err != nil {
		writeServiceError(w, logger, "getting disciple checkins", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCheckinsResponse{
		UserID:   discipleID.String(),
		Page:     page,
		Checkins: nonNil(checkins),
	})
}

func (s *Server) GetMyLeader(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	leader, err := s.pairingsService.LeaderOf(ctx, actor)
	if err != nil {
		writeServiceError(w, logger, "getting leader", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, leader)
}
