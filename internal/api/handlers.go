package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/JuliPapp/Redimfinal-sub000/internal/content"
	"github.com/JuliPapp/Redimfinal-sub000/internal/service"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/httputil"
)

const (
	requestTimeout = 10 * time.Second
	listTimeout    = 15 * time.Second

	defaultLimit = 10
	maxLimit     = 50
)

type RegisterRequest struct {
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role,omitempty"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type PreferencesRequest struct {
	Theme           entity.Theme `json:"theme"`
	OnboardingSeen  bool         `json:"onboarding_seen"`
	DashboardLayout []string     `json:"dashboard_layout"`
}

type MatchRequest struct {
	Roots      []string `json:"roots"`
	Categories []string `json:"categories"`
}

type MatchResponse struct {
	content.Plan
	UnknownRoots      []string `json:"unknown_roots"`
	UnknownCategories []string `json:"unknown_categories"`
}

type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// pagination reads limit (1..50, default 10) and page (from 1).
func pagination(r *http.Request) (Page, service.PaginationOpts) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return Page{Page: page, Limit: limit}, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// pathID parses a uuid path parameter.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, logger, "registration", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid":  user.ID.String(),
		"role": user.Role,
	})
	logger.Info("successful registration", slog.String("role", string(user.Role)))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"role":  user.Role,
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, actor.ID, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	prefs, err := s.preferencesService.Get(ctx, actor.ID)
	if err != nil {
		writeServiceError(w, logger, "getting preferences", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, prefs)
}

func (s *Server) SavePreferences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PreferencesRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("saving preferences error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	prefs, err := s.preferencesService.Save(ctx, actor.ID, &service.PreferencesRequest{
		Theme:           req.Theme,
		OnboardingSeen:  req.OnboardingSeen,
		DashboardLayout: req.DashboardLayout,
	})
	if err != nil {
		writeServiceError(w, logger, "saving preferences", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, prefs)
	logger.Info("preferences saved")
}

func (s *Server) ContentRoots(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"roots":      content.Taxonomy,
		"categories": content.Categories,
	})
}

// ContentMatch runs the matcher without storing anything. Unknown ids are
// echoed back and ignored.
func (s *Server) ContentMatch(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req MatchRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("content match error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	roots, unknownRoots := content.ParseRoots(req.Roots)
	categories, unknownCategories := content.ParseCategories(req.Categories)
	httputil.WriteJSONResponse(w, http.StatusOK, MatchResponse{
		Plan:              content.Match(roots, categories),
		UnknownRoots:      unknownRoots,
		UnknownCategories: unknownCategories,
	})
}
