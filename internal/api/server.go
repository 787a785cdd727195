package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/JuliPapp/Redimfinal-sub000/internal/service"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	pairingsService    service.PairingsServiceI
	checkinsService    service.CheckinsServiceI
	analysesService    service.AnalysesServiceI
	schedulingService  service.SchedulingServiceI
	preferencesService service.PreferencesServiceI
	jwtService         JWTServiceI
	corsOrigin         string
}

type ServicesList struct {
	UserService        service.UserServiceI
	PairingsService    service.PairingsServiceI
	CheckinsService    service.CheckinsServiceI
	AnalysesService    service.AnalysesServiceI
	SchedulingService  service.SchedulingServiceI
	PreferencesService service.PreferencesServiceI
	JwtService         JWTServiceI
	// Value of Access-Control-Allow-Origin. Empty means "*"
	CORSOrigin string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		pairingsService:    servicesOptions.PairingsService,
		checkinsService:    servicesOptions.CheckinsService,
		analysesService:    servicesOptions.AnalysesService,
		schedulingService:  servicesOptions.SchedulingService,
		preferencesService: servicesOptions.PreferencesService,
		jwtService:         servicesOptions.JwtService,
		corsOrigin:         servicesOptions.CORSOrigin,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.CORSMiddleware, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, RequestLogger)

	s.mx.Get("/health", s.Health)
	s.mx.Post("/auth/register", s.Register)
	s.mx.Post("/auth/login", s.Login)

	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Delete("/account", s.DeleteAccount)
		r.Get("/preferences", s.GetPreferences)
		r.Put("/preferences", s.SavePreferences)

		r.Get("/content/roots", s.ContentRoots)
		r.Post("/content/match", s.ContentMatch)

		r.Post("/checkins", s.CreateCheckin)
		r.Get("/checkins", s.GetCheckins)
		r.Get("/checkins-stats", s.GetCheckinStats)
		r.Post("/analyses", s.CreateAnalysis)
		r.Get("/analyses", s.GetAnalyses)
		r.Get("/analyses/{id}/plan", s.GetAnalysisPlan)

		r.Get("/meetings", s.GetMeetings)
		for _, action := range scheduling.Actions {
			r.Post("/meetings/{id}/"+string(action), s.ActOnMeeting(action))
		}

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(entity.RoleLeader))
			r.Post("/pairings", s.Pair)
			r.Get("/disciples", s.GetDisciples)
			r.Get("/disciples/{id}/checkins", s.GetDiscipleCheckins)
			r.Get("/time-slots", s.GetOwnSlots)
			r.Post("/time-slots", s.CreateSlot)
			r.Post("/time-slots/bulk", s.BulkCreateSlots)
			r.Delete("/time-slots/{id}", s.DeleteSlot)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(entity.RoleDisciple))
			r.Get("/my-leader", s.GetMyLeader)
			r.Get("/leader-time-slots/{leaderId}", s.GetLeaderSlots)
			r.Post("/request-meeting", s.RequestMeeting)
		})
	})
}

// Handler is the full router wrapped for tracing.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.mx, "discipleship-api")
}

// Run serves on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
