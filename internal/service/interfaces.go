package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/JuliPapp/Redimfinal-sub000/internal/checkin"
	"github.com/JuliPapp/Redimfinal-sub000/internal/content"
	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Name     string      `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string      `validate:"required,min=8,max=72"`
	Role     entity.Role `validate:"required,role"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// Actor is the authenticated caller as described by its token.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

type CheckinResult struct {
	CheckIn  *entity.CheckIn       `json:"checkin"`
	Risk     entity.Risk           `json:"risk"`
	Next     checkin.Route         `json:"next"`
	Emotions checkin.EmotionGroups `json:"emotions"`
}

type CreateAnalysisRequest struct {
	CheckInID       uuid.UUID `validate:"required"`
	IdentifiedRoots []string  `validate:"required,min=1,max=29,dive,required,max=64"`
}

type AnalysisResult struct {
	Analysis     *entity.RootAnalysis `json:"analysis"`
	Categories   []content.Category   `json:"categories"`
	UnknownRoots []string             `json:"unknown_roots"`
	Labels       map[string]string    `json:"labels"`
	Plan         content.Plan         `json:"plan"`
}

type CreateSlotRequest struct {
	Date      string `validate:"required_without=Day,omitempty,datetime=2006-01-02"`
	Day       *int   `validate:"required_without=Date,omitempty,min=0,max=6"`
	StartTime string `validate:"required,hhmm"`
	EndTime   string `validate:"required,hhmm"`
}

// BulkSlotsRequest takes either explicit Dates or an inclusive From..To range.
type BulkSlotsRequest struct {
	Dates     []string `validate:"omitempty,max=92,dive,datetime=2006-01-02"`
	From      string   `validate:"required_with=To,omitempty,datetime=2006-01-02"`
	To        string   `validate:"required_with=From,omitempty,datetime=2006-01-02"`
	StartTime string
	Count     int
}

type ActRequest struct {
	Action  scheduling.Action
	Reason  string
	Confirm bool
}

// MeetingView is a meeting plus the actions its viewer may take on it.
type MeetingView struct {
	*entity.Meeting
	Actions []scheduling.Action `json:"actions"`
}

type PreferencesRequest struct {
	Theme           entity.Theme `validate:"required,theme"`
	OnboardingSeen  bool
	DashboardLayout []string `validate:"max=20,dive,required,max=64"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID.
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type PairingsServiceI interface {
	// Leader takes the disciple with given name under accompaniment
	Pair(ctx context.Context, leader Actor, discipleName string) (*entity.UserInfo, error)
	ListDisciples(ctx context.Context, leader Actor) ([]entity.UserInfo, error)
	LeaderOf(ctx context.Context, disciple Actor) (*entity.UserInfo, error)
	// History of a paired disciple, seen by their leader
	DiscipleCheckins(ctx context.Context, leader Actor, discipleID uuid.UUID, pagination PaginationOpts) ([]*entity.CheckIn, error)
}

type CheckinsServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, in checkin.Input) (*CheckinResult, error)
	List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.CheckIn, error)
	Stats(ctx context.Context, uid uuid.UUID) (*entity.CheckInStats, error)
}

type AnalysesServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *CreateAnalysisRequest) (*AnalysisResult, error)
	List(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.RootAnalysis, error)
	// Re-renders the plan of a stored analysis
	Plan(ctx context.Context, uid, analysisID uuid.UUID) (*AnalysisResult, error)
}

type SchedulingServiceI interface {
	CreateSlot(ctx context.Context, leader Actor, req *CreateSlotRequest) (*entity.TimeSlot, error)
	BulkCreateSlots(ctx context.Context, leader Actor, req *BulkSlotsRequest) (*scheduling.BulkSummary, error)
	ListOwnSlots(ctx context.Context, leader Actor) ([]*entity.TimeSlot, error)
	// Available slots of the caller's leader, from today on
	ListLeaderSlots(ctx context.Context, disciple Actor, leaderID uuid.UUID) ([]*entity.TimeSlot, error)
	DeleteSlot(ctx context.Context, leader Actor, slotID uuid.UUID) error
	RequestMeeting(ctx context.Context, disciple Actor, slotID uuid.UUID, notes string) (*MeetingView, error)
	ListMeetings(ctx context.Context, actor Actor) ([]MeetingView, error)
	// Runs one meeting transition on behalf of actor
	Act(ctx context.Context, actor Actor, meetingID uuid.UUID, req ActRequest) (*MeetingView, error)
}

type PreferencesServiceI interface {
	// Returns stored preferences or the defaults
	Get(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error)
	Save(ctx context.Context, uid uuid.UUID, req *PreferencesRequest) (*entity.Preferences, error)
}
