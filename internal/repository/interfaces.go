package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. ID and CreatedAt are filled in on success
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type PairingsRepositoryI interface {
	// Pairs disciple with leader. A disciple can have only one leader
	Create(ctx context.Context, leaderID, discipleID uuid.UUID) error
	Exists(ctx context.Context, leaderID, discipleID uuid.UUID) (bool, error)
	// Lists disciples accompanied by leader, ordered by name
	ListDisciples(ctx context.Context, leaderID uuid.UUID) ([]entity.UserInfo, error)
	// Returns disciple's leader or ErrNotPaired
	LeaderOf(ctx context.Context, discipleID uuid.UUID) (*entity.UserInfo, error)
}

type CheckinsRepositoryI interface {
	// Stores check-in. ID and CreatedAt are filled in on success
	Create(ctx context.Context, c *entity.CheckIn) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error)
	// Lists user's check-ins, newest first. Requires pagination params provided
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.CheckIn, error)
	// Aggregates user's check-ins. since bounds the recent count
	Stats(ctx context.Context, uid uuid.UUID, since time.Time) (*entity.CheckInStats, error)
}

type AnalysesRepositoryI interface {
	// Stores analysis. ID and CreatedAt are filled in on success
	Create(ctx context.Context, a *entity.RootAnalysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.RootAnalysis, error)
	// Lists user's analyses, newest first
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.RootAnalysis, error)
}

type SlotsRepositoryI interface {
	// Creates slot. Returns ErrSlotExists if leader already has a slot at that date and start time
	Create(ctx context.Context, slot *entity.TimeSlot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error)
	// Lists every slot of leader ordered by date and start time
	ListByLeader(ctx context.Context, leaderID uuid.UUID) ([]*entity.TimeSlot, error)
	// Lists leader's available slots dated on or after from. Weekly slots are always included
	ListAvailable(ctx context.Context, leaderID uuid.UUID, from time.Time) ([]*entity.TimeSlot, error)
	// Deletes slot unless an active meeting references it
	Delete(ctx context.Context, id uuid.UUID) error
}

type MeetingsRepositoryI interface {
	// Takes the slot and stores the pending meeting in one transaction.
	// Returns ErrSlotUnavailable when the slot was already taken
	Reserve(ctx context.Context, meeting *entity.Meeting) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	// Lists meetings where uid is either leader or disciple, newest date first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Meeting, error)
	// Moves meeting from prev to next state, optionally releasing its slot, in one transaction.
	// Returns ErrInvalidTransition when the stored meeting no longer matches prev
	Transition(ctx context.Context, prev, next *entity.Meeting, releaseSlot bool) error
}

type PreferencesRepositoryI interface {
	// Returns ErrPreferencesNotFound if user never saved preferences
	Get(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error)
	// Inserts or replaces user's preferences. UpdatedAt is filled in on success
	Save(ctx context.Context, p *entity.Preferences) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	dsn := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		dsn += "?sslmode=" + pgcfg.SSLMode
	}
	return dsn
}
