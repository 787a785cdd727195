package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleDisciple Role = "disciple"
	RoleLeader   Role = "leader"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Public view of a user, safe to return from the API.
type UserInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role Role      `json:"role"`
}

type Pairing struct {
	LeaderID   uuid.UUID `json:"leader_id"`
	DiscipleID uuid.UUID `json:"disciple_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type Risk string

const (
	RiskLow      Risk = "low"
	RiskModerate Risk = "moderate"
	RiskHigh     Risk = "high"
)

type CheckIn struct {
	ID                  uuid.UUID      `json:"id"`
	UserID              uuid.UUID      `json:"uid"`
	Struggles           []string       `json:"struggles"`
	StruggleIntensities map[string]int `json:"struggle_intensities,omitempty"`
	Intensity           int            `json:"intensity"`
	Trigger             *string        `json:"trigger,omitempty"`
	Emotions            []string       `json:"emotions"`
	Risk                Risk           `json:"risk"`
	CreatedAt           time.Time      `json:"created_at"`
}

type CheckInStats struct {
	Total             int        `json:"total"`
	AverageIntensity  float64    `json:"average_intensity"`
	LastCheckInAt     *time.Time `json:"last_checkin_at,omitempty"`
	CheckInsLast7Days int        `json:"checkins_last_7_days"`
	TopStruggles      []Tally    `json:"top_struggles"`
	TopEmotions       []Tally    `json:"top_emotions"`
}

type Tally struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

type RootAnalysis struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	CheckInID       uuid.UUID `json:"checkin_id"`
	IdentifiedRoots []string  `json:"identified_roots"`
	CreatedAt       time.Time `json:"timestamp"`
}

type TimeSlot struct {
	ID          uuid.UUID  `json:"id"`
	LeaderID    uuid.UUID  `json:"leader_id"`
	Date        *time.Time `json:"date,omitempty"`
	Day         *int       `json:"day,omitempty"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	IsAvailable bool       `json:"is_available"`
	CreatedAt   time.Time  `json:"created_at"`
}

type MeetingStatus string

const (
	MeetingPending   MeetingStatus = "pending"
	MeetingConfirmed MeetingStatus = "confirmed"
	MeetingCancelled MeetingStatus = "cancelled"
)

type Meeting struct {
	ID                  uuid.UUID     `json:"id"`
	SlotID              uuid.UUID     `json:"slot_id"`
	LeaderID            uuid.UUID     `json:"leader_id"`
	DiscipleID          uuid.UUID     `json:"disciple_id"`
	LeaderName          string        `json:"leader_name,omitempty"`
	DiscipleName        string        `json:"disciple_name,omitempty"`
	Date                time.Time     `json:"date"`
	StartTime           string        `json:"start_time"`
	EndTime             string        `json:"end_time"`
	Status              MeetingStatus `json:"status"`
	RescheduleRequested bool          `json:"reschedule_requested"`
	RescheduleReason    string        `json:"reschedule_reason,omitempty"`
	SlotReleased        bool          `json:"slot_released"`
	Notes               string        `json:"notes,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type Preferences struct {
	UserID          uuid.UUID `json:"uid"`
	Theme           Theme     `json:"theme"`
	OnboardingSeen  bool      `json:"onboarding_seen"`
	DashboardLayout []string  `json:"dashboard_layout"`
	UpdatedAt       time.Time `json:"updated_at"`
}
