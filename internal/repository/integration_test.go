package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/JuliPapp/Redimfinal-sub000/internal/database"
	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository"
	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("accompaniment"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(context.Background(), connStr); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func TestSchedulingAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	cfg := setupTestDB(t)
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ctx := context.Background()
	users := repository.NewUsersRepo(pool)
	pairings := repository.NewPairingsRepo(pool)
	slots := repository.NewSlotsRepo(pool)
	meetings := repository.NewMeetingsRepo(pool)

	leader := entity.User{Name: "pastor_ana", PasswordHash: "hash", Role: entity.RoleLeader}
	require.NoError(t, users.Create(ctx, &leader))
	disciples := make([]entity.User, 5)
	for i := range disciples {
		disciples[i] = entity.User{Name: "disciple_" + string(rune('a'+i)), PasswordHash: "hash", Role: entity.RoleDisciple}
		require.NoError(t, users.Create(ctx, &disciples[i]))
		require.NoError(t, pairings.Create(ctx, leader.ID, disciples[i].ID))
	}

	date := time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)
	slot := entity.TimeSlot{LeaderID: leader.ID, Date: &date, StartTime: "09:00", EndTime: "10:00", IsAvailable: true}
	require.NoError(t, slots.Create(ctx, &slot))

	t.Run("duplicate slot is rejected", func(t *testing.T) {
		dup := slot
		assert.ErrorIs(t, slots.Create(ctx, &dup), errorvalues.ErrSlotExists)
		all, err := slots.ListByLeader(ctx, leader.ID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("only one concurrent request wins", func(t *testing.T) {
		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			won   int
			taken int
		)
		for _, d := range disciples {
			wg.Add(1)
			go func(d entity.User) {
				defer wg.Done()
				_, m, err := scheduling.Reserve(slot, d.ID, "", time.Now())
				if err != nil {
					t.Error(err)
					return
				}
				err = meetings.Reserve(ctx, &m)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					won++
				case assert.ErrorIs(t, err, errorvalues.ErrSlotUnavailable):
					taken++
				}
			}(d)
		}
		wg.Wait()
		assert.Equal(t, 1, won)
		assert.Equal(t, len(disciples)-1, taken)

		stored, err := slots.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsAvailable)
	})

	t.Run("cancel frees the slot and blocks nothing", func(t *testing.T) {
		list, err := meetings.ListByUser(ctx, leader.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		m := list[0]
		assert.Equal(t, "pastor_ana", m.LeaderName)

		assert.ErrorIs(t, slots.Delete(ctx, slot.ID), errorvalues.ErrSlotHasMeeting)

		next, effect, err := scheduling.Apply(*m, scheduling.ActionCancel, "")
		require.NoError(t, err)
		require.NoError(t, meetings.Transition(ctx, m, &next, effect == scheduling.SlotRelease))

		// replaying the same transition finds a different stored state
		assert.ErrorIs(t, meetings.Transition(ctx, m, &next, true), errorvalues.ErrInvalidTransition)

		available, err := slots.ListAvailable(ctx, leader.ID, date)
		require.NoError(t, err)
		assert.Len(t, available, 1)

		require.NoError(t, slots.Delete(ctx, slot.ID))
	})

	t.Run("approved reschedule hands the slot to the next booking", func(t *testing.T) {
		later := time.Date(2030, 1, 8, 0, 0, 0, 0, time.UTC)
		slot := entity.TimeSlot{LeaderID: leader.ID, Date: &later, StartTime: "09:00", EndTime: "10:00", IsAvailable: true}
		require.NoError(t, slots.Create(ctx, &slot))

		book := func(disciple entity.User) (*entity.Meeting, error) {
			stored, err := slots.GetByID(ctx, slot.ID)
			require.NoError(t, err)
			_, m, err := scheduling.Reserve(*stored, disciple.ID, "", time.Now())
			if err != nil {
				return nil, err
			}
			if err := meetings.Reserve(ctx, &m); err != nil {
				return nil, err
			}
			return &m, nil
		}
		apply := func(m *entity.Meeting, action scheduling.Action, reason string) *entity.Meeting {
			next, effect, err := scheduling.Apply(*m, action, reason)
			require.NoError(t, err)
			require.NoError(t, meetings.Transition(ctx, m, &next, effect == scheduling.SlotRelease))
			return &next
		}
		available := func() bool {
			stored, err := slots.GetByID(ctx, slot.ID)
			require.NoError(t, err)
			return stored.IsAvailable
		}

		first, err := book(disciples[0])
		require.NoError(t, err)
		first = apply(first, scheduling.ActionConfirm, "")
		first = apply(first, scheduling.ActionRequestReschedule, "travel")
		first = apply(first, scheduling.ActionApproveReschedule, "")
		assert.True(t, available())

		stored, err := meetings.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, stored.SlotReleased)
		assert.Equal(t, entity.MeetingConfirmed, stored.Status)

		second, err := book(disciples[1])
		require.NoError(t, err)
		assert.False(t, available())
		assert.ErrorIs(t, slots.Delete(ctx, slot.ID), errorvalues.ErrSlotHasMeeting)

		apply(first, scheduling.ActionCancelConfirmed, "")
		assert.False(t, available())
		_, err = book(disciples[2])
		assert.ErrorIs(t, err, errorvalues.ErrSlotUnavailable)

		apply(second, scheduling.ActionCancel, "")
		assert.True(t, available())
		require.NoError(t, slots.Delete(ctx, slot.ID))
	})
}
