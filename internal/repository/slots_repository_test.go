package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSlot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSlotsRepo(mock)
	ctx := context.Background()
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	slot := entity.TimeSlot{LeaderID: uuid.New(), Date: &date, StartTime: "09:00", EndTime: "10:00", IsAvailable: true}
	query := regexp.QuoteMeta(`INSERT INTO time_slots (leader_id, date, day, start_time, end_time, is_available)`)
	args := []any{slot.LeaderID, slot.Date, slot.Day, slot.StartTime, slot.EndTime, slot.IsAvailable}

	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now()))
		s := slot
		require.NoError(t, repo.Create(ctx, &s))
		assert.Equal(t, id, s.ID)
	})
	t.Run("already exists", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		s := slot
		assert.ErrorIs(t, repo.Create(ctx, &s), errorvalues.ErrSlotExists)
	})
	t.Run("unknown leader", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		s := slot
		assert.ErrorIs(t, repo.Create(ctx, &s), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		s := slot
		assert.Error(t, repo.Create(ctx, &s))
	})
}

func TestListAvailableSlots(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSlotsRepo(mock)
	ctx := context.Background()
	leader := uuid.New()
	today := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	date := today.AddDate(0, 0, 2)
	day := 5
	query := regexp.QuoteMeta(`FROM time_slots WHERE leader_id = $1 AND is_available`)
	columns := []string{"id", "leader_id", "date", "day", "start_time", "end_time", "is_available", "created_at"}

	mock.ExpectQuery(query).WithArgs(leader, today).WillReturnRows(pgxmock.NewRows(columns).
		AddRow(uuid.New(), leader, &date, (*int)(nil), "09:00", "10:00", true, time.Now()).
		AddRow(uuid.New(), leader, (*time.Time)(nil), &day, "18:00", "19:00", true, time.Now()))
	slots, err := repo.ListAvailable(ctx, leader, today)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, date, *slots[0].Date)
	assert.Nil(t, slots[1].Date)
	assert.Equal(t, 5, *slots[1].Day)

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(leader, today).WillReturnError(errors.New("db error"))
		_, err := repo.ListAvailable(ctx, leader, today)
		assert.Error(t, err)
	})
}

func TestDeleteSlot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSlotsRepo(mock)
	ctx := context.Background()
	id := uuid.New()
	deleteQuery := regexp.QuoteMeta(`DELETE FROM time_slots WHERE id = $1`)
	existsQuery := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM time_slots WHERE id = $1);`)

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id))
	})
	t.Run("active meeting", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectQuery(existsQuery).WithArgs(id).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrSlotHasMeeting)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectQuery(existsQuery).WithArgs(id).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrSlotNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, id))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
