package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

const slotColumns = `id, leader_id, date, day, start_time, end_time, is_available, created_at`

type SlotsRepository struct {
	conn PgConnection
}

func NewSlotsRepo(conn PgConnection) *SlotsRepository {
	mustPing(conn, "slotsRepo")
	return &SlotsRepository{
		conn: conn,
	}
}

func (sr *SlotsRepository) Create(ctx context.Context, slot *entity.TimeSlot) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO time_slots (leader_id, date, day, start_time, end_time, is_available)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		slot.LeaderID, slot.Date, slot.Day, slot.StartTime, slot.EndTime, slot.IsAvailable,
	)
	if err := row.Scan(&slot.ID, &slot.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (leader_id, date, start_time)
			case "23505":
				return errorvalues.ErrSlotExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating time slot db error: " + err.Error())
	}
	return nil
}

func (sr *SlotsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	var s entity.TimeSlot
	row := sr.conn.QueryRow(ctx, `SELECT `+slotColumns+` FROM time_slots WHERE id = $1;`, id)
	if err := row.Scan(&s.ID, &s.LeaderID, &s.Date, &s.Day, &s.StartTime, &s.EndTime, &s.IsAvailable, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSlotNotFound
		}
		return nil, errors.New("getting time slot by id error: " + err.Error())
	}
	return &s, nil
}

func (sr *SlotsRepository) ListByLeader(ctx context.Context, leaderID uuid.UUID) ([]*entity.TimeSlot, error) {
	return sr.list(ctx, `SELECT `+slotColumns+` FROM time_slots WHERE leader_id = $1
		ORDER BY date NULLS LAST, day, start_time;`, leaderID)
}

func (sr *SlotsRepository) ListAvailable(ctx context.Context, leaderID uuid.UUID, from time.Time) ([]*entity.TimeSlot, error) {
	return sr.list(ctx, `SELECT `+slotColumns+` FROM time_slots WHERE leader_id = $1 AND is_available
		AND (date IS NULL OR date >= $2) ORDER BY date NULLS LAST, day, start_time;`, leaderID, from)
}

func (sr *SlotsRepository) list(ctx context.Context, query string, args ...any) ([]*entity.TimeSlot, error) {
	rows, err := sr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing time slots error: " + err.Error())
	}
	defer rows.Close()
	slots := make([]*entity.TimeSlot, 0)
	for rows.Next() {
		s := entity.TimeSlot{}
		if err := rows.Scan(&s.ID, &s.LeaderID, &s.Date, &s.Day, &s.StartTime, &s.EndTime, &s.IsAvailable, &s.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling time slot error: " + err.Error())
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return slots, nil
}

func (sr *SlotsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM time_slots WHERE id = $1
		AND NOT EXISTS (SELECT 1 FROM meetings WHERE slot_id = $1 AND status <> 'cancelled' AND NOT slot_released);`, id)
	if err != nil {
		return errors.New("deleting time slot error: " + err.Error())
	}
	if ct.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	row := sr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM time_slots WHERE id = $1);`, id)
	if err := row.Scan(&exists); err != nil {
		return errors.New("checking time slot error: " + err.Error())
	}
	if exists {
		return errorvalues.ErrSlotHasMeeting
	}
	return errorvalues.ErrSlotNotFound
}
