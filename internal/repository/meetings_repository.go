package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

const meetingSelect = `SELECT m.id, m.slot_id, m.leader_id, m.disciple_id, l.name, d.name, m.date, m.start_time, m.end_time,
	m.status, m.reschedule_requested, m.reschedule_reason, m.slot_released, m.notes, m.created_at, m.updated_at
	FROM meetings m JOIN users l ON l.id = m.leader_id JOIN users d ON d.id = m.disciple_id`

type MeetingsRepository struct {
	conn PgConnection
}

func NewMeetingsRepo(conn PgConnection) *MeetingsRepository {
	mustPing(conn, "meetingsRepo")
	return &MeetingsRepository{
		conn: conn,
	}
}

func (mr *MeetingsRepository) Reserve(ctx context.Context, m *entity.Meeting) error {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `UPDATE time_slots SET is_available = false WHERE id = $1 AND is_available = true;`, m.SlotID)
	if err != nil {
		return errors.New("taking time slot error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSlotUnavailable
	}
	row := tx.QueryRow(ctx, `INSERT INTO meetings (slot_id, leader_id, disciple_id, date, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;`,
		m.SlotID, m.LeaderID, m.DiscipleID, m.Date, m.StartTime, m.EndTime, m.Status, m.Notes,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating meeting db error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing meeting error: " + err.Error())
	}
	return nil
}

func (mr *MeetingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	row := mr.conn.QueryRow(ctx, meetingSelect+` WHERE m.id = $1;`, id)
	m, err := scanMeeting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMeetingNotFound
		}
		return nil, errors.New("getting meeting by id error: " + err.Error())
	}
	return m, nil
}

func (mr *MeetingsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Meeting, error) {
	rows, err := mr.conn.Query(ctx, meetingSelect+` WHERE m.leader_id = $1 OR m.disciple_id = $1
		ORDER BY m.date DESC, m.start_time DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing meetings error: " + err.Error())
	}
	defer rows.Close()
	meetings := make([]*entity.Meeting, 0)
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, errors.New("unmarshalling meeting error: " + err.Error())
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return meetings, nil
}

func (mr *MeetingsRepository) Transition(ctx context.Context, prev, next *entity.Meeting, releaseSlot bool) error {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `UPDATE meetings SET status = $1, reschedule_requested = $2, reschedule_reason = $3, slot_released = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6 AND reschedule_requested = $7 AND slot_released = $8 RETURNING updated_at;`,
		next.Status, next.RescheduleRequested, next.RescheduleReason, next.SlotReleased,
		prev.ID, prev.Status, prev.RescheduleRequested, prev.SlotReleased,
	)
	if err := row.Scan(&next.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrInvalidTransition
		}
		return errors.New("updating meeting error: " + err.Error())
	}
	if releaseSlot {
		// another meeting may have booked the slot after an approved reschedule
		_, err = tx.Exec(ctx, `UPDATE time_slots SET is_available = true WHERE id = $1
			AND NOT EXISTS (SELECT 1 FROM meetings WHERE slot_id = $1 AND id <> $2 AND status <> 'cancelled' AND NOT slot_released);`,
			prev.SlotID, prev.ID)
		if err != nil {
			return errors.New("releasing time slot error: " + err.Error())
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing meeting error: " + err.Error())
	}
	return nil
}

func scanMeeting(row pgx.Row) (*entity.Meeting, error) {
	var m entity.Meeting
	err := row.Scan(&m.ID, &m.SlotID, &m.LeaderID, &m.DiscipleID, &m.LeaderName, &m.DiscipleName, &m.Date, &m.StartTime, &m.EndTime,
		&m.Status, &m.RescheduleRequested, &m.RescheduleReason, &m.SlotReleased, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
