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

// Number of entries in the top struggles / top emotions tallies.
const topTallies = 3

type CheckinsRepository struct {
	conn PgConnection
}

func NewCheckinsRepo(conn PgConnection) *CheckinsRepository {
	mustPing(conn, "checkinsRepo")
	return &CheckinsRepository{
		conn: conn,
	}
}

func (cr *CheckinsRepository) Create(ctx context.Context, c *entity.CheckIn) error {
	row := cr.conn.QueryRow(ctx, `INSERT INTO checkins (user_id, struggles, struggle_intensities, intensity, trigger, emotions, risk)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`,
		c.UserID, c.Struggles, c.StruggleIntensities, c.Intensity, c.Trigger, c.Emotions, c.Risk,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating check-in db error: " + err.Error())
	}
	return nil
}

func (cr *CheckinsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error) {
	var c entity.CheckIn
	row := cr.conn.QueryRow(ctx, `SELECT id, user_id, struggles, struggle_intensities, intensity, trigger, emotions, risk, created_at
		FROM checkins WHERE id = $1;`, id)
	if err := row.Scan(&c.ID, &c.UserID, &c.Struggles, &c.StruggleIntensities, &c.Intensity, &c.Trigger, &c.Emotions, &c.Risk, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCheckInNotFound
		}
		return nil, errors.New("getting check-in by id error: " + err.Error())
	}
	return &c, nil
}

func (cr *CheckinsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.CheckIn, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, struggles, struggle_intensities, intensity, trigger, emotions, risk, created_at
		FROM checkins WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting check-ins by uid error: " + err.Error())
	}
	defer rows.Close()
	checkins := make([]*entity.CheckIn, 0)
	for rows.Next() {
		c := entity.CheckIn{}
		err = rows.Scan(&c.ID, &c.UserID, &c.Struggles, &c.StruggleIntensities, &c.Intensity, &c.Trigger, &c.Emotions, &c.Risk, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling check-in error: " + err.Error())
		}
		checkins = append(checkins, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return checkins, nil
}

func (cr *CheckinsRepository) Stats(ctx context.Context, uid uuid.UUID, since time.Time) (*entity.CheckInStats, error) {
	stats := entity.CheckInStats{}
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*), COALESCE(AVG(intensity), 0)::float8, MAX(created_at),
		COUNT(*) FILTER (WHERE created_at >= $2) FROM checkins WHERE user_id = $1;`, uid, since)
	if err := row.Scan(&stats.Total, &stats.AverageIntensity, &stats.LastCheckInAt, &stats.CheckInsLast7Days); err != nil {
		return nil, errors.New("aggregating check-ins error: " + err.Error())
	}
	var err error
	stats.TopStruggles, err = cr.tally(ctx, `SELECT s, COUNT(*) AS n FROM checkins, unnest(struggles) AS s
		WHERE user_id = $1 GROUP BY s ORDER BY n DESC, s LIMIT $2;`, uid)
	if err != nil {
		return nil, err
	}
	stats.TopEmotions, err = cr.tally(ctx, `SELECT e, COUNT(*) AS n FROM checkins, unnest(emotions) AS e
		WHERE user_id = $1 GROUP BY e ORDER BY n DESC, e LIMIT $2;`, uid)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (cr *CheckinsRepository) tally(ctx context.Context, query string, uid uuid.UUID) ([]entity.Tally, error) {
	rows, err := cr.conn.Query(ctx, query, uid, topTallies)
	if err != nil {
		return nil, errors.New("tallying check-ins error: " + err.Error())
	}
	defer rows.Close()
	tallies := make([]entity.Tally, 0, topTallies)
	for rows.Next() {
		var t entity.Tally
		if err := rows.Scan(&t.ID, &t.Count); err != nil {
			return nil, errors.New("unmarshalling tally error: " + err.Error())
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return tallies, nil
}
