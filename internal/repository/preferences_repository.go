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

type PreferencesRepository struct {
	conn PgConnection
}

func NewPreferencesRepo(conn PgConnection) *PreferencesRepository {
	mustPing(conn, "preferencesRepo")
	return &PreferencesRepository{
		conn: conn,
	}
}

func (pr *PreferencesRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Preferences, error) {
	p := entity.Preferences{UserID: uid}
	row := pr.conn.QueryRow(ctx, `SELECT theme, onboarding_seen, dashboard_layout, updated_at FROM preferences WHERE user_id = $1;`, uid)
	if err := row.Scan(&p.Theme, &p.OnboardingSeen, &p.DashboardLayout, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPreferencesNotFound
		}
		return nil, errors.New("getting preferences error: " + err.Error())
	}
	return &p, nil
}

func (pr *PreferencesRepository) Save(ctx context.Context, p *entity.Preferences) error {
	row := pr.conn.QueryRow(ctx, `INSERT INTO preferences (user_id, theme, onboarding_seen, dashboard_layout) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme, onboarding_seen = EXCLUDED.onboarding_seen,
		dashboard_layout = EXCLUDED.dashboard_layout, updated_at = NOW() RETURNING updated_at;`,
		p.UserID, p.Theme, p.OnboardingSeen, p.DashboardLayout,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving preferences error: " + err.Error())
	}
	return nil
}
