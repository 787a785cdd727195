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

type AnalysesRepository struct {
	conn PgConnection
}

func NewAnalysesRepo(conn PgConnection) *AnalysesRepository {
	mustPing(conn, "analysesRepo")
	return &AnalysesRepository{
		conn: conn,
	}
}

func (ar *AnalysesRepository) Create(ctx context.Context, a *entity.RootAnalysis) error {
	row := ar.conn.QueryRow(ctx, `INSERT INTO root_analyses (user_id, checkin_id, identified_roots) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		a.UserID, a.CheckInID, a.IdentifiedRoots)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrCheckInNotFound
			}
		}
		return errors.New("creating analysis db error: " + err.Error())
	}
	return nil
}

func (ar *AnalysesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.RootAnalysis, error) {
	var a entity.RootAnalysis
	row := ar.conn.QueryRow(ctx, `SELECT id, user_id, checkin_id, identified_roots, created_at FROM root_analyses WHERE id = $1;`, id)
	if err := row.Scan(&a.ID, &a.UserID, &a.CheckInID, &a.IdentifiedRoots, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAnalysisNotFound
		}
		return nil, errors.New("getting analysis by id error: " + err.Error())
	}
	return &a, nil
}

func (ar *AnalysesRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.RootAnalysis, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, checkin_id, identified_roots, created_at FROM root_analyses
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting analyses by uid error: " + err.Error())
	}
	defer rows.Close()
	analyses := make([]*entity.RootAnalysis, 0)
	for rows.Next() {
		a := entity.RootAnalysis{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.CheckInID, &a.IdentifiedRoots, &a.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling analysis error: " + err.Error())
		}
		analyses = append(analyses, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return analyses, nil
}
