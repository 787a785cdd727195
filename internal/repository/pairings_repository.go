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

type PairingsRepository struct {
	conn PgConnection
}

func NewPairingsRepo(conn PgConnection) *PairingsRepository {
	mustPing(conn, "pairingsRepo")
	return &PairingsRepository{
		conn: conn,
	}
}

func (pr *PairingsRepository) Create(ctx context.Context, leaderID, discipleID uuid.UUID) error {
	_, err := pr.conn.Exec(ctx, `INSERT INTO pairings (leader_id, disciple_id) VALUES ($1, $2);`, leaderID, discipleID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: disciple_id is the primary key
			case "23505":
				return errorvalues.ErrAlreadyPaired
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating pairing db error: " + err.Error())
	}
	return nil
}

func (pr *PairingsRepository) Exists(ctx context.Context, leaderID, discipleID uuid.UUID) (bool, error) {
	var exists bool
	row := pr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pairings WHERE leader_id = $1 AND disciple_id = $2);`, leaderID, discipleID)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("checking pairing error: " + err.Error())
	}
	return exists, nil
}

func (pr *PairingsRepository) ListDisciples(ctx context.Context, leaderID uuid.UUID) ([]entity.UserInfo, error) {
	rows, err := pr.conn.Query(ctx, `SELECT u.id, u.name, u.role FROM pairings p
		JOIN users u ON u.id = p.disciple_id WHERE p.leader_id = $1 ORDER BY u.name;`, leaderID)
	if err != nil {
		return nil, errors.New("listing disciples error: " + err.Error())
	}
	defer rows.Close()
	disciples := make([]entity.UserInfo, 0)
	for rows.Next() {
		var u entity.UserInfo
		if err := rows.Scan(&u.ID, &u.Name, &u.Role); err != nil {
			return nil, errors.New("unmarshalling disciple error: " + err.Error())
		}
		disciples = append(disciples, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return disciples, nil
}

func (pr *PairingsRepository) LeaderOf(ctx context.Context, discipleID uuid.UUID) (*entity.UserInfo, error) {
	var leader entity.UserInfo
	row := pr.conn.QueryRow(ctx, `SELECT u.id, u.name, u.role FROM pairings p
		JOIN users u ON u.id = p.leader_id WHERE p.disciple_id = $1;`, discipleID)
	if err := row.Scan(&leader.ID, &leader.Name, &leader.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotPaired
		}
		return nil, errors.New("searching leader error: " + err.Error())
	}
	return &leader, nil
}
