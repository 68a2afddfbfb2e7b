package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/postplanner/internal/models"
)

// PillarRepository reads content pillars. Pillars are managed elsewhere.
type PillarRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*models.ContentPillar, error)
	CheckByUserID(ctx context.Context, pillarID, userID int64) (bool, error)
}

type pillarRepository struct {
	db *sql.DB
}

func NewPillarRepository(db *sql.DB) PillarRepository {
	return &pillarRepository{db: db}
}

func (r *pillarRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.ContentPillar, error) {
	query := `SELECT id, user_id, title FROM content_pillars WHERE user_id = $1 ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var pillars []*models.ContentPillar
	for rows.Next() {
		var p models.ContentPillar
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		pillars = append(pillars, &p)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return pillars, nil
}

func (r *pillarRepository) CheckByUserID(ctx context.Context, pillarID, userID int64) (bool, error) {
	query := "SELECT 1 FROM content_pillars WHERE id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, pillarID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}
