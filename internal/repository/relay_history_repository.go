package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/postplanner/internal/models"
)

type RelayHistoryRepository interface {
	Create(ctx context.Context, rh *models.RelayHistory) (int64, error)
	GetByPostID(ctx context.Context, postID int64) ([]*models.RelayHistory, error)
}

type relayHistoryRepository struct {
	db *sql.DB
}

func NewRelayHistoryRepository(db *sql.DB) RelayHistoryRepository {
	return &relayHistoryRepository{db: db}
}

func (r *relayHistoryRepository) Create(ctx context.Context, rh *models.RelayHistory) (int64, error) {
	query := `
		INSERT INTO relay_history (user_id, post_id, channel, error_message)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, rh.UserID, rh.PostID, rh.Channel, rh.ErrorMessage).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *relayHistoryRepository) GetByPostID(ctx context.Context, postID int64) ([]*models.RelayHistory, error) {
	query := `SELECT id, user_id, post_id, channel, error_message, created_at FROM relay_history WHERE post_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var out []*models.RelayHistory
	for rows.Next() {
		var rh models.RelayHistory
		err := rows.Scan(&rh.ID, &rh.UserID, &rh.PostID, &rh.Channel, &rh.ErrorMessage, &rh.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		out = append(out, &rh)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return out, nil
}
