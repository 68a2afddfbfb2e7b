package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postplanner/internal/models"
)

func TestRelayHistoryRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRelayHistoryRepository(db)

	mock.ExpectQuery(`INSERT INTO relay_history`).
		WithArgs(int64(3), int64(11), "X", "webhook returned 502").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.Create(context.Background(), &models.RelayHistory{
		UserID:       3,
		PostID:       11,
		Channel:      "X",
		ErrorMessage: "webhook returned 502",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, user_id, post_id, channel, error_message, created_at FROM relay_history WHERE post_id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "post_id", "channel", "error_message", "created_at"}).
			AddRow(1, 3, 11, "X", "webhook returned 502", at).
			AddRow(2, 3, 11, "X", "", at.Add(time.Minute)))

	rows, err := repo.GetByPostID(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[1].ErrorMessage)

	assert.NoError(t, mock.ExpectationsWereMet())
}
