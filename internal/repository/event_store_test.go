package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postplanner/internal/models"
)

func newStore(t *testing.T) (*EventStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewEventStore(db, NewPostRepository(db), NewPostMediaRepository(db), NewPillarRepository(db)), mock
}

var postRowColumns = []string{"id", "user_id", "batch_id", "channel", "placement", "caption", "media_kind",
	"scheduled_date", "scheduled_time", "status", "pillar_id", "created_at"}

func samplePost() *models.ScheduledPost {
	return &models.ScheduledPost{
		UserID:        3,
		BatchID:       "batch-1",
		Channel:       "Instagram",
		Placement:     "Feed",
		Caption:       "hello",
		MediaKind:     models.MediaKindCarousel,
		MediaRefs:     []string{"a.jpg", "b.jpg"},
		ScheduledDate: "2025-03-01",
		ScheduledTime: "09:30",
		Status:        models.PostStatusScheduled,
	}
}

func TestEventStoreCreatePost(t *testing.T) {
	store, mock := newStore(t)
	in := samplePost()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO scheduled_posts").
		WithArgs(int64(3), "batch-1", "Instagram", "Feed", "hello", models.MediaKindCarousel, "2025-03-01", "09:30", models.PostStatusScheduled, int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectExec("INSERT INTO post_media").WithArgs(int64(41), "a.jpg", 0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO post_media").WithArgs(int64(41), "b.jpg", 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := store.CreatePost(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(41), created.ID)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, created.MediaRefs)
	assert.Zero(t, in.ID, "input must not be modified")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreCreatePostRollsBackOnMediaFailure(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO scheduled_posts").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec("INSERT INTO post_media").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := store.CreatePost(context.Background(), samplePost())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreListPostsAttachesMedia(t *testing.T) {
	store, mock := newStore(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM scheduled_posts WHERE user_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow(int64(1), int64(3), "b1", "Instagram", "Feed", "one", "image", "2025-03-01", "09:30", "scheduled", int64(0), now).
			AddRow(int64(2), int64(3), "b1", "LinkedIn", "Post", "one", "image", "2025-03-01", "09:30", "scheduled", int64(4), now))
	mock.ExpectQuery("FROM post_media").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "media_ref"}).
			AddRow(int64(1), "a.jpg").
			AddRow(int64(2), "a.jpg"))

	posts, err := store.ListPosts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "2025-03-01", posts[0].ScheduledDate)
	assert.Equal(t, []string{"a.jpg"}, posts[0].MediaRefs)
	assert.Equal(t, int64(4), posts[1].PillarID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreListPostsEmpty(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery("FROM scheduled_posts").WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(postRowColumns))

	posts, err := store.ListPosts(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreGetPostMissing(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery("FROM scheduled_posts WHERE id = \\$1").WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

	post, err := store.GetPost(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestEventStoreDeletePostIsScopedToUser(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec("DELETE FROM scheduled_posts WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(41), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.DeletePost(context.Background(), 3, 41))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreListContentPillars(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery("FROM content_pillars WHERE user_id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title"}).AddRow(int64(1), int64(3), "Education"))

	pillars, err := store.ListContentPillars(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, pillars, 1)
	assert.Equal(t, "Education", pillars[0].Title)
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreOwnership(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery("SELECT 1 FROM scheduled_posts WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(10), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM content_pillars WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(4), int64(3)).
		WillReturnError(sql.ErrNoRows)

	owns, err := store.OwnsPost(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = store.OwnsPillar(context.Background(), 3, 4)
	require.NoError(t, err)
	assert.False(t, owns)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventStoreMarkPublished(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec("UPDATE scheduled_posts SET status = \\$1 WHERE id = \\$2").
		WithArgs(models.PostStatusPublished, int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.MarkPublished(context.Background(), 12))
	assert.NoError(t, mock.ExpectationsWereMet())
}
