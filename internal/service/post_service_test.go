package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postplanner/internal/models"
)

func seedPost(store *memStore, userID int64, status string) int64 {
	p, _ := store.CreatePost(context.Background(), &models.ScheduledPost{
		UserID:        userID,
		Channel:       "X",
		Placement:     "Tweet",
		ScheduledDate: "2025-03-12",
		ScheduledTime: "09:00",
		Status:        status,
	})
	return p.ID
}

func TestPostInfoIsScopedToOwner(t *testing.T) {
	store := newMemStore()
	id := seedPost(store, 7, models.PostStatusScheduled)
	svc := NewPostService(store)

	post, err := svc.PostInfo(context.Background(), id, 7)
	require.NoError(t, err)
	assert.Equal(t, "Tweet", post.Placement)

	_, err = svc.PostInfo(context.Background(), id, 8)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.PostInfo(context.Background(), 0, 7)
	assert.Error(t, err)
}

func TestRemovePost(t *testing.T) {
	store := newMemStore()
	scheduled := seedPost(store, 7, models.PostStatusScheduled)
	published := seedPost(store, 7, models.PostStatusPublished)
	svc := NewPostService(store)

	require.NoError(t, svc.Remove(context.Background(), 7, scheduled))
	assert.Error(t, svc.Remove(context.Background(), 7, published))
	assert.Equal(t, 1, store.count())
}
