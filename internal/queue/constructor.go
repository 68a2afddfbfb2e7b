package queue

import (
	"context"

	"github.com/maheshrc27/postplanner/internal/metrics"
	"github.com/maheshrc27/postplanner/internal/models"
	"github.com/maheshrc27/postplanner/internal/relay"
)

// DuePosts is what the worker needs from the event store.
type DuePosts interface {
	GetPost(ctx context.Context, id int64) (*models.ScheduledPost, error)
	MarkPublished(ctx context.Context, postID int64) error
}

type RelayHistory interface {
	Create(ctx context.Context, rh *models.RelayHistory) (int64, error)
}

type Queue struct {
	posts   DuePosts
	history RelayHistory
	relay   relay.Relayer
	metrics *metrics.Metrics
}

func NewQueue(posts DuePosts, history RelayHistory, r relay.Relayer, m *metrics.Metrics) *Queue {
	return &Queue{
		posts:   posts,
		history: history,
		relay:   r,
		metrics: m,
	}
}
