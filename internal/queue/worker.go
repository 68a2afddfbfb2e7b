package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postplanner/internal/models"
	"github.com/maheshrc27/postplanner/internal/relay"
)

func (q *Queue) HandlePostDueTask(ctx context.Context, task *asynq.Task) error {
	var payload PostDuePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	return q.RelayPost(ctx, payload.PostID)
}

// RelayPost hands one due post to the automation webhook and records the
// attempt. Posts that were removed, rolled back, or are still drafts are
// skipped without error.
func (q *Queue) RelayPost(ctx context.Context, postID int64) error {
	post, err := q.posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		log.Printf("Post %d no longer exists, skipping", postID)
		return nil
	}
	if post.Status != models.PostStatusScheduled {
		log.Printf("Post %d is %s, skipping", postID, post.Status)
		return nil
	}

	at, err := post.ScheduledAt(time.Local)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	relayErr := q.relay.Relay(ctx, relay.DueNotice{
		PostID:      post.ID,
		UserID:      post.UserID,
		BatchID:     post.BatchID,
		Channel:     post.Channel,
		Placement:   post.Placement,
		Caption:     post.Caption,
		MediaKind:   post.MediaKind,
		MediaRefs:   post.MediaRefs,
		ScheduledAt: at,
	})

	history := models.RelayHistory{
		UserID:  post.UserID,
		PostID:  post.ID,
		Channel: post.Channel,
	}
	if relayErr != nil {
		history.ErrorMessage = relayErr.Error()
		log.Printf("Error relaying %s post %d: %v", post.Channel, post.ID, relayErr)
	}
	if _, err := q.history.Create(ctx, &history); err != nil {
		log.Printf("Error saving relay history for post %d: %v", post.ID, err)
	}

	if relayErr != nil {
		q.metrics.DueRelay(post.Channel, "failed")
		return relayErr
	}
	q.metrics.DueRelay(post.Channel, "sent")

	return q.posts.MarkPublished(ctx, post.ID)
}
