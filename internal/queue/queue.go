package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postplanner/internal/models"
)

const TaskTypePostDue = "post:due"

type PostDuePayload struct {
	PostID  int64  `json:"post_id"`
	UserID  int64  `json:"user_id"`
	BatchID string `json:"batch_id"`
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func DueTaskID(postID int64) string {
	return fmt.Sprintf("%s:%d", TaskTypePostDue, postID)
}

func EnqueueDue(ctx context.Context, client Enqueuer, payload PostDuePayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePostDue, taskPayload)

	_, err = client.EnqueueContext(ctx, task, asynq.TaskID(DueTaskID(payload.PostID)), asynq.ProcessIn(delay))
	if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return err
	}

	log.Printf("Task scheduled: %+v in %s", payload, delay)
	return nil
}

// Scheduler turns committed posts into delayed due tasks. Drafts are skipped
// because nothing should be relayed for them.
type Scheduler struct {
	client Enqueuer
	loc    *time.Location
	now    func() time.Time
}

func NewScheduler(client Enqueuer, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{client: client, loc: loc, now: time.Now}
}

func (s *Scheduler) ScheduleDue(ctx context.Context, post *models.ScheduledPost) error {
	if post.Status == models.PostStatusDraft {
		return nil
	}

	at, err := post.ScheduledAt(s.loc)
	if err != nil {
		return fmt.Errorf("post %d has no usable schedule: %w", post.ID, err)
	}
	delay := at.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	return EnqueueDue(ctx, s.client, PostDuePayload{
		PostID:  post.ID,
		UserID:  post.UserID,
		BatchID: post.BatchID,
	}, delay)
}
