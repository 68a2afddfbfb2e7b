package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/postplanner/internal/calendar"
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/metrics"
	"github.com/maheshrc27/postplanner/internal/models"
)

// PostStore is the persistence boundary for scheduled posts.
type PostStore interface {
	ListPosts(ctx context.Context, userID int64) ([]*models.ScheduledPost, error)
	CreatePost(ctx context.Context, post *models.ScheduledPost) (*models.ScheduledPost, error)
	DeletePost(ctx context.Context, userID, postID int64) error
}

// DueScheduler is told about every post that was committed as part of a
// successful batch.
type DueScheduler interface {
	ScheduleDue(ctx context.Context, post *models.ScheduledPost) error
}

// Result describes a fully committed batch.
type Result struct {
	BatchID string                  `json:"batch_id"`
	Created []*models.ScheduledPost `json:"created"`
	// Posts is the re-read post list; nil with Stale set when that read failed.
	Posts []*models.ScheduledPost `json:"posts"`
	Stale bool                    `json:"stale,omitempty"`
}

type ScheduleService interface {
	SubmitSchedule(ctx context.Context, userID int64, draft Draft) (*Result, error)
	Validate(draft Draft) error
	ListPosts(ctx context.Context, userID int64) ([]*models.ScheduledPost, error)
	Month(ctx context.Context, userID int64, year int, month time.Month) (calendar.Month, error)
	OpenSession(ctx context.Context, userID int64, date string) (*Session, error)
	Today() time.Time
}

type Option func(*scheduleService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *scheduleService) { s.now = now }
}

// WithRollbackTimeout bounds the cleanup of a failed batch.
func WithRollbackTimeout(d time.Duration) Option {
	return func(s *scheduleService) { s.rollbackTimeout = d }
}

type scheduleService struct {
	store           PostStore
	due             DueScheduler
	metrics         *metrics.Metrics
	now             func() time.Time
	rollbackTimeout time.Duration
}

func NewScheduleService(store PostStore, due DueScheduler, m *metrics.Metrics, opts ...Option) ScheduleService {
	s := &scheduleService{
		store:           store,
		due:             due,
		metrics:         m,
		now:             time.Now,
		rollbackTimeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *scheduleService) Today() time.Time {
	return s.now()
}

func (s *scheduleService) Validate(draft Draft) error {
	return validateDraft(draft, s.now())
}

func (s *scheduleService) ListPosts(ctx context.Context, userID int64) ([]*models.ScheduledPost, error) {
	if userID == 0 {
		err := errors.New("user is not valid")
		slog.Info(err.Error())
		return nil, err
	}
	return s.store.ListPosts(ctx, userID)
}

func (s *scheduleService) Month(ctx context.Context, userID int64, year int, month time.Month) (calendar.Month, error) {
	posts, err := s.ListPosts(ctx, userID)
	if err != nil {
		return calendar.Month{}, err
	}
	return calendar.BuildMonth(year, month, posts, s.now()), nil
}

// SubmitSchedule creates one post per selected channel, all or nothing. The
// per-channel calls run concurrently and are joined before any decision is
// made, so latency follows the slowest channel.
func (s *scheduleService) SubmitSchedule(ctx context.Context, userID int64, draft Draft) (*Result, error) {
	snap := draft.Snapshot()

	if userID == 0 {
		return nil, invalid("user", "user is not valid")
	}
	if err := validateDraft(snap, s.now()); err != nil {
		s.metrics.Submission("rejected")
		slog.Info("schedule rejected", "user_id", userID, "error", err.Error())
		return nil, err
	}

	batchID := uuid.NewString()
	payloads := buildPayloads(userID, batchID, snap)

	started := time.Now()
	outcomes := s.fanOut(ctx, payloads)
	s.metrics.FanOut(time.Since(started))

	created := make([]*models.ScheduledPost, 0, len(outcomes))
	failed := false
	for i, o := range outcomes {
		if o.Err != nil {
			failed = true
			s.metrics.ChannelCall(string(o.Channel), "failed")
			slog.Error("channel post creation failed", "batch_id", batchID, "channel", o.Channel, "error", o.Err.Error())
			continue
		}
		s.metrics.ChannelCall(string(o.Channel), "created")
		stored := *payloads[i]
		stored.ID = o.PostID
		created = append(created, &stored)
	}

	if failed {
		s.rollback(ctx, userID, outcomes)
		s.metrics.Submission("failed")
		return nil, &FanOutError{BatchID: batchID, Outcomes: outcomes}
	}

	// The batch is committed; follow-up work must survive a closed dialog.
	after := context.WithoutCancel(ctx)
	if s.due != nil {
		for _, p := range created {
			if err := s.due.ScheduleDue(after, p); err != nil {
				slog.Error("unable to schedule due notification", "post_id", p.ID, "error", err.Error())
			}
		}
	}

	s.metrics.Submission("success")
	result := &Result{BatchID: batchID, Created: created}

	posts, err := s.store.ListPosts(after, userID)
	if err != nil {
		slog.Error("unable to refresh posts after scheduling", "batch_id", batchID, "error", err.Error())
		result.Stale = true
		return result, nil
	}
	result.Posts = posts
	return result, nil
}

func buildPayloads(userID int64, batchID string, d Draft) []*models.ScheduledPost {
	status := models.PostStatusScheduled
	if d.AsDraft {
		status = models.PostStatusDraft
	}
	kind := mediaKindOf(d.MediaRefs, d.MediaKind)

	payloads := make([]*models.ScheduledPost, 0, len(d.Channels))
	for _, ch := range d.Channels {
		payloads = append(payloads, &models.ScheduledPost{
			UserID:        userID,
			BatchID:       batchID,
			Channel:       string(ch),
			Placement:     catalog.LabelFor(ch, d.Placement),
			Caption:       d.Caption,
			MediaKind:     kind,
			MediaRefs:     append([]string(nil), d.MediaRefs...),
			ScheduledDate: d.Date,
			ScheduledTime: d.Time,
			Status:        status,
			PillarID:      d.PillarID,
		})
	}
	return payloads
}

func (s *scheduleService) fanOut(ctx context.Context, payloads []*models.ScheduledPost) []ChannelOutcome {
	outcomes := make([]ChannelOutcome, len(payloads))

	var wg sync.WaitGroup
	for i, p := range payloads {
		outcomes[i] = ChannelOutcome{Channel: catalog.Channel(p.Channel), Placement: p.Placement}

		wg.Add(1)
		go func(i int, p *models.ScheduledPost) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return
			}
			stored, err := s.store.CreatePost(ctx, p)
			switch {
			case err != nil:
				outcomes[i].Err = err
			case stored == nil || stored.ID == 0:
				outcomes[i].Err = errors.New("store returned no post id")
			default:
				outcomes[i].PostID = stored.ID
			}
		}(i, p)
	}
	wg.Wait()

	return outcomes
}

// rollback deletes every post the failed batch managed to create. It runs on
// a context detached from ctx so a closed dialog cannot leave half a batch.
func (s *scheduleService) rollback(ctx context.Context, userID int64, outcomes []ChannelOutcome) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.rollbackTimeout)
	defer cancel()

	for i := range outcomes {
		o := &outcomes[i]
		if !o.Created() {
			continue
		}
		if err := s.store.DeletePost(rctx, userID, o.PostID); err != nil {
			o.RollbackErr = err
			s.metrics.ChannelCall(string(o.Channel), "rollback_failed")
			slog.Error("rollback failed", "post_id", o.PostID, "channel", o.Channel, "error", err.Error())
			continue
		}
		o.RolledBack = true
		s.metrics.ChannelCall(string(o.Channel), "rolled_back")
	}
}
