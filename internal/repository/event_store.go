package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maheshrc27/postplanner/internal/models"
)

// EventStore is the persistence boundary the scheduling core talks to. It
// stitches posts and their ordered media into single records.
type EventStore struct {
	db      *sql.DB
	posts   PostRepository
	media   PostMediaRepository
	pillars PillarRepository
}

func NewEventStore(db *sql.DB, posts PostRepository, media PostMediaRepository, pillars PillarRepository) *EventStore {
	return &EventStore{
		db:      db,
		posts:   posts,
		media:   media,
		pillars: pillars,
	}
}

func (s *EventStore) ListPosts(ctx context.Context, userID int64) ([]*models.ScheduledPost, error) {
	posts, err := s.posts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	refs, err := s.media.ListByPostIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list post media: %w", err)
	}
	for _, p := range posts {
		p.MediaRefs = refs[p.ID]
	}
	return posts, nil
}

func (s *EventStore) GetPost(ctx context.Context, id int64) (*models.ScheduledPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	if post == nil {
		return nil, nil
	}
	media, err := s.media.ListByPostID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post media %d: %w", id, err)
	}
	for _, m := range media {
		post.MediaRefs = append(post.MediaRefs, m.MediaRef)
	}
	return post, nil
}

// CreatePost writes the post and its media in one transaction and returns the
// stored record.
func (s *EventStore) CreatePost(ctx context.Context, post *models.ScheduledPost) (created *models.ScheduledPost, err error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	postID, err := s.posts.Create(ctx, tx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	for i, ref := range post.MediaRefs {
		pm := models.PostMedia{
			PostID:       postID,
			MediaRef:     ref,
			DisplayOrder: i,
		}
		if err = s.media.Create(ctx, tx, &pm); err != nil {
			return nil, fmt.Errorf("error saving media %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	stored := *post
	stored.ID = postID
	stored.MediaRefs = append([]string(nil), post.MediaRefs...)
	return &stored, nil
}

func (s *EventStore) DeletePost(ctx context.Context, userID, postID int64) error {
	if err := s.posts.Remove(ctx, userID, postID); err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	return nil
}

func (s *EventStore) ListContentPillars(ctx context.Context, userID int64) ([]*models.ContentPillar, error) {
	pillars, err := s.pillars.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list content pillars: %w", err)
	}
	return pillars, nil
}

func (s *EventStore) OwnsPost(ctx context.Context, userID, postID int64) (bool, error) {
	return s.posts.CheckByUserID(ctx, postID, userID)
}

func (s *EventStore) OwnsPillar(ctx context.Context, userID, pillarID int64) (bool, error) {
	return s.pillars.CheckByUserID(ctx, pillarID, userID)
}

func (s *EventStore) MarkPublished(ctx context.Context, postID int64) error {
	if err := s.posts.UpdateStatus(ctx, models.PostStatusPublished, postID); err != nil {
		return fmt.Errorf("mark post %d published: %w", postID, err)
	}
	return nil
}
