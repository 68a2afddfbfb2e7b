package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/postplanner/internal/models"
)

var ErrPostNotFound = errors.New("post doesn't exist")

// PostLookup is the read and delete side of the event store.
type PostLookup interface {
	GetPost(ctx context.Context, id int64) (*models.ScheduledPost, error)
	OwnsPost(ctx context.Context, userID, postID int64) (bool, error)
	DeletePost(ctx context.Context, userID, postID int64) error
}

// PostService covers single already-scheduled posts. Creation goes through
// ScheduleService.
type PostService interface {
	PostInfo(ctx context.Context, postID, userID int64) (*models.ScheduledPost, error)
	Remove(ctx context.Context, userID, postID int64) error
}

type postService struct {
	store PostLookup
}

func NewPostService(store PostLookup) PostService {
	return &postService{store: store}
}

func (s *postService) PostInfo(ctx context.Context, postID, userID int64) (*models.ScheduledPost, error) {
	if err := s.checkOwner(ctx, postID, userID); err != nil {
		return nil, err
	}

	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error getting post info: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Remove cancels a scheduled post. Published posts are kept.
func (s *postService) Remove(ctx context.Context, userID, postID int64) error {
	post, err := s.PostInfo(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.Status == models.PostStatusPublished {
		err = errors.New("published posts cannot be removed")
		slog.Info(err.Error())
		return err
	}

	if err := s.store.DeletePost(ctx, userID, postID); err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}
	return nil
}

func (s *postService) checkOwner(ctx context.Context, postID, userID int64) error {
	if userID == 0 {
		err := errors.New("user is not valid")
		slog.Info(err.Error())
		return err
	}
	if postID == 0 {
		err := errors.New("post id is not valid")
		slog.Info(err.Error())
		return err
	}

	owns, err := s.store.OwnsPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !owns {
		slog.Info(ErrPostNotFound.Error(), "post_id", postID)
		return ErrPostNotFound
	}
	return nil
}
