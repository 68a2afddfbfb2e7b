package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maheshrc27/postplanner/internal/models"
)

type PillarStore interface {
	ListContentPillars(ctx context.Context, userID int64) ([]*models.ContentPillar, error)
	OwnsPillar(ctx context.Context, userID, pillarID int64) (bool, error)
}

// PillarService serves content pillars from a per-user cache. Pillars are
// edited outside this service, so the cache is refreshed on a timer.
type PillarService interface {
	List(ctx context.Context, userID int64) ([]*models.ContentPillar, error)
	Check(ctx context.Context, userID, pillarID int64) error
	RefreshAll(ctx context.Context) error
}

type pillarService struct {
	store PillarStore

	mu    sync.RWMutex
	cache map[int64][]*models.ContentPillar
}

func NewPillarService(store PillarStore) PillarService {
	return &pillarService{
		store: store,
		cache: make(map[int64][]*models.ContentPillar),
	}
}

func (s *pillarService) List(ctx context.Context, userID int64) ([]*models.ContentPillar, error) {
	if userID == 0 {
		err := errors.New("user is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	s.mu.RLock()
	pillars, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return pillars, nil
	}
	return s.load(ctx, userID)
}

// Check accepts zero as "no pillar".
func (s *pillarService) Check(ctx context.Context, userID, pillarID int64) error {
	if pillarID == 0 {
		return nil
	}
	owns, err := s.store.OwnsPillar(ctx, userID, pillarID)
	if err != nil {
		return fmt.Errorf("error checking pillar: %w", err)
	}
	if !owns {
		return invalid("pillar_id", "content pillar %d doesn't exist", pillarID)
	}
	return nil
}

// RefreshAll reloads every user that has been served at least once.
func (s *pillarService) RefreshAll(ctx context.Context) error {
	s.mu.RLock()
	users := make([]int64, 0, len(s.cache))
	for id := range s.cache {
		users = append(users, id)
	}
	s.mu.RUnlock()

	var errs []error
	for _, id := range users {
		if _, err := s.load(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("user %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

func (s *pillarService) load(ctx context.Context, userID int64) ([]*models.ContentPillar, error) {
	pillars, err := s.store.ListContentPillars(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pillars == nil {
		pillars = []*models.ContentPillar{}
	}

	s.mu.Lock()
	s.cache[userID] = pillars
	s.mu.Unlock()
	return pillars, nil
}
