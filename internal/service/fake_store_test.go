package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/maheshrc27/postplanner/internal/models"
)

// memStore is an in-memory PostStore. Channels listed in fail reject their
// create call; delay holds every create until it elapses or ctx is done.
// With barrier set, creates block until that many have started.
type memStore struct {
	mu      sync.Mutex
	nextID  int64
	posts   map[int64]*models.ScheduledPost
	fail    map[string]error
	delay   time.Duration
	listErr error
	delErr  error

	creates int
	deletes []int64
	lists   int
	started chan struct{}

	barrier int
	release chan struct{}
}

func newMemStore() *memStore {
	return &memStore{
		posts:   make(map[int64]*models.ScheduledPost),
		fail:    make(map[string]error),
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (m *memStore) ListPosts(_ context.Context, userID int64) ([]*models.ScheduledPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.ScheduledPost
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.posts[id]; ok && p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) CreatePost(ctx context.Context, post *models.ScheduledPost) (*models.ScheduledPost, error) {
	m.mu.Lock()
	m.creates++
	failErr := m.fail[post.Channel]
	delay := m.delay
	gated := m.barrier > 0
	if gated && m.creates == m.barrier {
		close(m.release)
	}
	m.mu.Unlock()

	m.started <- struct{}{}

	if gated {
		select {
		case <-m.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if failErr != nil {
		return nil, failErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *post
	stored.ID = m.nextID
	m.posts[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memStore) DeletePost(ctx context.Context, userID, postID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, postID)
	if m.delErr != nil {
		return m.delErr
	}
	if p, ok := m.posts[postID]; ok && p.UserID == userID {
		delete(m.posts, postID)
	}
	return nil
}

func (m *memStore) GetPost(_ context.Context, id int64) (*models.ScheduledPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) OwnsPost(_ context.Context, userID, postID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	return ok && p.UserID == userID, nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts)
}

func (m *memStore) calls() (creates int, lists int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates, m.lists
}

type recordingDue struct {
	mu    sync.Mutex
	posts []*models.ScheduledPost
	err   error
}

func (r *recordingDue) ScheduleDue(ctx context.Context, post *models.ScheduledPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	r.posts = append(r.posts, post)
	return r.err
}

var errChannelDown = errors.New("channel unavailable")

var fixedToday = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedToday }
