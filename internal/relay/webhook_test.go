package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayPostsNotice(t *testing.T) {
	var got DueNotice
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewWebhookClient(srv.URL, srv.Client())
	err := c.Relay(context.Background(), DueNotice{PostID: 4, Channel: "X", Placement: "Tweet", MediaRefs: []string{"a.jpg"}})
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.PostID)
	assert.Equal(t, "Tweet", got.Placement)
	assert.Equal(t, []string{"a.jpg"}, got.MediaRefs)
}

func TestRelayReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookClient(srv.URL, srv.Client()).Relay(context.Background(), DueNotice{PostID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRelayBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewWebhookClient(srv.URL, srv.Client())
	for i := 0; i < 3; i++ {
		assert.Error(t, c.Relay(context.Background(), DueNotice{PostID: int64(i)}))
	}

	err := c.Relay(context.Background(), DueNotice{PostID: 9})
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, "open", c.State())
}

func TestRelayWithoutURL(t *testing.T) {
	err := NewWebhookClient("", nil).Relay(context.Background(), DueNotice{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
