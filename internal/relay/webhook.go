// Package relay hands due posts to the external automation webhook that
// performs the actual publishing.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var ErrNotConfigured = errors.New("automation webhook is not configured")

// DueNotice is the body posted to the webhook for one due post.
type DueNotice struct {
	PostID      int64     `json:"post_id"`
	UserID      int64     `json:"user_id"`
	BatchID     string    `json:"batch_id"`
	Channel     string    `json:"channel"`
	Placement   string    `json:"placement"`
	Caption     string    `json:"caption"`
	MediaKind   string    `json:"media_kind,omitempty"`
	MediaRefs   []string  `json:"media_refs"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

type Relayer interface {
	Relay(ctx context.Context, notice DueNotice) error
}

type WebhookClient struct {
	url     string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewWebhookClient trips after three consecutive failures, or when more than
// a tenth of at least twenty requests in a minute fail.
func NewWebhookClient(url string, client *http.Client) *WebhookClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	st := gobreaker.Settings{Name: "automation-webhook"}
	st.Interval = 60 * time.Second
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures >= 3 {
			return true
		}
		if counts.Requests < 20 {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) > 0.1
	}

	return &WebhookClient{
		url:     url,
		http:    client,
		breaker: gobreaker.NewCircuitBreaker(st),
	}
}

func (c *WebhookClient) State() string {
	return c.breaker.State().String()
}

func (c *WebhookClient) Relay(ctx context.Context, notice DueNotice) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.post(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("relay post %d: %w", notice.PostID, err)
	}
	return nil
}

func (c *WebhookClient) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook responded %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
