package transfer

import (
	"github.com/maheshrc27/postplanner/internal/calendar"
	"github.com/maheshrc27/postplanner/internal/models"
	"github.com/maheshrc27/postplanner/internal/preview"
)

type ChannelInfo struct {
	Channel    string            `json:"channel"`
	Placements []string          `json:"placements"`
	Labels     map[string]string `json:"labels"`
}

type PlacementsResponse struct {
	Channels   []string `json:"channels"`
	Placements []string `json:"placements"`
}

type CalendarResponse struct {
	calendar.Month
	Today string `json:"today"`
}

// ScheduleRequest mirrors the scheduling dialog form.
type ScheduleRequest struct {
	Channels      []string `json:"channels"`
	Placement     string   `json:"placement"`
	MediaRefs     []string `json:"media_refs"`
	MediaKind     string   `json:"media_kind"`
	Caption       string   `json:"caption"`
	ScheduledDate string   `json:"scheduled_date"`
	ScheduledTime string   `json:"scheduled_time"`
	PillarID      int64    `json:"pillar_id"`
	AsDraft       bool     `json:"as_draft"`
}

type ChannelOutcome struct {
	Channel     string `json:"channel"`
	Placement   string `json:"placement"`
	PostID      int64  `json:"post_id,omitempty"`
	Error       string `json:"error,omitempty"`
	RolledBack  bool   `json:"rolled_back,omitempty"`
	RollbackErr string `json:"rollback_error,omitempty"`
}

type ScheduleFailure struct {
	Error    string           `json:"error"`
	BatchID  string           `json:"batch_id"`
	Outcomes []ChannelOutcome `json:"outcomes"`
}

type ScheduleResponse struct {
	BatchID string                  `json:"batch_id"`
	Created []*models.ScheduledPost `json:"created"`
	Posts   []*models.ScheduledPost `json:"posts"`
	Stale   bool                    `json:"stale,omitempty"`
}

type PreviewRequest struct {
	Channels  []string       `json:"channels"`
	Placement string         `json:"placement"`
	Caption   string         `json:"caption"`
	Media     []string       `json:"media"`
	MediaKind string         `json:"media_kind"`
	Author    preview.Author `json:"author"`
}

type PreviewResponse struct {
	Previews []preview.Node `json:"previews"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
