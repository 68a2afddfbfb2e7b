package models

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type ScheduledPost struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	BatchID       string    `db:"batch_id" json:"batch_id"`
	Channel       string    `db:"channel" json:"channel"`
	Placement     string    `db:"placement" json:"placement"` // channel label, e.g. "Feed"
	Caption       string    `db:"caption" json:"caption"`
	MediaKind     string    `db:"media_kind" json:"media_kind"`
	MediaRefs     []string  `json:"media_refs"`
	ScheduledDate string    `db:"scheduled_date" json:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime string    `db:"scheduled_time" json:"scheduled_time"` // HH:MM
	Status        string    `db:"status" json:"status"`
	PillarID      int64     `db:"pillar_id" json:"pillar_id,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// PostMedia orders a post's media references.
type PostMedia struct {
	PostID       int64  `db:"post_id"`
	MediaRef     string `db:"media_ref"`
	DisplayOrder int    `db:"display_order"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

const (
	MediaKindImage    = "image"
	MediaKindCarousel = "carousel"
	MediaKindVideo    = "video"
)

func ValidMediaKind(kind string) bool {
	switch kind {
	case MediaKindImage, MediaKindCarousel, MediaKindVideo:
		return true
	}
	return false
}

// ScheduledAt combines the calendar date and wall-clock time in loc.
func (p *ScheduledPost) ScheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, p.ScheduledDate+" "+p.ScheduledTime, loc)
}
