package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maheshrc27/postplanner/internal/calendar"
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/models"
)

// Draft is the unsaved state of one scheduling action.
type Draft struct {
	Channels  []catalog.Channel `json:"channels"`
	Placement catalog.Placement `json:"placement"`
	MediaRefs []string          `json:"media_refs"`
	MediaKind string            `json:"media_kind"`
	Caption   string            `json:"caption"`
	Date      string            `json:"scheduled_date"` // YYYY-MM-DD
	Time      string            `json:"scheduled_time"` // HH:MM
	PillarID  int64             `json:"pillar_id,omitempty"`
	AsDraft   bool              `json:"as_draft,omitempty"`
}

// Snapshot returns a copy that shares no slices with d.
func (d Draft) Snapshot() Draft {
	out := d
	if d.Channels != nil {
		out.Channels = append([]catalog.Channel(nil), d.Channels...)
	}
	if d.MediaRefs != nil {
		out.MediaRefs = append([]string(nil), d.MediaRefs...)
	}
	return out
}

// ValidationError is a local rejection of a draft; no store call was made.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a local draft rejection.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ResolvePlacements returns the placements shared by channels. A non-empty
// selection with nothing in common is a ValidationError on the placement
// field wrapping catalog.ErrNoCommonPlacement.
func ResolvePlacements(channels []catalog.Channel) ([]catalog.Placement, error) {
	common, err := catalog.ResolvePlacements(channels)
	if err != nil {
		return common, &ValidationError{Field: "placement", Reason: "selected channels share no placement", Err: err}
	}
	return common, nil
}

// validateDraft checks everything that can be decided without I/O.
func validateDraft(d Draft, today time.Time) error {
	if len(d.Channels) == 0 {
		return invalid("channels", "select at least one channel")
	}
	seen := make(map[catalog.Channel]bool, len(d.Channels))
	for _, ch := range d.Channels {
		if _, ok := catalog.Definition(ch); !ok {
			return invalid("channels", "unknown channel %q", ch)
		}
		if seen[ch] {
			return invalid("channels", "%s selected more than once", ch)
		}
		seen[ch] = true
	}

	common, err := ResolvePlacements(d.Channels)
	if err != nil {
		return err
	}
	if d.Placement == "" {
		return invalid("placement", "choose a placement")
	}
	if !catalog.ContainsPlacement(common, d.Placement) {
		return invalid("placement", "%s is not available on every selected channel", d.Placement)
	}

	if strings.TrimSpace(d.Date) == "" {
		return invalid("scheduled_date", "pick a date")
	}
	if _, err := time.Parse(models.DateLayout, d.Date); err != nil {
		return invalid("scheduled_date", "%q is not a YYYY-MM-DD date", d.Date)
	}
	if calendar.IsBeforeToday(d.Date, today) {
		return invalid("scheduled_date", "%s is in the past", d.Date)
	}

	if strings.TrimSpace(d.Time) == "" {
		return invalid("scheduled_time", "pick a time")
	}
	if t, err := time.Parse(models.TimeLayout, d.Time); err != nil || t.Format(models.TimeLayout) != d.Time {
		return invalid("scheduled_time", "%q is not an HH:MM time", d.Time)
	}

	return validateMedia(d.MediaRefs, d.MediaKind)
}

func validateMedia(refs []string, kind string) error {
	for i, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			return invalid("media_refs", "media item %d is empty", i+1)
		}
	}
	if len(refs) == 0 {
		if kind != "" {
			return invalid("media_kind", "%s needs at least one media item", kind)
		}
		return nil
	}
	switch kind {
	case "":
		return nil
	case models.MediaKindImage, models.MediaKindVideo:
		if len(refs) != 1 {
			return invalid("media_kind", "%s takes exactly one media item, got %d", kind, len(refs))
		}
	case models.MediaKindCarousel:
		if len(refs) < 2 {
			return invalid("media_kind", "carousel needs at least two media items")
		}
	default:
		return invalid("media_kind", "unknown media kind %q", kind)
	}
	return nil
}

// mediaKindOf fills in the kind when the caller left it blank.
func mediaKindOf(refs []string, kind string) string {
	if kind != "" || len(refs) == 0 {
		return kind
	}
	if len(refs) > 1 {
		return models.MediaKindCarousel
	}
	return models.MediaKindImage
}
