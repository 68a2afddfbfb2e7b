package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/models"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *Draft)
		field string
	}{
		{"valid", func(d *Draft) {}, ""},
		{"no channels", func(d *Draft) { d.Channels = nil }, "channels"},
		{"unknown channel", func(d *Draft) { d.Channels = []catalog.Channel{"MySpace"} }, "channels"},
		{"duplicate channel", func(d *Draft) { d.Channels = []catalog.Channel{catalog.X, catalog.X} }, "channels"},
		{"missing placement", func(d *Draft) { d.Placement = "" }, "placement"},
		{"bad date", func(d *Draft) { d.Date = "12/03/2025" }, "scheduled_date"},
		{"past date", func(d *Draft) { d.Date = "2024-12-31" }, "scheduled_date"},
		{"missing time", func(d *Draft) { d.Time = "" }, "scheduled_time"},
		{"unpadded time", func(d *Draft) { d.Time = "9:30" }, "scheduled_time"},
		{"out of range time", func(d *Draft) { d.Time = "24:10" }, "scheduled_time"},
		{"blank media ref", func(d *Draft) { d.MediaRefs = []string{" "} }, "media_refs"},
		{"image with two refs", func(d *Draft) {
			d.MediaRefs = []string{"a.jpg", "b.jpg"}
			d.MediaKind = models.MediaKindImage
		}, "media_kind"},
		{"carousel with one ref", func(d *Draft) { d.MediaKind = models.MediaKindCarousel }, "media_kind"},
		{"kind without media", func(d *Draft) {
			d.MediaRefs = nil
			d.MediaKind = models.MediaKindVideo
		}, "media_kind"},
		{"unknown kind", func(d *Draft) { d.MediaKind = "hologram" }, "media_kind"},
		{"text only", func(d *Draft) { d.MediaRefs = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.edit(&d)

			err := validateDraft(d, fixedToday)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			if assert.ErrorAs(t, err, &ve) {
				assert.Equal(t, tt.field, ve.Field)
			}
		})
	}
}

func TestDraftSnapshotSharesNothing(t *testing.T) {
	d := validDraft()
	snap := d.Snapshot()

	d.Channels[0] = catalog.X
	d.MediaRefs[0] = "other.jpg"

	assert.Equal(t, catalog.Instagram, snap.Channels[0])
	assert.Equal(t, "https://media.example/a.jpg", snap.MediaRefs[0])
}

func TestMediaKindOf(t *testing.T) {
	assert.Equal(t, "", mediaKindOf(nil, ""))
	assert.Equal(t, models.MediaKindImage, mediaKindOf([]string{"a"}, ""))
	assert.Equal(t, models.MediaKindCarousel, mediaKindOf([]string{"a", "b"}, ""))
	assert.Equal(t, models.MediaKindVideo, mediaKindOf([]string{"a"}, models.MediaKindVideo))
}
