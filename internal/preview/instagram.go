package preview

import (
	"strconv"

	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/models"
)

const (
	instagramCaptionLimit = 125
	instagramReelCaption  = 70
	instagramCarouselMax  = 10
)

func renderInstagram(in Input) Node {
	switch in.Placement {
	case catalog.PlacementStory:
		return storyFrame(in, catalog.Instagram, "Send message")
	case catalog.PlacementReel:
		return frame("vertical", map[string]string{"channel": string(catalog.Instagram)},
			media(in, "9:16", 1),
			Node{Kind: "overlay", Children: []Node{
				header(in.Author, ""),
				caption(in.Caption, instagramReelCaption, "more"),
				badge("Original audio"),
			}},
			actions("Like", "Comment", "Share", "More"),
		)
	default:
		aspect := "1:1"
		if in.MediaKind == models.MediaKindCarousel || len(in.Media) > 1 {
			aspect = "4:5"
		}
		return frame("card", map[string]string{"channel": string(catalog.Instagram)},
			header(in.Author, ""),
			media(in, aspect, instagramCarouselMax),
			actions("Like", "Comment", "Share", "Save"),
			caption(in.Caption, instagramCaptionLimit, "more"),
		)
	}
}

// storyFrame is the full-screen ephemeral layout shared by Instagram and
// Facebook stories. Each media item becomes one progress segment.
func storyFrame(in Input, ch catalog.Channel, reply string) Node {
	segments := len(in.Media)
	if segments == 0 {
		segments = 1
	}
	return frame("fullscreen", map[string]string{"channel": string(ch), "ephemeral": "true", "expires": "24h"},
		Node{Kind: "progress", Attrs: map[string]string{"segments": strconv.Itoa(segments)}},
		header(in.Author, "now"),
		media(in, "9:16", 0),
		text("reply", reply),
	)
}
