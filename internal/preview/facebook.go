package preview

import (
	"strconv"

	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/models"
)

const (
	facebookCaptionLimit = 480
	facebookReelCaption  = 100
	facebookGridMax      = 5
)

func renderFacebook(in Input) Node {
	switch in.Placement {
	case catalog.PlacementStory:
		return storyFrame(in, catalog.Facebook, "Reply")
	case catalog.PlacementReel:
		return frame("vertical", map[string]string{"channel": string(catalog.Facebook)},
			media(in, "9:16", 1),
			Node{Kind: "overlay", Children: []Node{
				header(in.Author, ""),
				caption(in.Caption, facebookReelCaption, "See more"),
			}},
			actions("Like", "Comment", "Share"),
		)
	default:
		// Caption sits above the media on Facebook.
		body := media(in, facebookAspect(in), facebookGridMax)
		if extra := len(in.Media) - facebookGridMax; extra > 0 {
			body.Attrs["overflow"] = "+" + strconv.Itoa(extra)
		}
		return frame("card", map[string]string{"channel": string(catalog.Facebook)},
			header(in.Author, "Just now · Public"),
			caption(in.Caption, facebookCaptionLimit, "See more"),
			body,
			actions("Like", "Comment", "Share"),
		)
	}
}

func facebookAspect(in Input) string {
	switch {
	case in.MediaKind == models.MediaKindVideo:
		return "16:9"
	case len(in.Media) > 1:
		return "grid"
	default:
		return "1.91:1"
	}
}
