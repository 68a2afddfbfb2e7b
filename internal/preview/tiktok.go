package preview

import (
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/models"
)

const (
	tiktokCaptionLimit = 150
	tiktokPhotoMax     = 35
)

// renderTikTok always uses the vertical full-bleed layout. Image drafts are
// shown in photo mode.
func renderTikTok(in Input) Node {
	limit := 1
	mode := "video"
	if in.MediaKind != models.MediaKindVideo && len(in.Media) > 0 && !looksLikeVideo(in.Media[0]) {
		limit = tiktokPhotoMax
		mode = "photo"
		if len(in.Media) > 1 {
			in.MediaKind = models.MediaKindCarousel
		}
	}

	return frame("vertical", map[string]string{"channel": string(catalog.TikTok), "mode": mode},
		media(in, "9:16", limit),
		Node{Kind: "overlay", Children: []Node{
			header(in.Author, ""),
			caption(in.Caption, tiktokCaptionLimit, "more"),
			badge("♫ original sound"),
		}},
		actions("Like", "Comment", "Favorite", "Share"),
	)
}
