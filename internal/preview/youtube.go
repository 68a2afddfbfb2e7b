package preview

import (
	"github.com/maheshrc27/postplanner/internal/catalog"
)

const (
	youtubeTitleLimit     = 100
	youtubeCommunityLimit = 300
	youtubeCommunityMax   = 10
)

func renderYouTube(in Input) Node {
	if in.Placement == catalog.PlacementPost {
		return frame("card", map[string]string{"channel": string(catalog.YouTube)},
			header(in.Author, "just now"),
			caption(in.Caption, youtubeCommunityLimit, "Read more"),
			media(in, "1:1", youtubeCommunityMax),
			actions("Like", "Dislike", "Comment"),
		)
	}

	// Shorts show the caption as the video title.
	title, _ := truncate(in.Caption, youtubeTitleLimit)
	return frame("vertical", map[string]string{"channel": string(catalog.YouTube)},
		media(in, "9:16", 1),
		Node{Kind: "overlay", Children: []Node{
			text("title", title),
			header(in.Author, ""),
		}},
		badge("Shorts"),
		actions("Like", "Dislike", "Comment", "Share", "Remix"),
	)
}
