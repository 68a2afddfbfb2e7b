package preview

import (
	"strconv"
	"strings"

	"github.com/maheshrc27/postplanner/internal/catalog"
)

const (
	linkedInCaptionLimit = 210
	linkedInTitleLimit   = 150
	linkedInExcerptLimit = 300
	linkedInMediaMax     = 9
	wordsPerMinute       = 200
)

func renderLinkedIn(in Input) Node {
	if in.Placement == catalog.PlacementArticle {
		return linkedInArticle(in)
	}
	return frame("card", map[string]string{"channel": string(catalog.LinkedIn)},
		header(in.Author, "Now"),
		caption(in.Caption, linkedInCaptionLimit, "…see more"),
		media(in, "1.91:1", linkedInMediaMax),
		actions("Like", "Comment", "Repost", "Send"),
	)
}

// linkedInArticle uses the first caption line as the headline and the first
// media item as the cover image.
func linkedInArticle(in Input) Node {
	title, body := firstLine(in.Caption)
	if title == "" {
		title = "Untitled article"
	}
	title, _ = truncate(title, linkedInTitleLimit)

	cover := in
	if len(cover.Media) > 1 {
		cover.Media = cover.Media[:1]
	}

	excerpt := caption(body, linkedInExcerptLimit, "Read more")
	return frame("article", map[string]string{"channel": string(catalog.LinkedIn)},
		media(cover, "1.91:1", 1),
		badge("Article"),
		text("title", title),
		header(in.Author, readTime(in.Caption)),
		excerpt,
	)
}

func readTime(s string) string {
	words := len(strings.Fields(s))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return strconv.Itoa(minutes) + " min read"
}
