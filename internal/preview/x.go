package preview

import (
	"strconv"
	"unicode/utf8"

	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/models"
)

const (
	tweetLimit    = 280
	tweetMediaMax = 4
)

func renderX(in Input) Node {
	remaining := tweetLimit - utf8.RuneCountInString(in.Caption)
	counter := Node{Kind: "counter", Text: strconv.Itoa(remaining)}
	if remaining < 0 {
		counter.Attrs = map[string]string{"over_limit": "true"}
	}

	body := Node{Kind: "caption", Text: in.Caption}
	if in.Caption == "" {
		body = caption("", 0, "")
	}

	grid := media(in, xAspect(in), tweetMediaMax)
	grid.Attrs["grid"] = xGrid(len(in.Media))

	return frame("card", map[string]string{"channel": string(catalog.X)},
		header(in.Author, "· now"),
		body,
		grid,
		counter,
		actions("Reply", "Repost", "Like", "Views", "Share"),
	)
}

func xAspect(in Input) string {
	switch {
	case in.MediaKind == models.MediaKindVideo:
		return "16:9"
	case len(in.Media) > 1:
		return "grid"
	default:
		return "original"
	}
}

func xGrid(n int) string {
	switch {
	case n <= 1:
		return "single"
	case n == 2:
		return "split"
	case n == 3:
		return "triple"
	default:
		return "quad"
	}
}
