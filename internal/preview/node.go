package preview

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/maheshrc27/postplanner/internal/models"
)

// Node is one element of a preview tree.
type Node struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

// Attr returns the attribute or "".
func (n Node) Attr(key string) string {
	return n.Attrs[key]
}

// Find returns the first node of kind in a depth-first walk.
func (n Node) Find(kind string) (Node, bool) {
	if n.Kind == kind {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(kind); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindAll collects every node of kind.
func (n Node) FindAll(kind string) []Node {
	var out []Node
	if n.Kind == kind {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(kind)...)
	}
	return out
}

func frame(layout string, attrs map[string]string, children ...Node) Node {
	a := map[string]string{"layout": layout}
	for k, v := range attrs {
		a[k] = v
	}
	return Node{Kind: "frame", Attrs: a, Children: children}
}

func text(kind, s string) Node {
	return Node{Kind: kind, Text: s}
}

func header(a Author, subtitle string) Node {
	name := a.Name
	if name == "" {
		name = "Your Brand"
	}
	attrs := map[string]string{}
	if a.Handle != "" {
		attrs["handle"] = a.Handle
	}
	if a.AvatarURL != "" {
		attrs["avatar"] = a.AvatarURL
	}
	if subtitle != "" {
		attrs["subtitle"] = subtitle
	}
	return Node{Kind: "header", Text: name, Attrs: attrs}
}

// media lays out the draft's media for the given aspect ratio. Carousels get
// one child per item and a position indicator.
func media(in Input, aspect string, limit int) Node {
	kind := in.MediaKind
	if kind == "" {
		kind = inferKind(in.Media)
	}
	items := in.Media
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	attrs := map[string]string{
		"aspect": aspect,
		"kind":   kind,
		"count":  strconv.Itoa(len(items)),
	}
	if len(items) == 0 {
		return Node{Kind: "media", Text: "No media selected", Attrs: placeholder(attrs)}
	}

	children := make([]Node, 0, len(items))
	for i, ref := range items {
		children = append(children, Node{Kind: "item", Text: ref, Attrs: map[string]string{"index": strconv.Itoa(i + 1)}})
	}
	if kind == models.MediaKindCarousel && len(items) > 1 {
		children = append(children, Node{Kind: "dots", Text: strings.Repeat("•", len(items)), Attrs: map[string]string{"active": "1"}})
	}
	return Node{Kind: "media", Attrs: attrs, Children: children}
}

func placeholder(attrs map[string]string) map[string]string {
	attrs["placeholder"] = "true"
	return attrs
}

func inferKind(refs []string) string {
	switch {
	case len(refs) > 1:
		return models.MediaKindCarousel
	case len(refs) == 1 && looksLikeVideo(refs[0]):
		return models.MediaKindVideo
	default:
		return models.MediaKindImage
	}
}

func looksLikeVideo(ref string) bool {
	lower := strings.ToLower(ref)
	for _, ext := range []string{".mp4", ".mov", ".webm", ".m4v"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// caption truncates to limit runes and marks the cut with a "more" label.
func caption(s string, limit int, more string) Node {
	s = strings.TrimSpace(s)
	if s == "" {
		return Node{Kind: "caption", Attrs: map[string]string{"placeholder": "true"}, Text: "Write a caption…"}
	}
	body, cut := truncate(s, limit)
	n := Node{Kind: "caption", Text: body}
	if cut {
		n.Attrs = map[string]string{"truncated": "true", "more": more}
	}
	return n
}

func truncate(s string, limit int) (string, bool) {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:limit]), " ") + "…", true
}

func actions(labels ...string) Node {
	children := make([]Node, 0, len(labels))
	for _, l := range labels {
		children = append(children, text("action", l))
	}
	return Node{Kind: "actions", Children: children}
}

func badge(s string) Node {
	return text("badge", s)
}

// firstLine splits a caption into a headline and the remaining body.
func firstLine(s string) (string, string) {
	s = strings.TrimSpace(s)
	head, rest, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(head), strings.TrimSpace(rest)
}
