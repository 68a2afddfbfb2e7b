// Package preview turns a draft post into a channel-accurate visual tree.
//
// Every channel registers one Renderer. Render looks the channel up in the
// registry and falls back to the empty-state renderer when nothing matches,
// so adding a channel never touches the other renderers.
package preview

import (
	"sync"

	"github.com/maheshrc27/postplanner/internal/catalog"
)

type Author struct {
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatar_url"`
}

// Input is the shape every renderer accepts.
type Input struct {
	Channel   catalog.Channel   `json:"channel"`
	Placement catalog.Placement `json:"placement"`
	Caption   string            `json:"caption"`
	Media     []string          `json:"media"`
	MediaKind string            `json:"media_kind"`
	Author    Author            `json:"author"`
}

type Renderer func(in Input) Node

var (
	mu       sync.RWMutex
	registry = map[catalog.Channel]Renderer{
		"":                emptyState,
		catalog.Instagram: renderInstagram,
		catalog.Facebook:  renderFacebook,
		catalog.LinkedIn:  renderLinkedIn,
		catalog.TikTok:    renderTikTok,
		catalog.YouTube:   renderYouTube,
		catalog.X:         renderX,
	}
)

// Register installs or replaces the renderer for ch.
func Register(ch catalog.Channel, r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	registry[ch] = r
}

func lookup(ch catalog.Channel) Renderer {
	mu.RLock()
	defer mu.RUnlock()
	if r, ok := registry[ch]; ok {
		return r
	}
	return registry[""]
}

// Render never mutates in; the media slice is copied before dispatch.
func Render(in Input) Node {
	media := make([]string, len(in.Media))
	copy(media, in.Media)
	in.Media = media
	return lookup(in.Channel)(in)
}

// RenderAll previews the same draft on each channel, in order.
func RenderAll(channels []catalog.Channel, in Input) []Node {
	out := make([]Node, 0, len(channels))
	for _, ch := range channels {
		in.Channel = ch
		out = append(out, Render(in))
	}
	return out
}

func emptyState(Input) Node {
	return frame("empty", nil,
		text("hint", "Select a channel to see a preview"),
	)
}
