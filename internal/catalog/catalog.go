// Package catalog declares the distribution channels the planner knows about
// and the placement types each one accepts.
package catalog

import (
	"fmt"
	"strings"
)

type Channel string

const (
	Instagram Channel = "Instagram"
	Facebook  Channel = "Facebook"
	LinkedIn  Channel = "LinkedIn"
	TikTok    Channel = "TikTok"
	YouTube   Channel = "YouTube"
	X         Channel = "X"
)

// Placement is a channel-independent content slot.
type Placement string

const (
	PlacementPost    Placement = "Post"
	PlacementStory   Placement = "Story"
	PlacementReel    Placement = "Reel"
	PlacementArticle Placement = "Article"
)

type ChannelDefinition struct {
	Channel    Channel
	Placements []Placement
	Labels     map[Placement]string
}

var definitions = []ChannelDefinition{
	{
		Channel:    Instagram,
		Placements: []Placement{PlacementPost, PlacementStory, PlacementReel},
		Labels:     map[Placement]string{PlacementPost: "Feed"},
	},
	{
		Channel:    Facebook,
		Placements: []Placement{PlacementPost, PlacementStory, PlacementReel},
	},
	{
		Channel:    LinkedIn,
		Placements: []Placement{PlacementPost, PlacementArticle},
	},
	{
		Channel:    TikTok,
		Placements: []Placement{PlacementReel},
		Labels:     map[Placement]string{PlacementReel: "Video"},
	},
	{
		Channel:    YouTube,
		Placements: []Placement{PlacementReel, PlacementPost},
		Labels:     map[Placement]string{PlacementReel: "Short", PlacementPost: "Community Post"},
	},
	{
		Channel:    X,
		Placements: []Placement{PlacementPost},
		Labels:     map[Placement]string{PlacementPost: "Tweet"},
	},
}

var byChannel = func() map[Channel]ChannelDefinition {
	m := make(map[Channel]ChannelDefinition, len(definitions))
	for _, d := range definitions {
		m[d.Channel] = d
	}
	return m
}()

// Channels returns every known channel in catalog order.
func Channels() []Channel {
	out := make([]Channel, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, d.Channel)
	}
	return out
}

func Definition(ch Channel) (ChannelDefinition, bool) {
	d, ok := byChannel[ch]
	if !ok {
		return ChannelDefinition{}, false
	}
	labels := make(map[Placement]string, len(d.Labels))
	for k, v := range d.Labels {
		labels[k] = v
	}
	return ChannelDefinition{
		Channel:    d.Channel,
		Placements: SupportedPlacements(ch),
		Labels:     labels,
	}, true
}

// SupportedPlacements returns the placements of ch in declared order. Unknown
// channels support nothing.
func SupportedPlacements(ch Channel) []Placement {
	d, ok := byChannel[ch]
	if !ok {
		return nil
	}
	out := make([]Placement, len(d.Placements))
	copy(out, d.Placements)
	return out
}

func Supports(ch Channel, p Placement) bool {
	for _, candidate := range byChannel[ch].Placements {
		if candidate == p {
			return true
		}
	}
	return false
}

// LabelFor maps an abstract placement to the name ch uses for it.
func LabelFor(ch Channel, p Placement) string {
	if label, ok := byChannel[ch].Labels[p]; ok {
		return label
	}
	return string(p)
}

// IsValidLabel reports whether label is what ch calls placement p.
func IsValidLabel(ch Channel, p Placement, label string) bool {
	return Supports(ch, p) && LabelFor(ch, p) == label
}

// PlacementForLabel is the inverse of LabelFor.
func PlacementForLabel(ch Channel, label string) (Placement, bool) {
	for _, p := range byChannel[ch].Placements {
		if LabelFor(ch, p) == label {
			return p, true
		}
	}
	return "", false
}

func ParseChannel(s string) (Channel, error) {
	name := strings.TrimSpace(s)
	for _, d := range definitions {
		if strings.EqualFold(string(d.Channel), name) {
			return d.Channel, nil
		}
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

func ParsePlacement(s string) (Placement, error) {
	name := strings.TrimSpace(s)
	for _, p := range []Placement{PlacementPost, PlacementStory, PlacementReel, PlacementArticle} {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown placement %q", s)
}

func ParseChannels(names []string) ([]Channel, error) {
	out := make([]Channel, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		ch, err := ParseChannel(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}
