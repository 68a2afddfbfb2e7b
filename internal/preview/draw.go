package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	mediaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	badgeStyle   = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cardBorder   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	screenBorder = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
)

const minWidth = 24

// Draw renders a preview tree for a terminal of the given width.
func Draw(n Node, width int) string {
	if width < minWidth {
		width = minWidth
	}
	return draw(n, width)
}

func draw(n Node, width int) string {
	inner := width - 4
	switch n.Kind {
	case "frame":
		parts := drawChildren(n.Children, inner)
		border := cardBorder
		if l := n.Attr("layout"); l == "fullscreen" || l == "vertical" {
			border = screenBorder
		}
		return border.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	case "overlay":
		return lipgloss.JoinVertical(lipgloss.Left, drawChildren(n.Children, width)...)
	case "header":
		line := nameStyle.Render(n.Text)
		if h := n.Attr("handle"); h != "" {
			line += " " + subtleStyle.Render("@"+strings.TrimPrefix(h, "@"))
		}
		if s := n.Attr("subtitle"); s != "" {
			line += " " + subtleStyle.Render(s)
		}
		return line
	case "media":
		return drawMedia(n, width)
	case "caption":
		body := wordwrap.String(n.Text, width)
		if n.Attr("placeholder") == "true" {
			return subtleStyle.Render(body)
		}
		if more := n.Attr("more"); more != "" {
			body += " " + subtleStyle.Render(more)
		}
		return body
	case "title":
		return nameStyle.Render(wordwrap.String(n.Text, width))
	case "actions":
		labels := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			labels = append(labels, c.Text)
		}
		return subtleStyle.Render(strings.Join(labels, " · "))
	case "badge":
		return badgeStyle.Render(n.Text)
	case "progress":
		var segments int
		fmt.Sscanf(n.Attr("segments"), "%d", &segments)
		if segments < 1 {
			segments = 1
		}
		return strings.TrimSpace(strings.Repeat("━━━ ", segments))
	case "counter":
		if n.Attr("over_limit") == "true" {
			return overStyle.Render(n.Text)
		}
		return subtleStyle.Render(n.Text)
	default:
		return subtleStyle.Render(wordwrap.String(n.Text, width))
	}
}

func drawChildren(children []Node, width int) []string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		if s := draw(c, width); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

func drawMedia(n Node, width int) string {
	label := fmt.Sprintf("[%s %s]", n.Attr("kind"), n.Attr("aspect"))
	if n.Attr("placeholder") == "true" {
		return subtleStyle.Render(label + " " + n.Text)
	}
	lines := []string{mediaStyle.Render(label)}
	for _, c := range n.Children {
		switch c.Kind {
		case "item":
			ref := c.Text
			if limit := width - 6; limit > 0 && len(ref) > limit {
				ref = "…" + ref[len(ref)-limit:]
			}
			lines = append(lines, fmt.Sprintf(" %s. %s", c.Attr("index"), ref))
		case "dots":
			lines = append(lines, subtleStyle.Render(c.Text))
		}
	}
	if o := n.Attr("overflow"); o != "" {
		lines = append(lines, subtleStyle.Render(o+" more"))
	}
	return strings.Join(lines, "\n")
}
