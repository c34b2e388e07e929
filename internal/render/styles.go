package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/pokedex-service/internal/app/pokedex"
)

type styles struct {
	enabled bool
	name    lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	badge   lipgloss.Style
	box     lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		label:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		badge:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "208"}),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
			Padding(0, 1),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s styles) listLine(item pokedex.ListItem) string {
	line := s.render(s.name, item.DisplayName)
	if item.Loaded {
		line += " " + s.render(s.muted, "(loaded)")
	}
	return line
}

func (s styles) card(c pokedex.Card) string {
	var b strings.Builder
	title := fmt.Sprintf("%s #%d", s.render(s.name, c.DisplayName), c.ID)
	if c.Big {
		title += "  " + s.render(s.badge, "Wow, that's big!")
	}
	b.WriteString(title)

	rows := [][2]string{
		{"Height", c.Height},
		{"Weight", c.Weight},
		{"Types", c.Types},
	}
	if c.SpriteURL != "" {
		rows = append(rows, [2]string{"Sprite", c.SpriteURL})
	}
	if c.ArtURL != "" {
		rows = append(rows, [2]string{"Artwork", c.ArtURL})
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s %s", s.render(s.label, fmt.Sprintf("%-8s", row[0]+":")), row[1])
	}

	if !s.enabled {
		return b.String()
	}
	return s.box.Render(b.String())
}
