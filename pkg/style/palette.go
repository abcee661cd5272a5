package style

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// role describes how one markup tag is drawn. Colors adapt to light and
// dark terminal backgrounds.
type role struct {
	color  *lipgloss.AdaptiveColor
	bold   bool
	italic bool
}

func adaptive(light, dark string) *lipgloss.AdaptiveColor {
	return &lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var roles = map[string]role{
	"title":   {color: adaptive("#212529", "#F8F9FA"), bold: true},
	"success": {color: adaptive("#2E7D32", "#66BB6A"), bold: true},
	"error":   {color: adaptive("#C62828", "#EF5350"), bold: true},
	"warning": {color: adaptive("#B26A00", "#FFB74D"), bold: true},
	"info":    {color: adaptive("#00838F", "#4DD0E1")},
	"code":    {color: adaptive("#1565C0", "#64B5F6")},
	"path":    {color: adaptive("#5F6B76", "#A0A8B0"), italic: true},
	"muted":   {color: adaptive("#6C757D", "#ADB5BD")},
	"bold":    {bold: true},

	// sourcing modes
	"git":   {color: adaptive("#F05033", "#FF7A5C"), bold: true},
	"local": {color: adaptive("#7E57C2", "#B39DDB"), bold: true},
}

func (r role) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(r.bold).Italic(r.italic)
	if r.color != nil {
		s = s.Foreground(*r.color)
	}
	return s
}

// Tags returns the markup tag names in alphabetical order
func Tags() []string {
	tags := make([]string, 0, len(roles))
	for tag := range roles {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Style returns the style drawn for tag
func Style(tag string) (lipgloss.Style, bool) {
	r, ok := roles[tag]
	if !ok {
		return lipgloss.Style{}, false
	}
	return r.style(), true
}

// Indent pads every line of s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
