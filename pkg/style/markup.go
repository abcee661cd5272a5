package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var tagPattern = regexp.MustCompile(`\[(/?)([a-z_]+)\]`)

type tagRule struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// MarkupParser renders text containing [tag]...[/tag] markup
type MarkupParser struct {
	rules map[string]tagRule
	plain bool
}

// NewMarkupParser creates a parser for the known tags. A plain parser
// removes the tags instead of styling their content.
func NewMarkupParser(plain bool) *MarkupParser {
	p := &MarkupParser{plain: plain, rules: make(map[string]tagRule, len(roles))}
	for _, tag := range Tags() {
		s, _ := Style(tag)
		p.rules[tag] = tagRule{
			pattern: regexp.MustCompile(`\[` + tag + `\](.*?)\[/` + tag + `\]`),
			style:   s,
		}
	}
	return p
}

// Render returns text with its markup styled, or stripped for a plain parser
func (p *MarkupParser) Render(text string) string {
	if p.plain {
		return p.strip(text)
	}

	// Nested tags need one pass per level
	for {
		before := text
		for _, tag := range Tags() {
			rule := p.rules[tag]
			text = rule.pattern.ReplaceAllStringFunc(text, func(match string) string {
				return rule.style.Render(rule.pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == before {
			return text
		}
	}
}

// strip removes known tags and keeps unknown bracketed text as is
func (p *MarkupParser) strip(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		if _, known := p.rules[tagPattern.FindStringSubmatch(match)[2]]; known {
			return ""
		}
		return match
	})
}
