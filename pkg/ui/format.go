package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is the output format of command results
type Format int

const (
	// FormatAuto is FormatTerminal on a color terminal and FormatText otherwise
	FormatAuto Format = iota
	// FormatTerminal is styled text
	FormatTerminal
	// FormatText is text without escape sequences
	FormatText
	// FormatJSON is indented JSON of the result struct
	FormatJSON
	// FormatYAML is YAML of the result struct
	FormatYAML
)

// formatNames lists the accepted names of each format, canonical name first
var formatNames = []struct {
	format Format
	names  []string
}{
	{FormatAuto, []string{"auto", ""}},
	{FormatTerminal, []string{"term", "terminal"}},
	{FormatText, []string{"text", "plain"}},
	{FormatJSON, []string{"json"}},
	{FormatYAML, []string{"yaml", "yml"}},
}

// String returns the canonical name of the format
func (f Format) String() string {
	for _, entry := range formatNames {
		if entry.format == f {
			return entry.names[0]
		}
	}
	return "unknown"
}

// Structured reports whether the format encodes the result struct
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// FormatNames returns the canonical format names
func FormatNames() []string {
	names := make([]string, len(formatNames))
	for i, entry := range formatNames {
		names[i] = entry.names[0]
	}
	return names
}

// ParseFormat parses a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, entry := range formatNames {
		for _, candidate := range entry.names {
			if name == candidate {
				return entry.format, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s\nHINT: use one of %s", s, strings.Join(FormatNames(), ", ")).
		WithDetail("format", s)
}

// DetectFormat returns FormatTerminal when w is a terminal with color
// support and NO_COLOR is unset, FormatText otherwise
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	f, ok := w.(*os.File)
	if !ok || f == nil {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(f).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Resolve replaces FormatAuto with the format detected for w
func (f Format) Resolve(w io.Writer) Format {
	if f == FormatAuto {
		return DetectFormat(w)
	}
	return f
}
