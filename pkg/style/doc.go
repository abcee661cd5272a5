// Package style holds the lipgloss palette and the markup used for
// terminal output.
//
// Text is written with tags such as [path]/some/dir[/path] and rendered by
// a MarkupParser, either styled or, for plain output, with the tags removed.
package style
