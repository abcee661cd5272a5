// Package ui renders command results.
//
// Results are written as styled terminal text, plain text, JSON or YAML.
// FormatAuto picks styled or plain text depending on whether the output is
// a color-capable terminal.
package ui
