// Package types defines the core data types shared throughout vitex.
// This includes the template registry entry with its two sourcing modes,
// the storage roots, resolved content directories, substitution values
// and the filesystem interface the template pipeline operates on.
package types
