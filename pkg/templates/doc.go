// Package templates implements the template pipeline of vitex: resolving
// a registry entry to its content directory, validating that directory,
// and instantiating a new project from it.
//
// # Resolution
//
// Local templates resolve to <custom root>/<id>. Git templates resolve to
// <cloned root>/<id>/<path prefix>, where <cloned root>/<id> is the clone.
// Resolution never touches the filesystem; missing directories are
// reported by validation.
//
// # Validation
//
// Checks run in order and the first failure is returned:
//
//  1. ids are unique across the registry
//  2. git: the clone exists; local: the content directory exists
//  3. git: the path prefix leads to a directory
//  4. a marker file (preamble/config.tex, else main.tex) exists
//  5. the marker file holds every placeholder token
//
// # Instantiation
//
// The content directory is copied into <destination>/<sanitized title>,
// which must not exist yet, and the placeholder tokens in the copied
// marker file are replaced by the title, subtitle and author. Partially
// copied destinations are left in place on failure.
//
// The package never shells out and never reads the environment; every
// input arrives as a parameter.
package templates
