// Package filesystem adapts afero filesystems to the types.FS interface.
//
// NewOS is used by the CLI, NewMemory by tests that run the template
// pipeline without touching the disk.
package filesystem
