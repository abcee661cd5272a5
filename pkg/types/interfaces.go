package types

import (
	"io/fs"
)

// FS is the filesystem the template pipeline reads templates from and
// writes projects to. Paths are absolute.
type FS interface {
	// Stat follows symlinks
	Stat(name string) (fs.FileInfo, error)

	// ReadFile fails when name is a directory
	ReadFile(name string) ([]byte, error)

	// WriteFile creates or truncates name with perm
	WriteFile(name string, data []byte, perm fs.FileMode) error

	MkdirAll(path string, perm fs.FileMode) error

	// ReadDir returns the entries sorted by name
	ReadDir(name string) ([]fs.DirEntry, error)

	// RemoveAll succeeds when path does not exist
	RemoveAll(path string) error
}
