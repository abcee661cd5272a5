// Package testutil provides utilities for testing vitex components.
//
// Key components:
//   - TestEnvironment: storage roots, destination directory and filesystem
//     for one test, either in memory or in a temp directory
//   - TemplateFixture: declarative template setup (marker files, extra files)
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; it runs the template pipeline on an afero memory FS
//   - Use EnvIsolated when the code under test touches the OS directly
//     (config loading, the CLI)
//   - All test data should be defined inline, not in external files
package testutil
