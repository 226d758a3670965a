// Package fsops performs the two filesystem effects project generation
// needs: making sure a directory exists and writing a file's full contents.
//
// Every mutation goes through a Materializer, which wraps an afero.Fs so the
// same code runs against the real disk and against an in-memory filesystem
// in tests.
//
// Key properties:
//   - EnsureDirectory is idempotent
//   - WriteFile replaces contents atomically using temp file + rename
//   - WriteFile never creates missing parents
//   - every failure is a *FilesystemError and nothing is retried
package fsops
