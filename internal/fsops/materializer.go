package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644

	tempPattern = ".pyskel-tmp-*"
)

// Materializer creates directories and writes files on an afero.Fs.
type Materializer struct {
	fs       afero.Fs
	observer Observer
}

// New creates a Materializer over fs. A nil observer discards events.
func New(fs afero.Fs, observer Observer) *Materializer {
	if observer == nil {
		observer = Discard
	}
	return &Materializer{fs: fs, observer: observer}
}

// NewOS creates a Materializer over the real filesystem.
func NewOS(observer Observer) *Materializer {
	return New(afero.NewOsFs(), observer)
}

// EnsureDirectory creates path and any missing ancestors. An existing
// directory is left untouched.
func (m *Materializer) EnsureDirectory(path string) error {
	if err := m.checkAncestors(path); err != nil {
		return &FilesystemError{Op: "mkdir", Path: path, Err: err}
	}
	if err := m.fs.MkdirAll(path, dirPerm); err != nil {
		return &FilesystemError{Op: "mkdir", Path: path, Err: err}
	}

	m.observer.Observe(Event{Kind: DirectoryEnsured, Path: path})
	return nil
}

// checkAncestors walks from path up to the filesystem root and fails on the
// first component that exists but is not a directory. Not every afero.Fs
// reports this itself. Stat errors only mean "keep looking"; MkdirAll
// surfaces the real cause.
func (m *Materializer) checkAncestors(path string) error {
	for p := filepath.Clean(path); ; {
		if info, err := m.fs.Stat(p); err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s: %w", p, ErrNotDirectory)
			}
			return nil
		}

		parent := filepath.Dir(p)
		if parent == p {
			return nil
		}
		p = parent
	}
}

// WriteFile replaces the file at path with content. The parent directory
// must already exist. The data goes to a temp file in the same directory
// that is then renamed over path, so a reader sees either the old contents
// or the new ones.
func (m *Materializer) WriteFile(path, content string) error {
	if err := m.atomicWrite(path, []byte(content)); err != nil {
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}

	m.observer.Observe(Event{Kind: FileWritten, Path: path})
	return nil
}

func (m *Materializer) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	info, err := m.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrParentMissing
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	tmpFile, err := afero.TempFile(m.fs, dir, tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up the temp file unless the rename succeeded.
	committed := false
	defer func() {
		if !committed {
			_ = tmpFile.Close()
			_ = m.fs.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := m.fs.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := m.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	committed = true
	return nil
}
