// Package store writes SPC files to a directory without exposing partially written files.
//
// WriteAtomic replaces a file through a uniquely named temporary file and a rename, so
// concurrent writers of the same name never interleave; the last rename wins.
// CreateExclusive publishes the temporary file with a hard link, which fails instead of
// overwriting when the name is taken.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arloliu/galspc/errs"
	"github.com/arloliu/galspc/internal/logging"
	"github.com/arloliu/galspc/internal/options"
)

// Extension is the only file extension the store accepts.
const Extension = ".spc"

const maxNameLen = 128

// Store writes files into one directory.
type Store struct {
	dir  string
	perm os.FileMode
	logf logging.Func
}

// Option represents a functional option for configuring a Store.
type Option = options.Option[*Store]

// WithPerm sets the permission bits of created files. The default is 0o644.
func WithPerm(perm os.FileMode) Option {
	return options.New(func(s *Store) error {
		if perm&^os.ModePerm != 0 {
			return fmt.Errorf("invalid file permission %v", perm)
		}
		s.perm = perm

		return nil
	})
}

// WithLogger sets the logger used for write diagnostics.
func WithLogger(logf logging.Func) Option {
	return options.NoError(func(s *Store) {
		s.logf = logf
	})
}

// New creates a Store writing into dir, which must be an existing directory.
func New(dir string, opts ...Option) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("store directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store directory %s is not a directory", dir)
	}

	s := &Store{dir: dir, perm: 0o644}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	s.logf = logging.Or(s.logf)

	return s, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the location of name inside the store after sanitizing it.
func (s *Store) Path(name string) (string, error) {
	clean, err := SanitizeName(name)
	if err != nil {
		return "", err
	}

	return filepath.Join(s.dir, clean), nil
}

// WriteAtomic writes data to name, replacing any existing file. Readers observe either
// the previous content or the complete new content.
//
// Returns the path written.
func (s *Store) WriteAtomic(name string, data []byte) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}

	tmp, err := s.writeTemp(filepath.Base(path), data)
	if err != nil {
		return "", err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("publish %s: %w", path, err)
	}

	s.logf("galspc: wrote %d bytes to %s", len(data), path)

	return path, nil
}

// CreateExclusive writes data to name only if no file of that name exists.
//
// Returns errs.ErrFileExists when the name is taken.
func (s *Store) CreateExclusive(name string, data []byte) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}

	tmp, err := s.writeTemp(filepath.Base(path), data)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", errs.ErrFileExists, path)
		}

		return "", fmt.Errorf("publish %s: %w", path, err)
	}

	s.logf("galspc: created %s (%d bytes)", path, len(data))

	return path, nil
}

// Read returns the content of name.
func (s *Store) Read(name string) ([]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}

func (s *Store) writeTemp(base string, data []byte) (string, error) {
	tmp := filepath.Join(s.dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.perm)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write temp file %s: %w", tmp, err)
	}

	return tmp, nil
}

// SanitizeName reduces a user-supplied file name to a safe base name.
//
// Directory components are dropped, characters other than ASCII letters, digits, dot,
// underscore and dash become underscores, and the result is limited to 128 bytes.
//
// Returns errs.ErrInvalidFileName for empty names, names without a stem and names whose
// extension is not .spc (case-insensitive).
func SanitizeName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == ".." || base == "/" || strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidFileName, name)
	}

	ext := filepath.Ext(base)
	if !strings.EqualFold(ext, Extension) {
		return "", fmt.Errorf("%w: %q does not end in %s", errs.ErrInvalidFileName, name, Extension)
	}

	stem := sanitizeStem(strings.TrimSuffix(base, ext))
	if stem == "" {
		return "", fmt.Errorf("%w: %q has no usable name", errs.ErrInvalidFileName, name)
	}

	return stem + ext, nil
}

func sanitizeStem(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		if b.Len() >= maxNameLen-len(Extension) {
			break
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
			r == '.' || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "._")
}
