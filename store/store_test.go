package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/galspc/errs"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"spectrum.spc", "spectrum.spc"},
		{"Sample.SPC", "Sample.SPC"},
		{"scan 01 (final).spc", "scan_01_final.spc"},
		{"../../etc/passwd.spc", "passwd.spc"},
		{`C:\data\run.spc`, "run.spc"},
		{"a__b.spc", "a_b.spc"},
		{"ir_spectrum.spc", "ir_spectrum.spc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SanitizeName(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", ".", "..", "/", ".spc", "___.spc", "data.txt", "noext", "dir/"} {
		t.Run("reject "+bad, func(t *testing.T) {
			_, err := SanitizeName(bad)
			require.ErrorIs(t, err, errs.ErrInvalidFileName)
		})
	}

	long := strings.Repeat("x", 300) + ".spc"
	got, err := SanitizeName(long)
	require.NoError(t, err)
	require.LessOrEqual(t, len(got), maxNameLen)
}

func TestNew(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)
	require.Equal(t, dir, s.Dir())

	_, err = New(filepath.Join(dir, "missing"))
	require.Error(t, err)

	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = New(file)
	require.Error(t, err)

	_, err = New(dir, WithPerm(os.ModeDir|0o755))
	require.Error(t, err)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	var logged []string
	s, err := New(dir, WithPerm(0o600), WithLogger(func(format string, v ...any) {
		logged = append(logged, fmt.Sprintf(format, v...))
	}))
	require.NoError(t, err)

	path, err := s.WriteAtomic("out.spc", []byte("first"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "out.spc"), path)

	path, err = s.WriteAtomic("out.spc", []byte("second"))
	require.NoError(t, err)

	data, err := s.Read("out.spc")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	requireNoTempFiles(t, dir)
	require.Len(t, logged, 2)
}

func TestWriteAtomic_InvalidName(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.WriteAtomic("evil.exe", []byte("x"))
	require.ErrorIs(t, err, errs.ErrInvalidFileName)
}

func TestWriteAtomic_Concurrent(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	payloads := make([][]byte, 16)
	for i := range payloads {
		payloads[i] = []byte(strings.Repeat(fmt.Sprintf("%02d", i), 4096))
	}

	var wg sync.WaitGroup
	for _, p := range payloads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.WriteAtomic("shared.spc", p)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := s.Read("shared.spc")
	require.NoError(t, err)
	require.Contains(t, payloads, data, "file content must be one complete payload")
	requireNoTempFiles(t, dir)
}

func TestCreateExclusive(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	_, err = s.CreateExclusive("new.spc", []byte("one"))
	require.NoError(t, err)

	_, err = s.CreateExclusive("new.spc", []byte("two"))
	require.ErrorIs(t, err, errs.ErrFileExists)

	data, err := s.Read("new.spc")
	require.NoError(t, err)
	require.Equal(t, []byte("one"), data)
	requireNoTempFiles(t, dir)
}

func requireNoTempFiles(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}
