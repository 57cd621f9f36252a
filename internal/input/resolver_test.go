package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(clip string, clipErr error) *Resolver {
	r := NewResolver(100000)
	r.readClipboard = func() (string, error) { return clip, clipErr }
	return r
}

func TestResolvePriority(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o644))

	t.Run("primary argument wins over everything", func(t *testing.T) {
		t.Setenv(EnvInput, "env text")
		r := newTestResolver("clipboard text here", nil)
		got := r.Resolve(map[string]interface{}{
			"code":  "  direct code  ",
			FileArg: path,
		}, "code")
		assert.Equal(t, "direct code", got)
	})

	t.Run("file beats env and clipboard", func(t *testing.T) {
		t.Setenv(EnvInput, "env text")
		r := newTestResolver("clipboard text here", nil)
		got := r.Resolve(map[string]interface{}{FileArg: path}, "code")
		assert.Equal(t, "file contents", got)
	})

	t.Run("env beats clipboard", func(t *testing.T) {
		t.Setenv(EnvInput, "  env text  ")
		r := newTestResolver("clipboard text here", nil)
		got := r.Resolve(nil, "code")
		assert.Equal(t, "env text", got)
	})

	t.Run("clipboard is last resort", func(t *testing.T) {
		t.Setenv(EnvInput, "")
		r := newTestResolver("  clipboard text here  ", nil)
		got := r.Resolve(nil, "code")
		assert.Equal(t, "clipboard text here", got)
	})

	t.Run("nothing available", func(t *testing.T) {
		t.Setenv(EnvInput, "")
		r := newTestResolver("", nil)
		assert.Equal(t, "", r.Resolve(nil, "code"))
	})
}

func TestResolveClipboardFilter(t *testing.T) {
	t.Setenv(EnvInput, "")

	t.Run("short fragment ignored", func(t *testing.T) {
		r := newTestResolver("short", nil)
		assert.Equal(t, "", r.Resolve(nil, "code"))
	})

	t.Run("exactly ten characters ignored", func(t *testing.T) {
		r := newTestResolver("0123456789", nil)
		assert.Equal(t, "", r.Resolve(nil, "code"))
	})

	t.Run("eleven characters accepted", func(t *testing.T) {
		r := newTestResolver("0123456789a", nil)
		assert.Equal(t, "0123456789a", r.Resolve(nil, "code"))
	})

	t.Run("read error swallowed", func(t *testing.T) {
		r := newTestResolver("", errors.New("no clipboard utility"))
		assert.Equal(t, "", r.Resolve(nil, "code"))
	})
}

func TestResolveFile(t *testing.T) {
	tmp := t.TempDir()

	t.Run("missing file reported as content", func(t *testing.T) {
		missing := filepath.Join(tmp, "nope.txt")
		r := newTestResolver("", nil)
		got := r.Resolve(map[string]interface{}{FileArg: missing}, "code")
		assert.Equal(t, "Error: File not found: "+missing, got)
	})

	t.Run("directory reported as not found", func(t *testing.T) {
		r := newTestResolver("", nil)
		got := r.Resolve(map[string]interface{}{FileArg: tmp}, "code")
		assert.Equal(t, "Error: File not found: "+tmp, got)
	})

	t.Run("large file truncated with notice", func(t *testing.T) {
		path := filepath.Join(tmp, "big.txt")
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 150)), 0o644))

		r := NewResolver(100)
		r.readClipboard = func() (string, error) { return "", nil }
		got := r.Resolve(map[string]interface{}{FileArg: path}, "code")
		assert.Equal(t, strings.Repeat("x", 100)+TruncationNotice, got)
	})

	t.Run("file at the cap untouched", func(t *testing.T) {
		path := filepath.Join(tmp, "exact.txt")
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("y", 100)), 0o644))

		r := NewResolver(100)
		r.readClipboard = func() (string, error) { return "", nil }
		got := r.Resolve(map[string]interface{}{FileArg: path}, "code")
		assert.Equal(t, strings.Repeat("y", 100), got)
	})
}

func TestStringArg(t *testing.T) {
	t.Setenv(EnvInput, "")
	r := newTestResolver("", nil)

	t.Run("non-string primary treated as absent", func(t *testing.T) {
		got := r.Resolve(map[string]interface{}{"code": 42}, "code")
		assert.Equal(t, "", got)
	})

	t.Run("non-string file path treated as absent", func(t *testing.T) {
		got := r.Resolve(map[string]interface{}{FileArg: true}, "code")
		assert.Equal(t, "", got)
	})
}
