// Package input resolves the text a tool operates on from its argument bag
// or one of the fallback sources: a file path, the GEMINI_INPUT environment
// variable, or the system clipboard.
package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"codegem/internal/logging"
)

const (
	// EnvInput supplies a process-wide default input text.
	EnvInput = "GEMINI_INPUT"

	// FileArg is the implicit argument every tool honors.
	FileArg = "file_path"

	// TruncationNotice is appended when a file exceeds the length cap. It
	// must stay distinguishable from backend-generated content.
	TruncationNotice = "\n\n[Content truncated at 100KB limit]"

	// minClipboardLen filters out accidental tiny clipboard fragments:
	// values of 10 characters or fewer are ignored.
	minClipboardLen = 10
)

// Resolver extracts tool input by trying sources in fixed priority order.
// The chain is not configurable: an explicit argument always wins and the
// clipboard is the last resort.
type Resolver struct {
	maxTextLength int
	readClipboard func() (string, error)
}

// NewResolver creates a resolver with the given file-content length cap.
func NewResolver(maxTextLength int) *Resolver {
	return &Resolver{
		maxTextLength: maxTextLength,
		readClipboard: clipboard.ReadAll,
	}
}

// ClipboardAvailable reports whether the platform clipboard is usable.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// Resolve produces the text for a tool call. It returns an empty string
// when no source yields input; callers turn that into a tool-specific
// instructional message. File read failures come back as descriptive text
// rather than errors so they surface as tool content.
func (r *Resolver) Resolve(args map[string]interface{}, primaryField string) string {
	if direct := strings.TrimSpace(stringArg(args, primaryField)); direct != "" {
		return direct
	}

	if path := strings.TrimSpace(stringArg(args, FileArg)); path != "" {
		return r.readFile(path)
	}

	if envText := strings.TrimSpace(os.Getenv(EnvInput)); envText != "" {
		logging.InputDebug("resolved from %s env var len=%d", EnvInput, len(envText))
		return envText
	}

	if text, err := r.readClipboard(); err == nil {
		trimmed := strings.TrimSpace(text)
		if len(trimmed) > minClipboardLen {
			logging.InputDebug("resolved from clipboard len=%d", len(trimmed))
			return trimmed
		}
	}
	// Clipboard failures are swallowed: a broken clipboard is just an
	// absent source, never an error.

	return ""
}

// readFile reads path, truncating at the configured cap with an explicit
// notice. Missing files are reported distinctly from other read failures.
func (r *Resolver) readFile(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Sprintf("Error: File not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error reading file %s: %v", path, err)
	}

	content := string(data)
	if len(content) > r.maxTextLength {
		logging.InputDebug("file %s truncated from %d to %d bytes", path, len(content), r.maxTextLength)
		return content[:r.maxTextLength] + TruncationNotice
	}
	return content
}

// stringArg pulls a string value from the argument bag; non-string values
// count as absent.
func stringArg(args map[string]interface{}, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
