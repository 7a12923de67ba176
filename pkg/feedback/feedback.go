// Package feedback appends free-text player feedback to a plain-text log file.
package feedback

import (
	"fmt"
	"os"
	"sync"
)

// DefaultPath is the log file used when none is configured, relative to the
// working directory.
const DefaultPath = "feedback.txt"

// Log is an append-only feedback file. The file is created on first append.
type Log struct {
	mu   sync.Mutex
	path string
}

// New returns a Log writing to path.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the file the log appends to.
func (l *Log) Path() string { return l.path }

// Append writes text followed by a newline in a single write. The file handle
// is released on every path.
func (l *Log) Append(text string) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // path comes from configuration
	if err != nil {
		return fmt.Errorf("feedback: append: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("feedback: close: %w", cerr)
		}
	}()

	if _, err := f.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("feedback: append: %w", err)
	}

	return nil
}
