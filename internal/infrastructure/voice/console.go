// Package voice holds the thin speech adapters. Real speech capture and
// synthesis stay behind the ports; these implementations let the assistant
// run on a terminal or a machine with a speech command installed.
package voice

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/jmajeed/juno/internal/ports"
)

// ConsoleListener captures "utterances" as lines typed on a reader,
// honoring the same timeout contract as a microphone listener: an empty
// string when nothing arrives in time.
type ConsoleListener struct {
	lines chan string
}

// NewConsoleListener starts reading lines from r immediately.
func NewConsoleListener(r io.Reader) *ConsoleListener {
	l := &ConsoleListener{lines: make(chan string)}
	go func() {
		defer close(l.lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			l.lines <- strings.TrimSpace(scanner.Text())
		}
	}()
	return l
}

// Listen implements ports.Listener. The phrase limit has no meaning for
// typed input and is ignored.
func (l *ConsoleListener) Listen(ctx context.Context, timeout, _ time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return "", nil
	case line, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.ToLower(line), nil
	}
}

var _ ports.Listener = (*ConsoleListener)(nil)
