package keyboard

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultTypeAheadTimeout is how long the type-ahead buffer survives
// between keystrokes before it resets.
const DefaultTypeAheadTimeout = time.Second

// TypeAhead accumulates printable characters typed in quick succession
// and matches them as a prefix against a list of option labels. Pauses
// longer than Timeout reset the buffer, so typing "ba", waiting, then "n"
// searches for "n" rather than "ban".
type TypeAhead struct {
	// Timeout is the inter-keystroke expiry. Zero means
	// DefaultTypeAheadTimeout.
	Timeout time.Duration

	buffer strings.Builder
	last   time.Time
}

func (t *TypeAhead) timeout() time.Duration {
	if t.Timeout > 0 {
		return t.Timeout
	}
	return DefaultTypeAheadTimeout
}

// Append adds a typed character to the buffer, first resetting it when
// the previous keystroke is older than the timeout. Returns the current
// search prefix.
func (t *TypeAhead) Append(r rune, now time.Time) string {
	if !t.last.IsZero() && now.Sub(t.last) > t.timeout() {
		t.buffer.Reset()
	}
	t.last = now
	t.buffer.WriteRune(r)
	return t.buffer.String()
}

// Reset clears the buffer immediately.
func (t *TypeAhead) Reset() {
	t.buffer.Reset()
	t.last = time.Time{}
}

// Match finds the first label whose lowercase form starts with the current
// buffer. A single-character buffer searches cyclically from the entry
// after the given index so repeated presses walk through equal prefixes;
// a longer buffer checks the given index first so extending the prefix
// keeps the current match while it still qualifies. Returns -1 when
// nothing matches or the buffer is empty.
func (t *TypeAhead) Match(labels []string, from int) int {
	prefix := strings.ToLower(t.buffer.String())
	if prefix == "" || len(labels) == 0 {
		return -1
	}
	n := len(labels)
	start := from + 1
	if utf8.RuneCountInString(prefix) > 1 {
		start = from
	}
	if start < 0 {
		start = 0
	}
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if strings.HasPrefix(strings.ToLower(labels[idx]), prefix) {
			return idx
		}
	}
	return -1
}
