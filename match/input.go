package match

import "fmt"

// NoMatch is the cursor returned by a matcher that fails at a position.
const NoMatch = -1

// Input represents a source buffer being matched.
//
// The buffer is never modified. The only mutable field is a diagnostic
// high-water mark recording the furthest position any matcher inspected;
// it never influences whether or where a matcher succeeds. An Input must
// not be shared between goroutines, but any number of Inputs may be
// matched concurrently against the same grammar.
type Input struct {
	src      []byte
	furthest int
}

// NewInput returns a new Input over src.
func NewInput(src []byte) *Input {
	return &Input{src: src}
}

// Bytes returns the underlying buffer.
func (in *Input) Bytes() []byte { return in.src }

// Len returns the end-of-input position.
func (in *Input) Len() int { return len(in.src) }

// Furthest returns the furthest position inspected since the last Reset.
func (in *Input) Furthest() int { return in.furthest }

// Reset clears the furthest position.
func (in *Input) Reset() { in.furthest = 0 }

// Slice returns the bytes between two cursors.
func (in *Input) Slice(start, end int) []byte { return in.src[start:end] }

// byteAt returns the byte at p and records p as inspected.
// Returns false if p is outside the buffer.
func (in *Input) byteAt(p int) (byte, bool) {
	in.reach(p)
	if p < 0 || p >= len(in.src) {
		return 0, false
	}
	return in.src[p], true
}

func (in *Input) reach(p int) {
	if p > in.furthest {
		in.furthest = p
	}
}

// Error is returned by Match when a matcher fails.
type Error struct {
	// Start is the cursor the match was attempted at.
	Start int

	// Furthest is the furthest position any attempted alternative reached.
	Furthest int
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	return fmt.Sprintf("no match at offset %d (furthest offset %d)", e.Start, e.Furthest)
}

// Match runs m against src starting at p.
// Returns the end cursor on success. On failure it returns NoMatch and an
// *Error carrying the furthest position reached.
func Match(m Matcher, src []byte, p int) (int, error) {
	in := NewInput(src)
	in.reach(p)
	if end := m.Match(in, p); end != NoMatch {
		return end, nil
	}
	return NoMatch, &Error{Start: p, Furthest: in.Furthest()}
}
