// Package stream provides a bounded cursor over a slice of items. The
// lexer consumes its input runes through one, and the parser consumes
// the lexer's output the same way, so both share one definition of
// lookahead, backtracking, and end-of-input behavior.
package stream

// Stream is a cursor over a fixed sequence of items. The zero Stream
// is empty. Reads past the end of the sequence return the zero value
// of T and do not move the cursor, so callers can detect end of input
// by position rather than by sentinel checks at every read.
//
// A Stream is not safe for concurrent use.
type Stream[T any] struct {
	items []T
	pos   int
}

// New returns a stream over the given items. The slice is used
// directly and not copied; it must not be modified while the stream is
// in use.
func New[T any](items []T) *Stream[T] {
	return &Stream[T]{items: items}
}

// Get returns the item under the cursor and advances the cursor past
// it. At the end of the sequence it returns the zero value of T and
// the cursor stays put.
func (s *Stream[T]) Get() T {
	if s.pos >= len(s.items) {
		var zero T
		return zero
	}
	item := s.items[s.pos]
	s.pos++
	return item
}

// Peek returns the item under the cursor without advancing. At the end
// of the sequence it returns the zero value of T.
func (s *Stream[T]) Peek() T {
	if s.pos >= len(s.items) {
		var zero T
		return zero
	}
	return s.items[s.pos]
}

// Skip advances the cursor one item.
func (s *Stream[T]) Skip() {
	s.pos++
}

// Advance advances the cursor n items. The cursor may run past the end
// of the sequence; reads there return the zero value of T.
func (s *Stream[T]) Advance(n int) {
	if n < 0 {
		return
	}
	s.pos += n
}

// Backup moves the cursor back one item. A cursor that has run past
// the end is treated as sitting at the last item, so backing up after
// overrunning lands just before it. The cursor never moves before the
// first item.
func (s *Stream[T]) Backup() {
	if len(s.items) == 0 {
		s.pos = 0
		return
	}
	if s.pos >= len(s.items) {
		s.pos = len(s.items) - 1
	}
	if s.pos > 0 {
		s.pos--
	}
}

// Seek sets the cursor to the given position. Negative positions are
// floored at the start of the sequence.
func (s *Stream[T]) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	s.pos = pos
}

// Pos returns the cursor position.
func (s *Stream[T]) Pos() int {
	return s.pos
}

// Len returns the number of items in the sequence, regardless of the
// cursor.
func (s *Stream[T]) Len() int {
	return len(s.items)
}
