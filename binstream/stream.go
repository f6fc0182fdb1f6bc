// Package binstream implements a bounded cursor buffer for assembling and
// walking binary data.
//
// bytes.Buffer was ruled out early: it only appends and only drains from the
// front, while decoding wire data needs free movement of a cursor over an
// already materialized byte sequence. Threading an explicit position through
// every call site was the other option and it turns unreadable fast, so the
// cursor lives in the stream itself.
//
// A BinaryStream owns its bytes, a cursor, and a (lower, upper) window
// restricting which offsets are accessible. Every operation is bounds
// checked against the window and reports an error instead of panicking, so
// callers decide the failure policy. A stream is exclusively owned by one
// caller at a time; there is no internal locking.
package binstream

import "github.com/pkg/errors"

// BinaryStream is an owned, resizable byte buffer with a cursor and an
// accessible window. Invariant: lower <= offset <= upper <= len(buffer).
type BinaryStream struct {
	buffer []byte
	offset int
	lower  int
	upper  int
}

// New creates a BinaryStream holding an independent copy of buf, with the
// window spanning the whole buffer.
func New(buf []byte) *BinaryStream {
	b := make([]byte, len(buf))
	copy(b, buf)
	return &BinaryStream{buffer: b, upper: len(b)}
}

// NewSize creates a zero-filled BinaryStream of n bytes.
func NewSize(n int) *BinaryStream {
	return &BinaryStream{buffer: make([]byte, n), upper: n}
}

// NewSlice creates a BinaryStream sharing the storage of buf. Used when the
// bytes already live somewhere the stream should not duplicate, like a
// memory mapping.
func NewSlice(buf []byte) *BinaryStream {
	return &BinaryStream{buffer: buf, upper: len(buf)}
}

// Offset returns the next read/write position.
func (s *BinaryStream) Offset() int { return s.offset }

// Bounds returns the accessible window as a (lower, upper) pair.
func (s *BinaryStream) Bounds() (int, int) { return s.lower, s.upper }

// Len returns the length of the underlying buffer.
func (s *BinaryStream) Len() int { return len(s.buffer) }

// Bytes returns the underlying buffer. The slice shares storage with the
// stream.
func (s *BinaryStream) Bytes() []byte { return s.buffer }

// SetOffset moves the cursor to o. Both window bounds are enforced; on
// error the cursor is unchanged.
func (s *BinaryStream) SetOffset(o int) error {
	if o < s.lower || o > s.upper {
		return s.boundsError(o)
	}
	s.offset = o
	return nil
}

// MustSetOffset panics if SetOffset fails.
func (s *BinaryStream) MustSetOffset(o int) {
	if err := s.SetOffset(o); err != nil {
		panic(err)
	}
}

// Skip advances the cursor n bytes without reading them.
func (s *BinaryStream) Skip(n int) error {
	o := s.offset + n
	if o < s.lower || o > s.upper {
		return s.boundsError(o)
	}
	s.offset = o
	return nil
}

// Allocate grows the stream by n zero bytes, extending the upper bound of
// the window along with the storage. Shrinking is not supported; a
// non-positive n is ignored.
func (s *BinaryStream) Allocate(n int) {
	if n <= 0 {
		return
	}
	s.buffer = append(s.buffer, make([]byte, n)...)
	s.upper = len(s.buffer)
}

// Clamp raises the lower bound of the window to lower, making earlier
// offsets inaccessible on this stream, and returns an independent
// full-window copy of the underlying bytes. It is a copy, not a shared
// view: mutations of either stream are invisible to the other, at the cost
// of duplicating storage. A clamp cannot be undone on the receiver; a
// cursor left below the new bound is moved up to it.
func (s *BinaryStream) Clamp(lower int) (*BinaryStream, error) {
	if lower < s.lower || lower > len(s.buffer) {
		return nil, errors.Errorf(
			"clamp at %d must lie within [%d, %d]", lower, s.lower, len(s.buffer),
		)
	}
	s.lower = lower
	if s.offset < lower {
		s.offset = lower
	}
	return New(s.buffer), nil
}

// IsWithinBounds reports whether o is a valid cursor position: inside the
// window and inside the buffer.
func (s *BinaryStream) IsWithinBounds(o int) bool {
	return o >= s.lower && o <= s.upper && o <= len(s.buffer)
}

// At returns the byte at index i.
func (s *BinaryStream) At(i int) (byte, error) {
	if i < s.lower || i >= s.upper {
		return 0, s.boundsError(i)
	}
	return s.buffer[i], nil
}

// Put writes v at index i without moving the cursor.
func (s *BinaryStream) Put(i int, v byte) error {
	if i < s.lower || i >= s.upper {
		return s.boundsError(i)
	}
	s.buffer[i] = v
	return nil
}

// Range returns the bytes in [from, to). The slice shares storage with the
// stream.
func (s *BinaryStream) Range(from, to int) ([]byte, error) {
	if from > to {
		return nil, errors.Errorf("invalid range [%d, %d)", from, to)
	}
	if from < s.lower {
		return nil, s.boundsError(from)
	}
	if to > s.upper {
		return nil, s.boundsError(to)
	}
	return s.buffer[from:to], nil
}

func (s *BinaryStream) clamped() bool {
	return s.lower != 0 || s.upper != len(s.buffer)
}

// boundsError distinguishes a window narrowed by a clamp from a buffer that
// is simply too small.
func (s *BinaryStream) boundsError(o int) error {
	if s.clamped() {
		return errors.Errorf(
			"offset %d outside the clamped window [%d, %d]", o, s.lower, s.upper,
		)
	}
	return errors.Errorf(
		"offset %d outside the %d byte buffer", o, len(s.buffer),
	)
}
