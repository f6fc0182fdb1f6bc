package binutil

import "github.com/pkg/errors"

// LE marks the wrapped value as little-endian on the wire. The canonical
// wire order is big-endian; LE byte-reverses the wrapped type's encoding on
// parse and restores the canonical order before delegating on compose.
//
// Value must be a pointer for Compose to have anywhere to put the result:
//
//	var port binutil.Uint16
//	err := binutil.LE{&port}.Compose(source, &pos)
type LE struct {
	Value Streamable
}

func (l LE) Parse() ([]byte, error) {
	b, err := l.Value.Parse()
	if err != nil {
		return nil, err
	}
	return ReverseBytes(b), nil
}

// Compose determines the little-endian span of the wrapped value (its
// EncodedLen for fixed-width values, the remainder of source otherwise),
// reverses a copy of that span back into canonical order, and composes the
// wrapped value against source[:*position] followed by the reversed span.
// The splice keeps the cursor absolute: the wrapped Compose still reads at
// *position even though the bytes it sees are a byte-swapped local copy.
func (l LE) Compose(source []byte, position *int) error {
	start := *position
	end := len(source)
	if s, ok := l.Value.(Sizer); ok {
		end = start + s.EncodedLen()
	}
	if start < 0 || start > len(source) || end > len(source) {
		return errors.Errorf(
			"composing little-endian value: need bytes [%d, %d), have %d",
			start, end, len(source),
		)
	}
	patched := make([]byte, 0, end)
	patched = append(patched, source[:start]...)
	patched = append(patched, ReverseBytes(source[start:end])...)
	return l.Value.Compose(patched, position)
}

// ReverseBytes returns a new slice holding the bytes of b in reverse order.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, x := range b {
		out[len(b)-1-i] = x
	}
	return out
}
