package binutil

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/streamkit/binutil/varint"
)

// ComposablePtr constrains a pointer to an element type satisfying the
// Streamable contract. Slice composition needs the pointer form so elements
// can be filled in place.
type ComposablePtr[T any] interface {
	*T
	Streamable
}

// ParseSlice encodes elems as a variable-length-integer element count
// followed by each element's encoding in order. This is the canonical
// collection framing; the fixed 16-bit framing of ParseSliceLE is kept only
// for wire compatibility with little-endian element streams.
func ParseSlice[T any, P ComposablePtr[T]](elems []T) ([]byte, error) {
	if uint64(len(elems)) > math.MaxUint32 {
		return nil, errors.Errorf("slice of %d elements overflows the length prefix", len(elems))
	}
	out := varint.PutUint32(uint32(len(elems)))
	for i := range elems {
		b, err := P(&elems[i]).Parse()
		if err != nil {
			return nil, errors.Wrapf(err, "slice element %d", i)
		}
		out = append(out, b...)
	}
	return out, nil
}

// ComposeSlice decodes a slice encoded by ParseSlice. The decoded element
// count always equals the prefix value; a source holding fewer bytes than
// the prefix promises is an error, not a partial result.
func ComposeSlice[T any, P ComposablePtr[T]](source []byte, position *int) ([]T, error) {
	count, err := varint.Uint32(source, position)
	if err != nil {
		return nil, errors.Wrap(err, "slice length prefix")
	}
	// every element occupies at least one byte, so the prefix bounds the
	// allocation
	if int64(count) > int64(len(source)-*position) {
		return nil, errors.Errorf(
			"slice of %d elements exceeds the %d bytes remaining",
			count, len(source)-*position,
		)
	}
	elems := make([]T, count)
	for i := range elems {
		if err := P(&elems[i]).Compose(source, position); err != nil {
			return nil, errors.Wrapf(err, "slice element %d", i)
		}
	}
	return elems, nil
}

// ParseSliceLE encodes elems as a 16-bit big-endian element count followed
// by the little-endian encoding of each element.
func ParseSliceLE[T any, P ComposablePtr[T]](elems []T) ([]byte, error) {
	if len(elems) > math.MaxUint16 {
		return nil, errors.Errorf("slice of %d elements overflows the 16-bit length prefix", len(elems))
	}
	out := make([]byte, 2)
	binary.BigEndian.PutUint16(out, uint16(len(elems)))
	for i := range elems {
		b, err := (LE{P(&elems[i])}).Parse()
		if err != nil {
			return nil, errors.Wrapf(err, "slice element %d", i)
		}
		out = append(out, b...)
	}
	return out, nil
}

// ComposeSliceLE decodes a slice encoded by ParseSliceLE, advancing the
// cursor after each element.
func ComposeSliceLE[T any, P ComposablePtr[T]](source []byte, position *int) ([]T, error) {
	var count Uint16
	if err := count.Compose(source, position); err != nil {
		return nil, errors.Wrap(err, "slice length prefix")
	}
	if int(count) > len(source)-*position {
		return nil, errors.Errorf(
			"slice of %d elements exceeds the %d bytes remaining",
			count, len(source)-*position,
		)
	}
	elems := make([]T, count)
	for i := range elems {
		if err := (LE{P(&elems[i])}).Compose(source, position); err != nil {
			return nil, errors.Wrapf(err, "slice element %d", i)
		}
	}
	return elems, nil
}
