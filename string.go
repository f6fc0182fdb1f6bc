package binutil

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// String is a length-prefixed UTF-8 string: a 16-bit big-endian byte count
// followed by the raw bytes. The prefix counts bytes, not characters.
type String string

func (v String) Parse() ([]byte, error) {
	if len(v) > math.MaxUint16 {
		return nil, errors.Errorf(
			"string of %d bytes overflows the 16-bit length prefix", len(v),
		)
	}
	b := make([]byte, 2+len(v))
	binary.BigEndian.PutUint16(b, uint16(len(v)))
	copy(b[2:], v)
	return b, nil
}

func (v *String) Compose(source []byte, position *int) error {
	var length Uint16
	if err := length.Compose(source, position); err != nil {
		return errors.Wrap(err, "string length prefix")
	}
	if err := checkLen(source, *position, int(length), "string"); err != nil {
		return err
	}
	raw := source[*position : *position+int(length)]
	if !utf8.Valid(raw) {
		return errors.Errorf("string at offset %d is not valid UTF-8", *position)
	}
	*v = String(raw)
	*position += int(length)
	return nil
}
