package binutil

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// The fixed-width primitives. Each encodes as its big-endian byte
// representation with no prefix; big-endian is the canonical wire order and
// little-endian values go through the LE adapter. Compose reads exactly
// EncodedLen bytes at the cursor and advances by that amount.
type (
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
)

func (v Uint8) Parse() ([]byte, error) {
	return []byte{byte(v)}, nil
}

func (v *Uint8) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 1, "uint8"); err != nil {
		return err
	}
	*v = Uint8(source[*position])
	*position++
	return nil
}

// EncodedLen returns the fixed byte width of the encoded form.
func (Uint8) EncodedLen() int { return 1 }

func (v Uint16) Parse() ([]byte, error) {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b, nil
}

func (v *Uint16) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 2, "uint16"); err != nil {
		return err
	}
	*v = Uint16(binary.BigEndian.Uint16(source[*position:]))
	*position += 2
	return nil
}

func (Uint16) EncodedLen() int { return 2 }

func (v Uint32) Parse() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b, nil
}

func (v *Uint32) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 4, "uint32"); err != nil {
		return err
	}
	*v = Uint32(binary.BigEndian.Uint32(source[*position:]))
	*position += 4
	return nil
}

func (Uint32) EncodedLen() int { return 4 }

func (v Uint64) Parse() ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b, nil
}

func (v *Uint64) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 8, "uint64"); err != nil {
		return err
	}
	*v = Uint64(binary.BigEndian.Uint64(source[*position:]))
	*position += 8
	return nil
}

func (Uint64) EncodedLen() int { return 8 }

func (v Int8) Parse() ([]byte, error) {
	return []byte{byte(v)}, nil
}

func (v *Int8) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 1, "int8"); err != nil {
		return err
	}
	*v = Int8(source[*position])
	*position++
	return nil
}

func (Int8) EncodedLen() int { return 1 }

func (v Int16) Parse() ([]byte, error) {
	return Uint16(v).Parse()
}

func (v *Int16) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 2, "int16"); err != nil {
		return err
	}
	*v = Int16(binary.BigEndian.Uint16(source[*position:]))
	*position += 2
	return nil
}

func (Int16) EncodedLen() int { return 2 }

func (v Int32) Parse() ([]byte, error) {
	return Uint32(v).Parse()
}

func (v *Int32) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 4, "int32"); err != nil {
		return err
	}
	*v = Int32(binary.BigEndian.Uint32(source[*position:]))
	*position += 4
	return nil
}

func (Int32) EncodedLen() int { return 4 }

func (v Int64) Parse() ([]byte, error) {
	return Uint64(v).Parse()
}

func (v *Int64) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 8, "int64"); err != nil {
		return err
	}
	*v = Int64(binary.BigEndian.Uint64(source[*position:]))
	*position += 8
	return nil
}

func (Int64) EncodedLen() int { return 8 }

func (v Float32) Parse() ([]byte, error) {
	return Uint32(math.Float32bits(float32(v))).Parse()
}

func (v *Float32) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 4, "float32"); err != nil {
		return err
	}
	*v = Float32(math.Float32frombits(binary.BigEndian.Uint32(source[*position:])))
	*position += 4
	return nil
}

func (Float32) EncodedLen() int { return 4 }

func (v Float64) Parse() ([]byte, error) {
	return Uint64(math.Float64bits(float64(v))).Parse()
}

func (v *Float64) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 8, "float64"); err != nil {
		return err
	}
	*v = Float64(math.Float64frombits(binary.BigEndian.Uint64(source[*position:])))
	*position += 8
	return nil
}

func (Float64) EncodedLen() int { return 8 }

// Bool is a single-byte boolean: 0 is false, 1 is true, anything else is
// malformed input.
type Bool bool

func (v Bool) Parse() ([]byte, error) {
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (v *Bool) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 1, "bool"); err != nil {
		return err
	}
	b := source[*position]
	if b > 1 {
		return errors.Errorf("composing bool from non-binary byte: %d", b)
	}
	*v = b == 1
	*position++
	return nil
}

func (Bool) EncodedLen() int { return 1 }
