// Package varint implements the variable-length integer encoding used for
// collection length prefixes: seven value bits per byte, the top bit set on
// every byte except the last, least-significant group first. The encoded
// size grows with the magnitude of the value, one byte per seven bits.
package varint

import "github.com/pkg/errors"

// Maximum encoded byte lengths.
const (
	MaxLen32 = 5
	MaxLen64 = 10
)

// PutUint32 returns the encoded form of v.
func PutUint32(v uint32) []byte {
	out := make([]byte, 0, MaxLen32)
	for v >= 0x80 {
		out = append(out, byte(v)|0x80)
		v >>= 7
	}
	return append(out, byte(v))
}

// Len32 returns the byte length of the encoded form of v.
func Len32(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Uint32 decodes a varint from source starting at *position and advances
// *position past every byte consumed. A source that ends mid-varint or a
// varint running past the 32-bit shift budget is an error.
func Uint32(source []byte, position *int) (uint32, error) {
	var v uint32
	for shift := uint(0); shift < MaxLen32*7; shift += 7 {
		if *position >= len(source) {
			return 0, errors.New("truncated varint")
		}
		b := source[*position]
		*position++
		v |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, errors.New("varint overflows 32 bits")
}

// PutUint64 returns the encoded form of v.
func PutUint64(v uint64) []byte {
	out := make([]byte, 0, MaxLen64)
	for v >= 0x80 {
		out = append(out, byte(v)|0x80)
		v >>= 7
	}
	return append(out, byte(v))
}

// Len64 returns the byte length of the encoded form of v.
func Len64(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Uint64 decodes a 64-bit varint, with the same failure rules as Uint32.
func Uint64(source []byte, position *int) (uint64, error) {
	var v uint64
	for shift := uint(0); shift < MaxLen64*7; shift += 7 {
		if *position >= len(source) {
			return 0, errors.New("truncated varint")
		}
		b := source[*position]
		*position++
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, errors.New("varint overflows 64 bits")
}

// Signed values use the zigzag mapping so small negative values stay short.

// PutInt32 returns the encoded zigzag form of v.
func PutInt32(v int32) []byte {
	return PutUint32(zigzag32(v))
}

// Int32 decodes a zigzag varint.
func Int32(source []byte, position *int) (int32, error) {
	u, err := Uint32(source, position)
	if err != nil {
		return 0, err
	}
	return unzigzag32(u), nil
}

// PutInt64 returns the encoded zigzag form of v.
func PutInt64(v int64) []byte {
	return PutUint64(zigzag64(v))
}

// Int64 decodes a 64-bit zigzag varint.
func Int64(source []byte, position *int) (int64, error) {
	u, err := Uint64(source, position)
	if err != nil {
		return 0, err
	}
	return unzigzag64(u), nil
}

func zigzag32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

func unzigzag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

func zigzag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func unzigzag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
