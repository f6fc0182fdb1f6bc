package binstream

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/streamkit/binutil/varint"
)

// Write writes data at the cursor and advances it, implementing io.Writer.
// Writing past the upper bound of the window fails without moving the
// cursor; Allocate first when more room is needed.
func (s *BinaryStream) Write(data []byte) (int, error) {
	if s.offset+len(data) > s.upper {
		return 0, errors.Errorf(
			"writing %d bytes at offset %d overflows the window ending at %d",
			len(data), s.offset, s.upper,
		)
	}
	copy(s.buffer[s.offset:], data)
	s.offset += len(data)
	return len(data), nil
}

// MustWrite panics if Write fails.
func (s *BinaryStream) MustWrite(data []byte) {
	if _, err := s.Write(data); err != nil {
		panic(err)
	}
}

// WriteUint8 writes a single byte.
func (s *BinaryStream) WriteUint8(v uint8) error {
	_, err := s.Write([]byte{v})
	return err
}

// WriteInt8 writes a single signed byte.
func (s *BinaryStream) WriteInt8(v int8) error {
	return s.WriteUint8(uint8(v))
}

// WriteUint16 writes 2 big-endian bytes.
func (s *BinaryStream) WriteUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// WriteUint16LE writes 2 little-endian bytes.
func (s *BinaryStream) WriteUint16LE(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// WriteInt16 writes a 2 byte big-endian signed integer.
func (s *BinaryStream) WriteInt16(v int16) error {
	return s.WriteUint16(uint16(v))
}

// WriteInt16LE writes a 2 byte little-endian signed integer.
func (s *BinaryStream) WriteInt16LE(v int16) error {
	return s.WriteUint16LE(uint16(v))
}

// WriteUint32 writes 4 big-endian bytes.
func (s *BinaryStream) WriteUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// WriteUint32LE writes 4 little-endian bytes.
func (s *BinaryStream) WriteUint32LE(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// WriteInt32 writes a 4 byte big-endian signed integer.
func (s *BinaryStream) WriteInt32(v int32) error {
	return s.WriteUint32(uint32(v))
}

// WriteInt32LE writes a 4 byte little-endian signed integer.
func (s *BinaryStream) WriteInt32LE(v int32) error {
	return s.WriteUint32LE(uint32(v))
}

// WriteUint64 writes 8 big-endian bytes.
func (s *BinaryStream) WriteUint64(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// WriteUint64LE writes 8 little-endian bytes.
func (s *BinaryStream) WriteUint64LE(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// WriteInt64 writes an 8 byte big-endian signed integer.
func (s *BinaryStream) WriteInt64(v int64) error {
	return s.WriteUint64(uint64(v))
}

// WriteInt64LE writes an 8 byte little-endian signed integer.
func (s *BinaryStream) WriteInt64LE(v int64) error {
	return s.WriteUint64LE(uint64(v))
}

// WriteFloat32 writes a 4 byte big-endian IEEE 754 float.
func (s *BinaryStream) WriteFloat32(v float32) error {
	return s.WriteUint32(math.Float32bits(v))
}

// WriteFloat32LE writes a 4 byte little-endian IEEE 754 float.
func (s *BinaryStream) WriteFloat32LE(v float32) error {
	return s.WriteUint32LE(math.Float32bits(v))
}

// WriteFloat64 writes an 8 byte big-endian IEEE 754 double.
func (s *BinaryStream) WriteFloat64(v float64) error {
	return s.WriteUint64(math.Float64bits(v))
}

// WriteFloat64LE writes an 8 byte little-endian IEEE 754 double.
func (s *BinaryStream) WriteFloat64LE(v float64) error {
	return s.WriteUint64LE(math.Float64bits(v))
}

// WriteBool writes a single 0 or 1 byte.
func (s *BinaryStream) WriteBool(v bool) error {
	if v {
		return s.WriteUint8(1)
	}
	return s.WriteUint8(0)
}

// WriteString writes a 16-bit big-endian byte count followed by the raw
// bytes.
func (s *BinaryStream) WriteString(v string) error {
	if len(v) > math.MaxUint16 {
		return errors.Errorf(
			"string of %d bytes overflows the 16-bit length prefix", len(v),
		)
	}
	if err := s.WriteUint16(uint16(len(v))); err != nil {
		return err
	}
	_, err := s.Write([]byte(v))
	return err
}

// WriteVarUint32 writes a variable-length unsigned integer.
func (s *BinaryStream) WriteVarUint32(v uint32) error {
	_, err := s.Write(varint.PutUint32(v))
	return err
}

// WriteVarInt32 writes a variable-length zigzag signed integer.
func (s *BinaryStream) WriteVarInt32(v int32) error {
	_, err := s.Write(varint.PutInt32(v))
	return err
}

// WriteVarUint64 writes a variable-length unsigned long.
func (s *BinaryStream) WriteVarUint64(v uint64) error {
	_, err := s.Write(varint.PutUint64(v))
	return err
}

// WriteVarInt64 writes a variable-length zigzag signed long.
func (s *BinaryStream) WriteVarInt64(v int64) error {
	_, err := s.Write(varint.PutInt64(v))
	return err
}
