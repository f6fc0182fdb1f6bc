package binstream

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/streamkit/binutil/varint"
)

// take returns the next n bytes of the window and advances the cursor past
// them.
func (s *BinaryStream) take(n int, typ string) ([]byte, error) {
	if s.offset+n > s.upper {
		return nil, errors.Errorf(
			"reading %s: need %d bytes at offset %d, window ends at %d",
			typ, n, s.offset, s.upper,
		)
	}
	b := s.buffer[s.offset : s.offset+n]
	s.offset += n
	return b, nil
}

// ReadUint8 reads a single byte.
func (s *BinaryStream) ReadUint8() (uint8, error) {
	b, err := s.take(1, "uint8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads a single signed byte.
func (s *BinaryStream) ReadInt8() (int8, error) {
	v, err := s.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads 2 big-endian bytes.
func (s *BinaryStream) ReadUint16() (uint16, error) {
	b, err := s.take(2, "uint16")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint16LE reads 2 little-endian bytes.
func (s *BinaryStream) ReadUint16LE() (uint16, error) {
	b, err := s.take(2, "uint16")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt16 reads a 2 byte big-endian signed integer.
func (s *BinaryStream) ReadInt16() (int16, error) {
	v, err := s.ReadUint16()
	return int16(v), err
}

// ReadInt16LE reads a 2 byte little-endian signed integer.
func (s *BinaryStream) ReadInt16LE() (int16, error) {
	v, err := s.ReadUint16LE()
	return int16(v), err
}

// ReadUint32 reads 4 big-endian bytes.
func (s *BinaryStream) ReadUint32() (uint32, error) {
	b, err := s.take(4, "uint32")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint32LE reads 4 little-endian bytes.
func (s *BinaryStream) ReadUint32LE() (uint32, error) {
	b, err := s.take(4, "uint32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a 4 byte big-endian signed integer.
func (s *BinaryStream) ReadInt32() (int32, error) {
	v, err := s.ReadUint32()
	return int32(v), err
}

// ReadInt32LE reads a 4 byte little-endian signed integer.
func (s *BinaryStream) ReadInt32LE() (int32, error) {
	v, err := s.ReadUint32LE()
	return int32(v), err
}

// ReadUint64 reads 8 big-endian bytes.
func (s *BinaryStream) ReadUint64() (uint64, error) {
	b, err := s.take(8, "uint64")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadUint64LE reads 8 little-endian bytes.
func (s *BinaryStream) ReadUint64LE() (uint64, error) {
	b, err := s.take(8, "uint64")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64 reads an 8 byte big-endian signed integer.
func (s *BinaryStream) ReadInt64() (int64, error) {
	v, err := s.ReadUint64()
	return int64(v), err
}

// ReadInt64LE reads an 8 byte little-endian signed integer.
func (s *BinaryStream) ReadInt64LE() (int64, error) {
	v, err := s.ReadUint64LE()
	return int64(v), err
}

// ReadFloat32 reads a 4 byte big-endian IEEE 754 float.
func (s *BinaryStream) ReadFloat32() (float32, error) {
	v, err := s.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat32LE reads a 4 byte little-endian IEEE 754 float.
func (s *BinaryStream) ReadFloat32LE() (float32, error) {
	v, err := s.ReadUint32LE()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an 8 byte big-endian IEEE 754 double.
func (s *BinaryStream) ReadFloat64() (float64, error) {
	v, err := s.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadFloat64LE reads an 8 byte little-endian IEEE 754 double.
func (s *BinaryStream) ReadFloat64LE() (float64, error) {
	v, err := s.ReadUint64LE()
	return math.Float64frombits(v), err
}

// ReadBool reads a single byte, accepting only 0 and 1.
func (s *BinaryStream) ReadBool() (bool, error) {
	b, err := s.take(1, "bool")
	if err != nil {
		return false, err
	}
	if b[0] > 1 {
		return false, errors.Errorf("reading bool from non-binary byte: %d", b[0])
	}
	return b[0] == 1, nil
}

// ReadString reads a 16-bit big-endian byte count followed by that many
// UTF-8 bytes.
func (s *BinaryStream) ReadString() (string, error) {
	length, err := s.ReadUint16()
	if err != nil {
		return "", errors.Wrap(err, "string length prefix")
	}
	b, err := s.take(int(length), "string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Errorf("string at offset %d is not valid UTF-8", s.offset-int(length))
	}
	return string(b), nil
}

// ReadVarUint32 reads a variable-length unsigned integer.
func (s *BinaryStream) ReadVarUint32() (uint32, error) {
	return varint.Uint32(s.buffer[:s.upper], &s.offset)
}

// ReadVarInt32 reads a variable-length zigzag signed integer.
func (s *BinaryStream) ReadVarInt32() (int32, error) {
	return varint.Int32(s.buffer[:s.upper], &s.offset)
}

// ReadVarUint64 reads a variable-length unsigned long.
func (s *BinaryStream) ReadVarUint64() (uint64, error) {
	return varint.Uint64(s.buffer[:s.upper], &s.offset)
}

// ReadVarInt64 reads a variable-length zigzag signed long.
func (s *BinaryStream) ReadVarInt64() (int64, error) {
	return varint.Int64(s.buffer[:s.upper], &s.offset)
}
