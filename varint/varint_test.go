package varint

import (
	"bytes"
	"testing"
)

func TestPutUint32(t *testing.T) {
	cases := []struct {
		value uint32
		wire  []byte
	}{
		{0, []byte{0}},
		{1, []byte{1}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, c := range cases {
		b := PutUint32(c.value)
		if !bytes.Equal(b, c.wire) {
			t.Errorf("%v: expected %v, got %v", c.value, c.wire, b)
			continue
		}
		if Len32(c.value) != len(b) {
			t.Errorf("%v: Len32 %v but encoded form is %v bytes", c.value, Len32(c.value), len(b))
		}

		pos := 0
		v, err := Uint32(b, &pos)
		if err != nil {
			t.Errorf("%v: %v", c.value, err)
			continue
		}
		if v != c.value || pos != len(b) {
			t.Errorf("%v: decoded %v with cursor at %v", c.value, v, pos)
		}
	}
}

func TestUint64RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 1 << 20, 1 << 40, 1<<64 - 1}

	for _, val := range cases {
		b := PutUint64(val)
		if Len64(val) != len(b) {
			t.Errorf("%v: Len64 %v but encoded form is %v bytes", val, Len64(val), len(b))
		}

		pos := 0
		v, err := Uint64(b, &pos)
		if err != nil {
			t.Errorf("%v: %v", val, err)
			continue
		}
		if v != val || pos != len(b) {
			t.Errorf("%v: decoded %v with cursor at %v", val, v, pos)
		}
	}
}

func TestSignedRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -64, 300, -300, 1 << 40, -(1 << 40)}

	for _, val := range cases {
		b := PutInt64(val)
		pos := 0
		v, err := Int64(b, &pos)
		if err != nil {
			t.Errorf("%v: %v", val, err)
			continue
		}
		if v != val {
			t.Errorf("expected %v, got %v", val, v)
		}
	}

	// small magnitudes stay short under the zigzag mapping
	if len(PutInt32(-1)) != 1 {
		t.Errorf("expected -1 to encode in one byte, got %v", PutInt32(-1))
	}
}

func TestUint32Truncated(t *testing.T) {
	pos := 0
	if _, err := Uint32([]byte{0x80}, &pos); err == nil {
		t.Error("expected error for a source ending mid-varint")
	}
}

func TestUint32Overlong(t *testing.T) {
	pos := 0
	source := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, err := Uint32(source, &pos); err == nil {
		t.Error("expected error for a varint running past the 32-bit budget")
	}
}

func TestUint32MidSource(t *testing.T) {
	source := []byte{0xff, 0xac, 0x02, 0xff}

	pos := 1
	v, err := Uint32(source, &pos)
	if err != nil {
		t.Fatal(err)
	}
	if v != 300 || pos != 3 {
		t.Errorf("decoded %v with cursor at %v", v, pos)
	}
}
