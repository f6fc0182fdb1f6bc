package binutil

import (
	"bytes"
	"reflect"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestPrimitiveWire(t *testing.T) {
	cases := []struct {
		name  string
		value Streamable
		fresh func() Streamable
		wire  []byte
	}{
		{"uint8", ptr(Uint8(0xab)), func() Streamable { return new(Uint8) }, []byte{0xab}},
		{"uint16", ptr(Uint16(0x1234)), func() Streamable { return new(Uint16) }, []byte{0x12, 0x34}},
		{"uint32", ptr(Uint32(0xdeadbeef)), func() Streamable { return new(Uint32) }, []byte{0xde, 0xad, 0xbe, 0xef}},
		{"uint64", ptr(Uint64(0x0102030405060708)), func() Streamable { return new(Uint64) },
			[]byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"int8", ptr(Int8(-1)), func() Streamable { return new(Int8) }, []byte{0xff}},
		{"int16", ptr(Int16(-2)), func() Streamable { return new(Int16) }, []byte{0xff, 0xfe}},
		{"int32", ptr(Int32(-2)), func() Streamable { return new(Int32) }, []byte{0xff, 0xff, 0xff, 0xfe}},
		{"int64", ptr(Int64(-2)), func() Streamable { return new(Int64) },
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe}},
		{"float32", ptr(Float32(1.0)), func() Streamable { return new(Float32) }, []byte{0x3f, 0x80, 0, 0}},
		{"float64", ptr(Float64(1.0)), func() Streamable { return new(Float64) },
			[]byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}},
		{"bool true", ptr(Bool(true)), func() Streamable { return new(Bool) }, []byte{1}},
		{"bool false", ptr(Bool(false)), func() Streamable { return new(Bool) }, []byte{0}},
	}

	for _, c := range cases {
		b, err := c.value.Parse()
		if err != nil {
			t.Errorf("%v: %v", c.name, err)
			continue
		}
		if !bytes.Equal(b, c.wire) {
			t.Errorf("%v: expected %v, got %v", c.name, c.wire, b)
			continue
		}

		got := c.fresh()
		pos := 0
		if err := got.Compose(b, &pos); err != nil {
			t.Errorf("%v: %v", c.name, err)
			continue
		}
		if pos != len(c.wire) {
			t.Errorf("%v: expected cursor at %v, got %v", c.name, len(c.wire), pos)
		}
		if !reflect.DeepEqual(got, c.value) {
			t.Errorf("%v: round trip changed the value: %v != %v", c.name, got, c.value)
		}
	}
}

func TestEncodedLenMatchesWire(t *testing.T) {
	cases := []Streamable{
		ptr(Uint8(1)), ptr(Uint16(1)), ptr(Uint32(1)), ptr(Uint64(1)),
		ptr(Int8(1)), ptr(Int16(1)), ptr(Int32(1)), ptr(Int64(1)),
		ptr(Float32(1)), ptr(Float64(1)), ptr(Bool(true)),
	}

	for _, c := range cases {
		s, ok := c.(Sizer)
		if !ok {
			t.Errorf("%T does not report a fixed size", c)
			continue
		}
		b, err := c.Parse()
		if err != nil {
			t.Errorf("%T: %v", c, err)
			continue
		}
		if len(b) != s.EncodedLen() {
			t.Errorf("%T: EncodedLen %v but wire form is %v bytes", c, s.EncodedLen(), len(b))
		}
	}
}

func TestComposeTruncated(t *testing.T) {
	cases := []Streamable{
		new(Uint16), new(Uint32), new(Uint64),
		new(Int16), new(Int32), new(Int64),
		new(Float32), new(Float64),
	}

	for _, c := range cases {
		pos := 0
		if err := c.Compose([]byte{1}, &pos); err == nil {
			t.Errorf("%T: expected error composing from a 1 byte source", c)
		}
		if pos != 0 {
			t.Errorf("%T: cursor moved to %v on a failed compose", c, pos)
		}
	}
}

func TestBoolNonBinaryByte(t *testing.T) {
	var v Bool
	pos := 0
	err := v.Compose([]byte{2}, &pos)
	if err == nil {
		t.Error("expected error composing bool from byte 2")
	}
	if pos != 0 {
		t.Errorf("cursor moved to %v on a failed compose", pos)
	}
}

func TestCursorAdvancesAcrossValues(t *testing.T) {
	first := MustParse(ptr(Uint32(42)))
	second := MustParse(ptr(Uint16(7)))
	source := append(first, second...)

	pos := 0
	var a Uint32
	var b Uint16
	if err := a.Compose(source, &pos); err != nil {
		t.Fatal(err)
	}
	if pos != 4 {
		t.Errorf("expected cursor at 4, got %v", pos)
	}
	if err := b.Compose(source, &pos); err != nil {
		t.Fatal(err)
	}
	if pos != 6 || a != 42 || b != 7 {
		t.Errorf("sequential compose failed: pos %v, a %v, b %v", pos, a, b)
	}
}

func TestMustComposePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustCompose to panic on truncated input")
		}
	}()

	pos := 0
	MustCompose(new(Uint64), []byte{1, 2}, &pos)
}
