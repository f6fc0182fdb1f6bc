package binutil

import (
	"bytes"
	"net"
	"strings"
	"testing"
)

func TestAddrV4Wire(t *testing.T) {
	a := Addr{IP: net.IPv4(192, 168, 0, 1), Port: 19132}

	b, err := a.Parse()
	if err != nil {
		t.Fatal(err)
	}

	expected := []byte{4, 192, 168, 0, 1, 0x4a, 0xbc}
	if !bytes.Equal(b, expected) {
		t.Errorf("expected %v, got %v", expected, b)
	}

	var got Addr
	pos := 0
	if err := got.Compose(b, &pos); err != nil {
		t.Fatal(err)
	}
	if !got.IP.Equal(a.IP) || got.Port != a.Port {
		t.Errorf("round trip gave %v:%v", got.IP, got.Port)
	}
	if pos != len(expected) {
		t.Errorf("expected cursor at %v, got %v", len(expected), pos)
	}
}

func TestAddrV6RoundTrip(t *testing.T) {
	a := Addr{
		IP:    net.ParseIP("2001:db8::68"),
		Port:  40000,
		Flow:  7,
		Scope: 3,
	}

	b, err := a.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 29 {
		t.Fatalf("expected a 29 byte encoding, got %v bytes", len(b))
	}
	if b[0] != 6 {
		t.Errorf("expected tag 6, got %v", b[0])
	}
	if b[1] != 0 || b[2] != 0 {
		t.Errorf("expected a zero reserved field, got %v %v", b[1], b[2])
	}

	var got Addr
	pos := 0
	if err := got.Compose(b, &pos); err != nil {
		t.Fatal(err)
	}
	if !got.IP.Equal(a.IP) || got.Port != a.Port || got.Flow != a.Flow || got.Scope != a.Scope {
		t.Errorf("round trip gave %+v", got)
	}
	if pos != 29 {
		t.Errorf("expected cursor at 29, got %v", pos)
	}
}

func TestAddrUnknownTag(t *testing.T) {
	var a Addr
	pos := 0
	err := a.Compose([]byte{9, 0, 0, 0, 0, 0, 0}, &pos)
	if err == nil {
		t.Fatal("expected error for an unknown address family tag")
	}
	if !strings.Contains(err.Error(), "unknown address family tag") {
		t.Errorf("unexpected error message: %v", err)
	}
	if pos != 0 {
		t.Errorf("cursor moved to %v on a failed compose", pos)
	}
}

func TestAddrTruncated(t *testing.T) {
	cases := [][]byte{
		{},
		{4, 127, 0},
		{6, 0, 0, 0x9c, 0x40},
	}

	for _, source := range cases {
		var a Addr
		pos := 0
		if err := a.Compose(source, &pos); err == nil {
			t.Errorf("%v: expected error composing a truncated address", source)
		}
	}
}

func TestAddrSequentialDecode(t *testing.T) {
	v4 := Addr{IP: net.IPv4(10, 0, 0, 2), Port: 80}
	v6 := Addr{IP: net.ParseIP("::1"), Port: 443}

	source := MustParse(&v4)
	source = append(source, MustParse(&v6)...)

	pos := 0
	var a, b Addr
	if err := a.Compose(source, &pos); err != nil {
		t.Fatal(err)
	}
	if err := b.Compose(source, &pos); err != nil {
		t.Fatal(err)
	}

	if !a.IP.Equal(v4.IP) || a.Port != 80 || !b.IP.Equal(v6.IP) || b.Port != 443 {
		t.Errorf("sequential decode gave %+v and %+v", a, b)
	}
	if pos != len(source) {
		t.Errorf("expected cursor at %v, got %v", len(source), pos)
	}
}
