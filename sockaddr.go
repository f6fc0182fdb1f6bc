package binutil

import (
	"encoding/binary"
	"net"

	"github.com/pkg/errors"
)

// Address family tag bytes on the wire.
const (
	tagIPv4 = 4
	tagIPv6 = 6
)

// Encoded widths per family, tag byte included.
const (
	ipv4AddrLen = 7
	ipv6AddrLen = 29
)

// Addr is a network end point.
//
// IPv4 wire form: tag byte 4, the four address bytes, and a 16-bit
// big-endian port. IPv6 wire form: tag byte 6, a reserved 16-bit field
// written as zero, the port, a 32-bit flow label, the sixteen address
// bytes, and a 32-bit scope id, all big-endian. Flow and Scope only carry
// meaning for IPv6 end points.
type Addr struct {
	IP    net.IP
	Port  uint16
	Flow  uint32
	Scope uint32
}

func (a Addr) Parse() ([]byte, error) {
	if v4 := a.IP.To4(); v4 != nil {
		b := make([]byte, ipv4AddrLen)
		b[0] = tagIPv4
		copy(b[1:5], v4)
		binary.BigEndian.PutUint16(b[5:], a.Port)
		return b, nil
	}
	v6 := a.IP.To16()
	if v6 == nil {
		return nil, errors.Errorf("address %q is neither IPv4 nor IPv6", a.IP.String())
	}
	b := make([]byte, ipv6AddrLen)
	b[0] = tagIPv6
	// bytes 1..2 are the reserved family field, always zero
	binary.BigEndian.PutUint16(b[3:], a.Port)
	binary.BigEndian.PutUint32(b[5:], a.Flow)
	copy(b[9:25], v6)
	binary.BigEndian.PutUint32(b[25:], a.Scope)
	return b, nil
}

// Compose dispatches on the tag byte. An unrecognized tag is an error,
// never a silent default.
func (a *Addr) Compose(source []byte, position *int) error {
	if err := checkLen(source, *position, 1, "address tag"); err != nil {
		return err
	}
	switch tag := source[*position]; tag {
	case tagIPv4:
		if err := checkLen(source, *position, ipv4AddrLen, "IPv4 address"); err != nil {
			return err
		}
		p := *position + 1
		a.IP = append(net.IP(nil), source[p:p+4]...)
		a.Port = binary.BigEndian.Uint16(source[p+4:])
		a.Flow, a.Scope = 0, 0
		*position += ipv4AddrLen
		return nil
	case tagIPv6:
		if err := checkLen(source, *position, ipv6AddrLen, "IPv6 address"); err != nil {
			return err
		}
		p := *position + 1
		// the reserved field at p..p+2 is skipped
		a.Port = binary.BigEndian.Uint16(source[p+2:])
		a.Flow = binary.BigEndian.Uint32(source[p+4:])
		a.IP = append(net.IP(nil), source[p+8:p+24]...)
		a.Scope = binary.BigEndian.Uint32(source[p+24:])
		*position += ipv6AddrLen
		return nil
	default:
		return errors.Errorf("unknown address family tag: %d", tag)
	}
}
