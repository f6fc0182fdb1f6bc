package binutil

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Streamable is the contract implemented by every type that can convert
// itself to and from its binary wire form.
//
// Composite types implement it by delegating to the primitive
// implementations of each field in declaration order:
//
//	type Handshake struct {
//		Magic  binutil.Uint16
//		Secure binutil.Bool
//	}
//
//	func (h Handshake) Parse() ([]byte, error) {
//		out, err := h.Magic.Parse()
//		if err != nil {
//			return nil, err
//		}
//		b, err := h.Secure.Parse()
//		if err != nil {
//			return nil, err
//		}
//		return append(out, b...), nil
//	}
//
//	func (h *Handshake) Compose(source []byte, position *int) error {
//		if err := h.Magic.Compose(source, position); err != nil {
//			return err
//		}
//		return h.Secure.Compose(source, position)
//	}
type Streamable interface {
	// Parse returns the encoded form of the value as a newly allocated
	// slice. It is a pure function of the value.
	Parse() ([]byte, error)

	// Compose fills the value by reading source starting at *position and
	// advances *position past every byte consumed, including any internal
	// length prefixes. Malformed input is reported as an error, never a
	// panic.
	Compose(source []byte, position *int) error
}

// Sizer is implemented by Streamables whose encoded form occupies a fixed
// number of bytes known without decoding. Variable-width types (String,
// Addr, slices) do not implement it. The LE adapter uses it to determine
// how many bytes of the source belong to the wrapped value.
type Sizer interface {
	EncodedLen() int
}

// MustParse parses v and panics on error. Reserved for values whose
// encoding cannot fail short of programmer error.
func MustParse(v Streamable) []byte {
	b, err := v.Parse()
	if err != nil {
		if logging {
			logger.Error("parse failed",
				zap.String("module", "streamable"),
				zap.Error(err),
			)
		}
		panic(err)
	}
	return b
}

// MustCompose composes v from source and panics on error.
func MustCompose(v Streamable, source []byte, position *int) {
	if err := v.Compose(source, position); err != nil {
		if logging {
			logger.Error("compose failed",
				zap.String("module", "streamable"),
				zap.Error(err),
			)
		}
		panic(err)
	}
}

// checkLen verifies that n bytes are available at position.
func checkLen(source []byte, position, n int, typ string) error {
	if position < 0 || position+n > len(source) {
		return errors.Errorf(
			"composing %s: need %d bytes at offset %d, have %d",
			typ, n, position, len(source)-position,
		)
	}
	return nil
}
