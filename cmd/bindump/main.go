// bindump prints an annotated view of binary wire data encoded with the
// binutil package.
//
// By default the file argument is hex dumped. With -as, the payload is also
// decoded sequentially as values of the named kind until the source is
// exhausted.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/streamkit/binutil"
	"github.com/streamkit/binutil/varint"
)

var (
	rawhex = flag.Bool("x", false, "treat the argument as a hex string instead of a file name")
	as     = flag.String("as", "", "decode the payload as a sequence of: string, addr, bool, varint")
)

func data(arg string) ([]byte, error) {
	if *rawhex {
		return hex.DecodeString(strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' {
				return -1
			}
			return r
		}, arg))
	}
	return os.ReadFile(arg)
}

func dump(b []byte) {
	for base := 0; base < len(b); base += 16 {
		end := base + 16
		if end > len(b) {
			end = len(b)
		}
		line := b[base:end]

		fmt.Printf("%08x  % x", base, line)
		fmt.Printf("%*s", 3*(16-len(line))+2, "")
		for _, c := range line {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			fmt.Printf("%c", c)
		}
		fmt.Println()
	}
}

func decode(b []byte) error {
	pos := 0
	for i := 0; pos < len(b); i++ {
		start := pos

		switch *as {
		case "string":
			var v binutil.String
			if err := v.Compose(b, &pos); err != nil {
				return err
			}
			fmt.Printf("[%d] @%d string %q\n", i, start, string(v))
		case "addr":
			var v binutil.Addr
			if err := v.Compose(b, &pos); err != nil {
				return err
			}
			fmt.Printf("[%d] @%d addr %v port %d flow %d scope %d\n",
				i, start, v.IP, v.Port, v.Flow, v.Scope)
		case "bool":
			var v binutil.Bool
			if err := v.Compose(b, &pos); err != nil {
				return err
			}
			fmt.Printf("[%d] @%d bool %v\n", i, start, bool(v))
		case "varint":
			v, err := varint.Uint64(b, &pos)
			if err != nil {
				return err
			}
			fmt.Printf("[%d] @%d varint %d (%d bytes)\n", i, start, v, pos-start)
		default:
			return fmt.Errorf("unknown decode kind %q", *as)
		}
	}
	return nil
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bindump [-x] [-as kind] <file | hex>")
		os.Exit(2)
	}

	b, err := data(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dump(b)

	if *as != "" {
		if err := decode(b); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
