// Command alswgen prints the ALSW check/decode tables for the hex, standard
// Base64, Base32 and Base32hex alphabets. The Base32 alphabets are derived
// upper-case only, so those tables differ from the case-folding ones package
// base32 builds, and the URL-safe Base64 alphabet is not printed. It exists
// purely as a development aid for auditing or re-deriving a table by hand;
// none of the library packages call it; they call
// internal/alsw.DeriveAliased directly at package init time. Takes the place of cmd/hwygen's code-generation role for
// this module's domain, without its C-AST-to-assembly machinery — there
// is no assembly here to generate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vecbyte/simdcodec/internal/alsw"
)

type namedAlphabet struct {
	name        string
	valueOf     map[byte]byte
	decodedBits int
}

func main() {
	var only string
	flag.StringVar(&only, "codec", "", "only print the named codec's table (hex, base64, base32, base32hex)")
	flag.Parse()

	alphabets := []namedAlphabet{
		{"hex", hexAlphabet(), 4},
		{"base64", linearAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"), 6},
		{"base32", linearAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"), 5},
		{"base32hex", linearAlphabet("0123456789ABCDEFGHIJKLMNOPQRSTUV"), 5},
	}

	for _, a := range alphabets {
		if only != "" && only != a.name {
			continue
		}
		tbl, err := alsw.DeriveAliased(a.valueOf, a.decodedBits)
		if err != nil {
			fmt.Fprintf(os.Stderr, "alswgen: %s: %v\n", a.name, err)
			os.Exit(1)
		}
		printTable(a.name, tbl)
	}
}

func linearAlphabet(s string) map[byte]byte {
	m := make(map[byte]byte, len(s))
	for v, c := range []byte(s) {
		m[c] = byte(v)
	}
	return m
}

func hexAlphabet() map[byte]byte {
	m := make(map[byte]byte, 22)
	for d := byte(0); d < 10; d++ {
		m['0'+d] = d
	}
	for d := byte(0); d < 6; d++ {
		m['a'+d] = 10 + d
		m['A'+d] = 10 + d
	}
	return m
}

func printTable(name string, tbl alsw.Table) {
	fmt.Printf("%s:\n  check_lut  = %v\n  decode_lut = %v\n", name, tbl.CheckLUT, tbl.DecodeLUT)
}
