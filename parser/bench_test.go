package parser_test

import (
	"strings"
	"testing"

	"github.com/luthersystems/elpsnum/parser"
)

var benchmarkInputs = map[string]string{
	"integers": strings.Repeat("(+ 1 22 333 4444 -55555 18446744073709551616)\n", 200),
	"floats":   strings.Repeat("(* 1.5 0.1d0 6.02e23 -2.5d-300 .5)\n", 200),
	"radix":    strings.Repeat("(logand #xff #b1010 #o777 #36rZZ #x-1/3)\n", 200),
	"complex":  strings.Repeat("(abs #C(3 4) #C(1.5d0 -2))\n", 200),
}

func BenchmarkRead(b *testing.B) {
	for name, text := range benchmarkInputs {
		b.Run(name, func(b *testing.B) {
			src := []byte(text)
			b.SetBytes(int64(len(src)))
			for i := 0; i < b.N; i++ {
				if _, err := parser.Read(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkReadNumber(b *testing.B) {
	for _, s := range []string{"42", "18446744073709551616", "2/3", "0.1", "6.02e23", "#xDEADBEEF"} {
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := parser.ReadNumber(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
