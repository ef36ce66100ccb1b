package numlib_test

import (
	"testing"

	"github.com/luthersystems/elpsnum/num"
	"github.com/luthersystems/elpsnum/numlib"
	"github.com/luthersystems/elpsnum/numtest"
)

func TestArithmetic(t *testing.T) {
	tests := numtest.TestSuite{
		{"identity", numtest.TestSequence{
			{"(+)", "0"},
			{"(*)", "1"},
			{"(+ 5)", "5"},
			{"(- 5)", "-5"},
			{"(/ 2)", "1/2"},
		}},
		{"integers", numtest.TestSequence{
			{"(+ 1 2 3)", "6"},
			{"(- 10 1 2)", "7"},
			{"(* 2 3 4)", "24"},
			{"(1+ 41)", "42"},
			{"(1- 0)", "-1"},
		}},
		{"promotion", numtest.TestSequence{
			{"(+ most-positive-fixnum 1)", "9223372036854775808"},
			{"(type-of (+ most-positive-fixnum 1))", "bignum"},
			{"(type-of (- (+ most-positive-fixnum 1) 1))", "fixnum"},
			{"(- most-negative-fixnum)", "9223372036854775808"},
			{"(* most-positive-fixnum most-positive-fixnum)", "85070591730234615847396907784232501249"},
		}},
		{"ratios", numtest.TestSequence{
			{"(/ 1 3)", "1/3"},
			{"(/ 4 2)", "2"},
			{"(type-of (/ 4 2))", "fixnum"},
			{"(+ 1/3 2/3)", "1"},
			{"(* 2/3 3/4)", "1/2"},
			{"(numerator 6/4)", "3"},
			{"(denominator 6/4)", "2"},
		}},
		{"contagion", numtest.TestSequence{
			{"(+ 1/2 0.5)", "1.0"},
			{"(type-of (+ 1 1.5))", "single-float"},
			{"(+ 0.5 0.25d0)", "0.75d0"},
			{"(type-of (+ 1.5 1d0))", "double-float"},
			{"(+ 1 #C(1 2))", "#C(2 2)"},
			{"(+ #C(1 2) #C(1 -2))", "2"},
		}},
		{"float division", numtest.TestSequence{
			{"(/ 1.0 0.0)", "single-float-positive-infinity"},
			{"(/ -1d0 0d0)", "double-float-negative-infinity"},
			{"(float-nan-p (- inf inf))", "true"},
			{"(float-infinity-p inf)", "true"},
		}},
	}
	numtest.RunTestSuite(t, tests)
}

func TestComparison(t *testing.T) {
	tests := numtest.TestSuite{
		{"equality", numtest.TestSequence{
			{"(= 1 1.0 1d0)", "true"},
			{"(= 1/10 0.1)", "false"},
			{"(= 1/2 0.5)", "true"},
			{"(= #C(1 0.0) 1)", "true"},
			{"(/= 1 2 3)", "true"},
			{"(/= 1 2 1)", "false"},
			{"(eql 1 1.0)", "false"},
			{"(eql 1.5 1.5)", "true"},
			{"(hash-equal 1 1.0)", "true"},
			{"(= (hash 1/2) (hash 0.5d0))", "true"},
		}},
		{"order", numtest.TestSequence{
			{"(< 1 2 3)", "true"},
			{"(< 1 3 2)", "false"},
			{"(<= 1 1 2)", "true"},
			{"(> 3 2.5 1/2)", "true"},
			{"(>= 1 2)", "false"},
			{"(< 1 single-float-positive-infinity)", "true"},
			{"(max 1 2.0 3)", "3"},
			{"(min 1 2.0)", "1"},
			{"(< #C(1 2) 1)", "#<type-error>"},
			{"(max #C(1 2))", "#<type-error>"},
		}},
		{"predicates", numtest.TestSequence{
			{"(zerop 0.0)", "true"},
			{"(zerop 1/2)", "false"},
			{"(plusp 1/2)", "true"},
			{"(minusp -0.0)", "false"},
			{"(evenp 4)", "true"},
			{"(oddp 18446744073709551617)", "true"},
			{"(evenp 1.0)", "#<type-error>"},
		}},
	}
	numtest.RunTestSuite(t, tests)
}

func TestDivision(t *testing.T) {
	tests := numtest.TestSuite{
		{"quotient and remainder", numtest.TestSequence{
			{"(truncate 7 2)", "3 1"},
			{"(truncate -7 2)", "-3 -1"},
			{"(floor -7 2)", "-4 1"},
			{"(ceiling 7 2)", "4 -1"},
			{"(round 5 2)", "2 1"},
			{"(round 7 2)", "4 -1"},
			{"(truncate 2.5)", "2 0.5"},
			{"(floor 7/2)", "3 1/2"},
			{"(mod -7 2)", "1"},
			{"(rem -7 2)", "-1"},
		}},
		{"zero divisors", numtest.TestSequence{
			{"(/ 1 0)", "#<division-by-zero>"},
			{"(/ 1.5 0)", "#<division-by-zero>"},
			{"(truncate 1 0.0)", "#<division-by-zero>"},
			{"(mod 1 0)", "#<division-by-zero>"},
			{"(floor 1.0 0d0)", "#<division-by-zero>"},
		}},
	}
	numtest.RunTestSuite(t, tests)
}

func TestIntegerOperations(t *testing.T) {
	tests := numtest.TestSuite{
		{"gcd", numtest.TestSequence{
			{"(gcd)", "0"},
			{"(gcd -4)", "4"},
			{"(gcd 12 18)", "6"},
			{"(lcm)", "1"},
			{"(lcm 4 6)", "12"},
			{"(lcm 0 5)", "0"},
		}},
		{"bits", numtest.TestSequence{
			{"(logand)", "-1"},
			{"(logand 12 10)", "8"},
			{"(logior 12 10)", "14"},
			{"(logxor 12 10)", "6"},
			{"(lognot 0)", "-1"},
			{"(ash 1 64)", "18446744073709551616"},
			{"(ash 1 62)", "4611686018427387904"},
			{"(ash -1 -100)", "-1"},
			{"(ldb 8 8 #xABCD)", "171"},
			{"(logbitp 3 8)", "true"},
			{"(logbitp 2 8)", "false"},
			{"(logcount 255)", "8"},
			{"(integer-length 255)", "8"},
			{"(logand 1.5 1)", "#<type-error>"},
		}},
		{"expt", numtest.TestSequence{
			{"(expt 2 100)", "1267650600228229401496703205376"},
			{"(expt 2 -2)", "1/4"},
			{"(expt 2/3 2)", "4/9"},
			{"(expt 0 -1)", "#<division-by-zero>"},
			{"(sqrt 4)", "2.0"},
		}},
	}
	numtest.RunTestSuite(t, tests)
}

func TestConversion(t *testing.T) {
	tests := numtest.TestSuite{
		{"float", numtest.TestSequence{
			{"(float 1/2)", "0.5"},
			{"(float 1/2 1d0)", "0.5d0"},
			{"(float 1/3 1d0)", "0.3333333333333333d0"},
			{"(rational 0.5)", "1/2"},
			{"(rational 0.1)", "13421773/134217728"},
			{"(rational inf)", "#<type-error>"},
		}},
		{"complex", numtest.TestSequence{
			{"(complex 1 2)", "#C(1 2)"},
			{"(complex 1 0)", "1"},
			{"(complex 1.5)", "1.5"},
			{"(realpart #C(1 2))", "1"},
			{"(imagpart 5)", "0"},
			{"(conjugate #C(1 2))", "#C(1 -2)"},
			{"(abs #C(3 4))", "5.0"},
		}},
		{"bits", numtest.TestSequence{
			{"(integer-decode-float 1.0)", "8388608 -23 1"},
			{"(integer-decode-float -1d0)", "4503599627370496 -52 -1"},
			{"(float-bits 1.0)", "1065353216"},
			{"(float-from-bits 1065353216 32)", "1.0"},
			{"(float-from-bits 4607182418800017408 64)", "1.0d0"},
			{"(float-from-bits 1 16)", "#<type-error>"},
		}},
	}
	numtest.RunTestSuite(t, tests)
}

func TestEvalErrors(t *testing.T) {
	tests := numtest.TestSuite{
		{"application", numtest.TestSequence{
			{"(foo 1)", "#<unbound-symbol>"},
			{"(+ 1 x)", "#<unbound-symbol>"},
			{"(1 2)", "#<not-a-function>"},
			{"()", "#<not-a-function>"},
			{"(inf)", "#<not-a-function>"},
			{"(abs)", "#<arity-error>"},
			{"(abs 1 2)", "#<arity-error>"},
			{"(truncate 1 2 3)", "#<arity-error>"},
			{"(+ 1 (< 1 2))", "#<type-error>"},
		}},
	}
	numtest.RunTestSuite(t, tests)
}

func TestPrintConfig(t *testing.T) {
	r := &numtest.Runner{
		Configs: []numlib.Config{
			numlib.WithPrintConfig(num.NewPrintConfig(num.WithBase(16), num.WithRadix(true))),
		},
	}
	r.RunTestSuite(t, numtest.TestSuite{
		{"hex", numtest.TestSequence{
			{"(+ 250 5)", "#xFF"},
			{"(/ -1 3)", "#x-1/3"},
			{"(truncate 17 16)", "#x1 #x1"},
			{"(* 1.5 1)", "1.5"},
		}},
	})
}
