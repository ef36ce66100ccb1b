package parser

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/luthersystems/elpsnum/num"
)

// ErrNotNumber is returned by ReadNumber for tokens that do not have
// numeric syntax.  The reader treats such tokens as symbols.
var ErrNotNumber = errors.New("not a number")

var (
	decimalInteger = regexp.MustCompile(`^[+-]?[0-9]+\.?$`)
	decimalRatio   = regexp.MustCompile(`^[+-]?[0-9]+/[0-9]+$`)
	decimalFloat   = regexp.MustCompile(`^([+-]?)([0-9]*\.[0-9]+|[0-9]+\.?[0-9]*)(?:([esfdlESFDL])([+-]?[0-9]+))?$`)
	radixPrefix    = regexp.MustCompile(`^#(?:([bBoOxX])|([0-9]+)[rR])(.*)$`)
)

// Decimal exponents beyond this bound overflow or underflow every float
// format whatever the significand digits, so they are decided without
// building the exact value.
const maxDecimalExponent = 5000

// ReadNumber parses the numeric token s.  It accepts decimal integers with
// an optional trailing point, ratios such as 2/3, floats with an optional
// exponent marker, and rationals written in another radix with one of the
// prefixes #b, #o, #x or #Nr.  Floats read as single-floats unless the
// exponent marker is d or l.  ReadNumber returns ErrNotNumber if s does not
// have numeric syntax.
func ReadNumber(s string) (num.Number, error) {
	if m := radixPrefix.FindStringSubmatch(s); m != nil {
		return readRadix(s, m)
	}
	switch {
	case decimalInteger.MatchString(s):
		return readInteger(strings.TrimSuffix(s, "."), 10)
	case decimalRatio.MatchString(s):
		return readRatio(s, 10)
	}
	if m := decimalFloat.FindStringSubmatch(s); m != nil {
		// an integer with neither fraction digits nor exponent was
		// matched above
		return readFloat(s, m)
	}
	return nil, ErrNotNumber
}

func readRadix(s string, m []string) (num.Number, error) {
	var base int
	switch strings.ToLower(m[1]) {
	case "b":
		base = 2
	case "o":
		base = 8
	case "x":
		base = 16
	default:
		b, err := strconv.Atoi(m[2])
		if err != nil || b < 2 || b > 36 {
			return nil, fmt.Errorf("invalid radix in %q", s)
		}
		base = b
	}
	body := m[3]
	if strings.Contains(body, "/") {
		return readRatio(body, base)
	}
	return readInteger(body, base)
}

func readInteger(s string, base int) (num.Number, error) {
	x, err := parseBig(s, base)
	if err != nil {
		return nil, err
	}
	return num.MakeBig(x), nil
}

func readRatio(s string, base int) (num.Number, error) {
	n, d, _ := strings.Cut(s, "/")
	if strings.HasPrefix(d, "+") || strings.HasPrefix(d, "-") {
		return nil, fmt.Errorf("invalid ratio %q", s)
	}
	x, err := parseBig(n, base)
	if err != nil {
		return nil, err
	}
	y, err := parseBig(d, base)
	if err != nil {
		return nil, err
	}
	r, err := num.MakeRatio(x, y)
	if err != nil {
		return nil, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	return r, nil
}

func parseBig(s string, base int) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return nil, fmt.Errorf("invalid base %d integer %q", base, s)
	}
	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid base %d integer %q", base, s)
	}
	return x, nil
}

// readFloat converts a decimal float token by building its exact value
// and rounding it once to the target format.
func readFloat(s string, m []string) (num.Number, error) {
	sign, mant, marker, exp := m[1], m[2], strings.ToLower(m[3]), m[4]
	kind := num.KindSingle
	if marker == "d" || marker == "l" {
		kind = num.KindDouble
	}
	e := 0
	if exp != "" {
		var err error
		e, err = strconv.Atoi(exp)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("invalid float %q: %w", s, err)
		}
		if err != nil || e > maxDecimalExponent || e < -maxDecimalExponent {
			return extremeFloat(s, sign, mant, exp, kind)
		}
	}
	if strings.HasPrefix(mant, ".") {
		mant = "0" + mant
	}
	if strings.HasSuffix(mant, ".") {
		mant += "0"
	}
	r, ok := new(big.Rat).SetString(mant + "e" + strconv.Itoa(e))
	if !ok {
		return nil, fmt.Errorf("invalid float %q", s)
	}
	exact, err := num.MakeRatio(r.Num(), r.Denom())
	if err != nil {
		return nil, err
	}
	f, err := num.FloatFromRational(exact, kind)
	if err != nil {
		return nil, fmt.Errorf("float %q: %w", s, err)
	}
	if sign == "-" {
		return num.Negate(f)
	}
	return f, nil
}

// extremeFloat handles exponents too large to expand.  A zero significand
// is zero at any exponent; otherwise a positive exponent overflows and a
// negative one underflows to a signed zero.
func extremeFloat(s, sign, mant, exp string, kind num.Kind) (num.Number, error) {
	zero, err := num.FloatFromRational(num.MakeInteger(0), kind)
	if err != nil {
		return nil, err
	}
	nonzero := strings.Trim(mant, "0.") != ""
	if nonzero && !strings.HasPrefix(exp, "-") {
		return nil, fmt.Errorf("float %q: exponent is too large for %v", s, kind)
	}
	if sign == "-" {
		return num.Negate(zero)
	}
	return zero, nil
}
