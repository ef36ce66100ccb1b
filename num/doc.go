/*
Package num implements the numeric tower used by elps.

	Fixnum < Bignum < Ratio < Single < Double      (Complex infects all)

Values are immutable and are only produced by the canonicalizing
constructors (MakeInteger, MakeBig, MakeRatio, MakeRational, MakeComplex)
so that any integer in int64 range is a Fixnum, any Ratio has a
denominator greater than one, and any Complex with an exact zero
imaginary part is never materialized.

Binary operations pick a result representation from the larger Kind of
their operands.  Exact operands meeting a float are converted to the
float's width; two floats of different width use the wider one.
Overflowing Fixnum arithmetic is promoted to a Bignum and is never an
error.  Failures are reported as *Error values carrying a Condition.
*/
package num
