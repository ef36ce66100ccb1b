package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/luthersystems/elpsnum/num"
	"github.com/luthersystems/elpsnum/parser"
)

// NewBitsCommand creates the bits command.
func NewBitsCommand(root *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "bits [flags] NUMBER...",
		Short: "Show the binary representation of numbers",
		Long: `Show the IEEE-754 encoding of floats and the bit counts of integers.
Each argument is a numeric literal.  With --float every argument is first
converted to the named float format.  Negative numbers must follow --
so that they are not read as flags:

	elpsnum bits --float double -- -2 -1/3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind num.Kind
			switch format {
			case "":
			case "single":
				kind = num.KindSingle
			case "double":
				kind = num.KindDouble
			default:
				return fmt.Errorf("invalid float format %q: must be single or double", format)
			}
			hex := num.NewPrintConfig(num.WithBase(16), num.WithRadix(true))
			dec := root.config.PrintConfig()
			for _, arg := range args {
				n, err := parser.ReadNumber(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				if format != "" {
					n, err = num.FloatFromRational(n, kind)
					if err != nil {
						return fmt.Errorf("%s: %w", arg, err)
					}
				}
				if err := writeBits(cmd.OutOrStdout(), n, dec, hex); err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "float", "",
		"Convert arguments to a float format (single|double)")

	return cmd
}

func writeBits(w io.Writer, n num.Number, dec, hex *num.PrintConfig) error {
	switch {
	case num.IsFloat(n):
		bits, err := num.FloatBits(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s bits=%s", dec.Sprint(n), n.Kind(), hex.Sprint(bits))
		mant, exp, sign, err := num.IntegerDecodeFloat(n)
		if err == nil {
			fmt.Fprintf(w, " sign=%s exponent=%s significand=%s", sign, exp, dec.Sprint(mant))
		}
		_, err = fmt.Fprintln(w)
		return err
	case num.IsInteger(n):
		length, err := num.IntegerLength(n)
		if err != nil {
			return err
		}
		count, err := num.Logcount(n)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s %s integer-length=%s logcount=%s\n", dec.Sprint(n), n.Kind(), length, count)
		return err
	default:
		return fmt.Errorf("%v is neither a float nor an integer", n)
	}
}
