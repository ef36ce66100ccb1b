package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type runOptions struct {
	expression bool
	print      bool
}

// NewRunCommand creates the run command.
func NewRunCommand(root *RootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] FILE|EXPR...",
		Short: "Evaluate numeric expressions",
		Long:  `Evaluate numeric expressions supplied via the command line or a file.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := runReadExpressions(args, opts.expression)
			if err != nil {
				return err
			}

			env := root.NewEnv()
			out := cmd.OutOrStdout()
			for i := range exprs {
				vals, err := env.Load(exprs[i])
				if opts.print {
					for _, v := range vals {
						if err := env.Format(out, v); err != nil {
							return err
						}
						fmt.Fprintln(out)
					}
				}
				if err != nil {
					root.logger.Debug().Err(err).Str("source", args[i]).Msg("evaluation failed")
					return fmt.Errorf("%s: %w", args[i], err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.expression, "expression", "e", false,
		"Interpret arguments as numeric expressions")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false,
		"Print expression values to stdout")

	return cmd
}

func runReadExpressions(args []string, expression bool) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if expression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}
