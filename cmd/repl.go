package cmd

import (
	"github.com/spf13/cobra"

	"github.com/luthersystems/elpsnum/repl"
)

// NewReplCommand creates the repl command.
func NewReplCommand(root *RootOptions) *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.RunRepl(prompt,
				repl.WithEnv(root.NewEnv()),
				repl.WithLogger(root.logger),
				repl.WithStderr(cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "num> ", "Input prompt")

	return cmd
}
