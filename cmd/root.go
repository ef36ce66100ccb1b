package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/luthersystems/elpsnum/numlib"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	PrintBase  int
	PrintRadix bool
	LogLevel   string

	// set by the root command before any subcommand runs
	config *Config
	logger zerolog.Logger
}

// NewEnv returns an evaluation environment using the configured print
// settings.
func (opts *RootOptions) NewEnv() *numlib.Env {
	return numlib.NewEnv(numlib.WithPrintConfig(opts.config.PrintConfig()))
}

// NewRootCommand creates the root command for the elpsnum CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "elpsnum",
		Short: "Evaluate numeric expressions",
		Long: `Evaluate expressions over the numeric tower: fixnums, bignums,
ratios, single and double floats, and complex numbers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"YAML configuration file")
	cmd.PersistentFlags().IntVar(&opts.PrintBase, "base", 10,
		"Radix used to print integers and ratios")
	cmd.PersistentFlags().BoolVar(&opts.PrintRadix, "radix", false,
		"Print integers and ratios with a radix prefix")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", zerolog.LevelWarnValue,
		"Diagnostic log level")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewBitsCommand(opts))

	return cmd
}

// load reads the configuration file and applies any flags that were set
// explicitly.
func (opts *RootOptions) load(cmd *cobra.Command) error {
	config := DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		config, err = LoadConfig(opts.ConfigPath)
		if err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("base") {
		config.PrintBase = opts.PrintBase
	}
	if flags.Changed("radix") {
		config.PrintRadix = opts.PrintRadix
	}
	if flags.Changed("log-level") {
		config.LogLevel = opts.LogLevel
	}
	if err := config.Validate(); err != nil {
		return err
	}
	opts.config = config
	opts.logger = config.Logger(cmd.ErrOrStderr())
	opts.logger.Debug().
		Str("config", opts.ConfigPath).
		Int("print-base", config.PrintBase).
		Bool("print-radix", config.PrintRadix).
		Msg("configuration loaded")
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
