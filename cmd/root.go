package cmd

import (
	"fmt"
	"os"

	"gocat/pkg/config"
	"gocat/pkg/logging"
	"gocat/pkg/version"

	"github.com/spf13/cobra"
)

// appName is used for the logger fields and error prefix.
const appName = "gocat"

// rootOptions collects everything the root command parses.
type rootOptions struct {
	flags      config.Flags    // Line options from the command line.
	configPath string          // Optional defaults file.
	debug      bool            // Development logging.
	settings   config.Settings // Loaded in PersistentPreRunE.
}

// NewRootCmd builds the gocat command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gocat [OPTION]... [FILE]...",
		Short: "Concatenate FILE(s) to standard output",
		Long: `Concatenate FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := rootCmd.Flags()
	f.SortFlags = false
	f.BoolVarP(&opts.flags.ShowAll, "show-all", "A", false, "equivalent to -vET")
	f.BoolVarP(&opts.flags.NumberNonblank, "number-nonblank", "b", false, "number nonempty output lines, overrides -n")
	f.BoolVarP(&opts.flags.ShowEndsAndNonprinting, "show-ends-and-nonprinting", "e", false, "equivalent to -vE")
	f.BoolVarP(&opts.flags.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	f.BoolVarP(&opts.flags.Number, "number", "n", false, "number all output lines")
	f.BoolVarP(&opts.flags.SqueezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	f.BoolVarP(&opts.flags.ShowTabs, "show-tabs", "T", false, "display a leading TAB character as ^I")
	f.BoolVarP(&opts.flags.Ignored, "unbuffered", "u", false, "(ignored)")
	f.BoolVarP(&opts.flags.ShowNonprinting, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	f.StringVar(&opts.configPath, "config", "", "defaults file (.yaml, .yml or .toml); overrides $"+config.ConfigEnv)
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nTry '%s --help' for more information", err, appName)
	})
	addVersion(rootCmd)

	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the defaults layer and configures logging.
func setup(opts *rootOptions) error {
	path := opts.configPath
	if path == "" {
		path = os.Getenv(config.ConfigEnv)
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	opts.settings = settings

	if err := logging.Setup(opts.debug || settings.Debug, appName, version.Version); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
