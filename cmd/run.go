package cmd

import (
	"gocat/pkg/cat"
	"gocat/pkg/config"
	"gocat/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// run merges the command line with the defaults layer, resolves the
// configuration once and streams every source to the command's output.
func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := logging.Logger

	flags := opts.flags
	flags.Files = args
	resolved := config.Resolve(flags.Merge(opts.settings.Defaults))

	logger.Debug("Resolved configuration",
		zap.Strings("files", resolved.Files()),
		zap.Bool("showEnds", resolved.ShowEnds()),
		zap.Bool("showTabs", resolved.ShowTabs()),
		zap.Bool("squeezeBlank", resolved.SqueezeBlank()),
		zap.Stringer("numbering", resolved.Numbering()),
		zap.Bool("fastPath", resolved.FastPathEligible()))

	return cat.New(resolved, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
}
