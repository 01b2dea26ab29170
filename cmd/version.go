// File: cmd/version.go
package cmd

import (
	"gocat/pkg/version"

	"github.com/spf13/cobra"
)

// addVersion enables --version on the root command. A version subcommand
// would shadow a file named "version", so only the flag is offered.
func addVersion(rootCmd *cobra.Command) {
	v := version.Get()
	rootCmd.Version = v.Version
	rootCmd.SetVersionTemplate(v.String() + "\n")
}
