package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assetsweep",
	Short: "Find unused assets in a Flutter-style project",
	Long: `Assetsweep statically scans a project for declared assets (images,
vector graphics, animation files) that are never referenced from its own
source code, by constant identifier or by literal path, so they can be
safely removed.

The scan is purely textual: no code is executed, dynamic paths are not
resolved, and any occurrence of an identifier or path counts as a use.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
