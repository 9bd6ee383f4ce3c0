package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra/cli/internal/update"
	"github.com/satishbabariya/richcobra/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

var versionCheckUpdate bool
var versionFull bool

func init() {
	versionCmd.Flags().BoolVar(&versionCheckUpdate, "check-update", false, "Check whether a newer release exists")
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Print build metadata as well")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	if versionFull {
		fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
	}

	if versionCheckUpdate {
		return update.CheckForUpdates(info.Version)
	}
	return nil
}
