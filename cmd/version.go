package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/krds/internal/version"
)

var (
	versionFormat   formatValue = "text"
	versionShort    bool
	versionDetailed bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for krds including the semantic version,
git commit, build time, Go version and target platform.

Examples:
  krds version                 # Show version
  krds version --detailed      # Show detailed version info
  krds version --format json   # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().VarP(&versionFormat, "format", "f", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed version information")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	switch {
	case versionFormat.JSON():
		return writeJSON(out, info)
	case versionShort:
		fmt.Fprintln(out, info.Short())
	case versionDetailed:
		fmt.Fprintln(out, info.Detailed())
	default:
		line := "krds " + info.Short()
		if info.Dirty {
			line += " (dirty)"
		}
		fmt.Fprintf(out, "%s %s\n", line, info.Platform)
	}

	return nil
}
