package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/krds/internal/navstate"
	"github.com/conneroisu/krds/internal/navtree"
)

var (
	trailFlags    navFlags
	trailMaxItems int
	trailBefore   int
)

var trailCmd = &cobra.Command{
	Use:   "trail [file]",
	Short: "Print the breadcrumb trail of the current item",
	Long: `Print the breadcrumb from the navigation title down to the current item.
Long trails can be collapsed around an ellipsis with --max-items.

Examples:
  krds trail --current /insurance/fee/local
  krds trail --current /insurance/fee/local --max-items 3
  krds trail --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrail,
}

func init() {
	rootCmd.AddCommand(trailCmd)
	addNavFlags(trailCmd, &trailFlags)
	trailCmd.Flags().IntVarP(&trailMaxItems, "max-items", "m", 0, "collapse trails longer than this, ellipsis included (0 disables)")
	trailCmd.Flags().IntVar(&trailBefore, "before", 1, "crumbs kept before the ellipsis")
}

func runTrail(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args)
	if err != nil {
		return err
	}

	tree := s.applyCurrent(cmd.Context(), s.tree, s.currentHref(trailFlags.current))
	c := navstate.NewController(tree, navstate.WithLogger(s.logger))

	crumbs := navtree.CollapseTrail(c.Breadcrumb(), navtree.CollapseOptions{
		MaxItems: trailMaxItems,
		Before:   trailBefore,
	})

	out := cmd.OutOrStdout()
	if trailFlags.format.JSON() {
		if crumbs == nil {
			crumbs = []navtree.Crumb{}
		}
		return writeJSON(out, crumbs)
	}

	labels := make([]string, len(crumbs))
	for i, crumb := range crumbs {
		labels[i] = crumb.Label
	}
	fmt.Fprintln(out, strings.Join(labels, " › "))

	return nil
}
