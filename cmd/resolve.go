package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/krds/internal/navstate"
)

var resolveFlags navFlags

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Print the branches that start expanded",
	Long: `Resolve which branches a freshly mounted menu opens: every ancestor of
the current item and nothing else.

Examples:
  krds resolve                                   # Use nav.file and its active item
  krds resolve --current /insurance/fee/local    # Resolve for a route
  krds resolve --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	addNavFlags(resolveCmd, &resolveFlags)
}

// OpenBranch is one entry of the resolved open set.
type OpenBranch struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Resolution is the resolve command's output.
type Resolution struct {
	Active string       `json:"active,omitempty"`
	Open   []OpenBranch `json:"open"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args)
	if err != nil {
		return err
	}

	tree := s.applyCurrent(cmd.Context(), s.tree, s.currentHref(resolveFlags.current))
	c := navstate.NewController(tree, navstate.WithLogger(s.logger))

	res := resolution(c)
	out := cmd.OutOrStdout()
	if resolveFlags.format.JSON() {
		return writeJSON(out, res)
	}

	if res.Active == "" {
		fmt.Fprintln(out, "no active item")
	}
	for _, b := range res.Open {
		fmt.Fprintf(out, "%s\t%s\n", b.Path, b.Label)
	}

	return nil
}

func resolution(c *navstate.Controller) Resolution {
	res := Resolution{Open: []OpenBranch{}}
	if active, ok := c.Active(); ok {
		res.Active = active.String()
	}

	for _, p := range c.OpenPaths().Paths() {
		b := OpenBranch{Path: p.String()}
		if n, ok := c.Tree().At(p); ok {
			b.Label = n.Label
		}
		res.Open = append(res.Open, b)
	}

	return res
}
