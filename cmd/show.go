package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/conneroisu/krds/internal/navstate"
	"github.com/conneroisu/krds/internal/navtree"
)

var (
	showFlags navFlags
	showOpen  pathListValue
	showAll   bool
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Draw the menu as it renders",
	Long: `Draw the side navigation as an outline: ▾ marks an expanded branch,
▸ a collapsed one, and the current item is emphasised. Items inside a
collapsed branch are not shown.

Examples:
  krds show --current /pension/history
  krds show --open 2 --open 1.1         # Also expand branches by path
  krds show --all                       # Expand every branch
  krds show --format json               # Emit the full row model`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addNavFlags(showCmd, &showFlags)
	showCmd.Flags().Var(&showOpen, "open", "additional branch paths to expand, e.g. 1.1 (repeatable)")
	showCmd.Flags().BoolVar(&showAll, "all", false, "expand every branch")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args)
	if err != nil {
		return err
	}

	tree := s.applyCurrent(cmd.Context(), s.tree, s.currentHref(showFlags.current))
	c := navstate.NewController(tree, navstate.WithLogger(s.logger))

	extra := navtree.NewPathSet(showOpen.paths...)
	if showAll {
		extra = extra.Union(navtree.Branches(tree))
	}
	c.Store().EnsureExpanded(extra)

	out := cmd.OutOrStdout()
	if showFlags.format.JSON() {
		return writeJSON(out, c.View())
	}

	renderOutline(out, tree.Title, c.View())

	return nil
}

// outlineStyles holds the styles used for one output stream.
type outlineStyles struct {
	title   lipgloss.Style
	current lipgloss.Style
	trail   lipgloss.Style
	branch  lipgloss.Style
	inert   lipgloss.Style
	link    lipgloss.Style
}

func newOutlineStyles(out io.Writer) outlineStyles {
	r := lipgloss.NewRenderer(out)

	return outlineStyles{
		title:   r.NewStyle().Bold(true).Underline(true),
		current: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#256EF4")),
		trail:   r.NewStyle().Foreground(lipgloss.Color("#0B50D0")),
		branch:  r.NewStyle(),
		inert:   r.NewStyle().Faint(true),
		link:    r.NewStyle(),
	}
}

// renderOutline writes the visible rows, indented two spaces per level
// below the section level.
func renderOutline(out io.Writer, title string, rows []navstate.Row) {
	styles := newOutlineStyles(out)

	if title != "" {
		fmt.Fprintln(out, styles.title.Render(title))
	}

	for _, row := range navstate.VisibleRows(rows) {
		indent := strings.Repeat("  ", row.Depth-2)

		marker := "•"
		if row.Branch {
			marker = "▸"
			if row.Open {
				marker = "▾"
			}
		}

		style := styles.link
		switch {
		case row.Current:
			style = styles.current
		case row.ActiveTrail:
			style = styles.trail
		case row.Branch:
			style = styles.branch
		case !row.Navigable:
			style = styles.inert
		}

		line := fmt.Sprintf("%s%s %s", indent, marker, style.Render(row.Label))
		if row.Href != "" {
			line += "  " + styles.inert.Render(row.Href)
		}
		if row.Current {
			line += "  ←"
		}
		fmt.Fprintln(out, line)
	}
}
