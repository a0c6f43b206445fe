package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/krds/internal/errors"
	"github.com/conneroisu/krds/internal/navtree"
)

var validateFormat formatValue = "text"

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a navigation file for authoring problems",
	Long: `Validate a navigation definition and report every problem found:

- Missing tree title
- Items without a label
- Leaf items without an href
- Items nested deeper than nav.max_depth
- More than one item marked active

Examples:
  krds validate                      # Validate nav.file
  krds validate menus/main.yml       # Validate a specific file
  krds validate --format json        # Output results as JSON`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().VarP(&validateFormat, "format", "f", "Output format (text, json)")
}

// ValidationProblem is one reported problem.
type ValidationProblem struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ValidationReport is the validate command's output.
type ValidationReport struct {
	File     string              `json:"file"`
	Nodes    int                 `json:"nodes"`
	Valid    bool                `json:"valid"`
	Problems []ValidationProblem `json:"problems"`
}

// errInvalidNavigation is returned so the process exits non-zero.
var errInvalidNavigation = stderrors.New("navigation file has problems")

func runValidateCommand(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args)
	if err != nil {
		return err
	}

	report := buildValidationReport(s.file, s.tree, s.cfg.Nav.MaxDepth)
	s.logger.Debug(cmd.Context(), "validated", "file", s.file, "problems", len(report.Problems))

	out := cmd.OutOrStdout()
	if validateFormat.JSON() {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		if report.Valid {
			fmt.Fprintf(out, "✓ %s: %d items, no problems\n", report.File, report.Nodes)
		} else {
			fmt.Fprintf(out, "✗ %s: %d problem(s)\n", report.File, len(report.Problems))
			for _, p := range report.Problems {
				if p.Path != "" {
					fmt.Fprintf(out, "  [%s] %s: %s\n", p.Code, p.Path, p.Message)
				} else {
					fmt.Fprintf(out, "  [%s] %s\n", p.Code, p.Message)
				}
			}
		}
	}

	if !report.Valid {
		return errInvalidNavigation
	}

	return nil
}

func buildValidationReport(file string, tree *navtree.Tree, maxDepth int) ValidationReport {
	report := ValidationReport{
		File:     file,
		Nodes:    tree.Len(),
		Problems: []ValidationProblem{},
	}

	for _, problem := range navtree.Problems(navtree.Validate(tree, maxDepth)) {
		vp := ValidationProblem{Code: errors.CodeOf(problem), Message: problem.Error()}
		var navErr *errors.NavError
		if stderrors.As(problem, &navErr) {
			vp.Path = navErr.Path
			vp.Message = navErr.Message
		}
		report.Problems = append(report.Problems, vp)
	}
	report.Valid = len(report.Problems) == 0

	return report
}
