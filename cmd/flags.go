package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/krds/internal/navtree"
)

// formatValue is a --format flag restricted to text and json.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Type() string { return "format" }

func (f *formatValue) Set(val string) error {
	switch strings.ToLower(val) {
	case "text", "json":
		*f = formatValue(strings.ToLower(val))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", val)
	}
}

// JSON reports whether JSON output was requested.
func (f *formatValue) JSON() bool { return *f == "json" }

// pathListValue collects node paths such as "1.1" from repeated or
// comma-separated --open flags.
type pathListValue struct {
	paths []navtree.Path
}

var _ pflag.Value = (*pathListValue)(nil)

func (p *pathListValue) String() string {
	parts := make([]string, len(p.paths))
	for i, path := range p.paths {
		parts[i] = path.String()
	}

	return "[" + strings.Join(parts, ",") + "]"
}

func (p *pathListValue) Type() string { return "paths" }

func (p *pathListValue) Set(val string) error {
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		path, err := navtree.ParsePath(part)
		if err != nil {
			return err
		}
		p.paths = append(p.paths, path)
	}

	return nil
}

// navFlags are shared by the commands that resolve a tree against a route.
type navFlags struct {
	current string
	format  formatValue
}

func addNavFlags(cmd *cobra.Command, flags *navFlags) {
	flags.format = "text"
	cmd.Flags().StringVarP(&flags.current, "current", "c", "", "href of the current page (default nav.current)")
	cmd.Flags().VarP(&flags.format, "format", "f", "Output format (text, json)")
}
