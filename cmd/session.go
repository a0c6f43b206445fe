package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/krds/internal/config"
	"github.com/conneroisu/krds/internal/logging"
	"github.com/conneroisu/krds/internal/navtree"
)

// session is the loaded state every navigation command starts from.
type session struct {
	cfg    *config.Config
	file   string
	tree   *navtree.Tree
	logger logging.Logger
}

// openSession loads the configuration and the navigation file named by the
// first argument or nav.file.
func openSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc).WithComponent("cli")

	file := cfg.Nav.File
	if len(args) > 0 {
		file = args[0]
	}

	tree, err := navtree.LoadFile(file)
	if err != nil {
		return nil, err
	}
	logger.Debug(cmd.Context(), "navigation loaded", "file", file, "nodes", tree.Len())

	return &session{cfg: cfg, file: file, tree: tree, logger: logger}, nil
}

// currentHref picks the route from the flag, then nav.current.
func (s *session) currentHref(flag string) string {
	if flag != "" {
		return flag
	}

	return s.cfg.Nav.Current
}

// applyCurrent marks the node matching href as the only active one. With
// no href the active flags from the file are kept.
func (s *session) applyCurrent(ctx context.Context, tree *navtree.Tree, href string) *navtree.Tree {
	if href == "" {
		return tree
	}

	marked, ok := navtree.WithCurrent(tree, href)
	if !ok {
		s.logger.Warn(ctx, nil, "route not in navigation", "href", href, "file", s.file)
	}

	return marked
}
