package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/krds/internal/navstate"
	"github.com/conneroisu/krds/internal/navtree"
	"github.com/conneroisu/krds/internal/watcher"
)

var watchFlags navFlags

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-resolve the menu whenever the navigation file changes",
	Long: `Watch the navigation file and re-sync a mounted menu on every save.
Branches you would have expanded stay expanded; when the current item moves,
its ancestors are opened. The open set is printed after each reload.

Examples:
  krds watch
  krds watch menus/main.yml --current /pension/history
  KRDS_WATCH_DEBOUNCE=1s krds watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addNavFlags(watchCmd, &watchFlags)
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newNavReloader(ctx, s, s.currentHref(watchFlags.current), cmd.OutOrStdout())
	r.json = watchFlags.format.JSON()
	r.print(nil)

	fileWatcher, err := watcher.NewFileWatcher(s.cfg.Watch.Debounce, watcher.WithLogger(s.logger))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fileWatcher.Stop()

	fileWatcher.AddFilter(watcher.NoBackupFilter)
	if err := fileWatcher.WatchFile(s.file); err != nil {
		return err
	}
	fileWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		for _, event := range events {
			s.logger.Debug(ctx, "navigation file changed", "type", event.Type.String(), "path", event.Path)
		}
		return r.reload(ctx)
	})

	if err := fileWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	s.logger.Info(ctx, "watching navigation file", "file", s.file, "debounce", s.cfg.Watch.Debounce.String())

	<-ctx.Done()

	return nil
}

// navReloader keeps one Controller in sync with the file on disk. It is
// driven from the watcher's single handler goroutine.
type navReloader struct {
	s       *session
	current string
	ctrl    *navstate.Controller
	out     io.Writer
	json    bool
}

func newNavReloader(ctx context.Context, s *session, current string, out io.Writer) *navReloader {
	tree := s.applyCurrent(ctx, s.tree, current)

	return &navReloader{
		s:       s,
		current: current,
		ctrl:    navstate.NewController(tree, navstate.WithLogger(s.logger)),
		out:     out,
	}
}

// reload re-reads the file and re-syncs the controller. A file that fails
// to load leaves the previous tree in place.
func (r *navReloader) reload(ctx context.Context) error {
	tree, err := navtree.LoadFile(r.s.file)
	if err != nil {
		return fmt.Errorf("reload skipped, keeping previous tree: %w", err)
	}

	if problems := navtree.Problems(navtree.Validate(tree, r.s.cfg.Nav.MaxDepth)); len(problems) > 0 {
		r.s.logger.Warn(ctx, problems[0], "navigation file has problems", "count", len(problems))
	}

	before := r.ctrl.OpenPaths()
	r.ctrl.SetTree(r.s.applyCurrent(ctx, tree, r.current))
	r.print(&before)

	return nil
}

// print writes the open set and, when before is set, what was opened since.
func (r *navReloader) print(before *navtree.PathSet) {
	if r.json {
		_ = writeJSON(r.out, resolution(r.ctrl))
		return
	}

	open := r.ctrl.OpenPaths()

	active := "none"
	if p, ok := r.ctrl.Active(); ok {
		active = p.String()
	}

	list := "(none)"
	if open.Len() > 0 {
		list = strings.Join(open.Strings(), ", ")
	}
	fmt.Fprintf(r.out, "active: %s  open: %s\n", active, list)

	if before == nil {
		return
	}
	for _, p := range open.Paths() {
		if !before.Has(p) {
			fmt.Fprintf(r.out, "  + %s %s\n", p.String(), openedLabel(r.ctrl.Tree(), p))
		}
	}
}

// openedLabel names the node at p, falling back to the path itself.
func openedLabel(tree *navtree.Tree, p navtree.Path) string {
	if n, ok := tree.At(p); ok {
		return n.Label
	}

	return p.String()
}
