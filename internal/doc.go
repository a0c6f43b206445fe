// Package internal contains the implementation packages of krds.
//
// # Package Organization
//
//   - navtree: navigation tree model, node paths, the expansion resolver,
//     breadcrumb trails, validation and the YAML/JSON codec
//   - navstate: per-instance expansion state store, the row view-model
//     and the Controller that re-syncs state on route changes
//   - validation: href safety checks applied by navtree.Validate
//   - config: Viper-backed settings (.krds.yml, KRDS_ environment)
//   - logging: structured logging on log/slog
//   - errors: the NavError type and error codes
//   - watcher: debounced fsnotify watching of the navigation file
//   - version: build identity
//   - testutils: fixtures shared by the package tests
//
// # Data Flow
//
// The CLI loads a navigation file through navtree.LoadFile, optionally marks
// the current route with navtree.WithCurrent, and hands the tree to a
// navstate.Controller. The controller seeds its store from
// navtree.ResolveInitialExpansion and, on every later tree, keeps manual
// expansions while opening the ancestors of a newly active node.
//
// Nothing in navtree or navstate is safe for concurrent use. The watcher
// delivers reloads on a single goroutine so one controller can be driven
// from it without locking.
package internal
