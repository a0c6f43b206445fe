package navtree

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/conneroisu/krds/internal/errors"
	"github.com/conneroisu/krds/internal/validation"
)

// Validate reports every configuration problem in t as a combined error;
// use multierr.Errors to split it. The resolver and the state store never
// call this: they degrade gracefully on malformed trees, and Validate exists
// for whoever produces the navigation file.
//
// maxDepth <= 0 means MaxDepth. A subtree that crosses the limit is reported
// once, at the first node past it.
func Validate(t *Tree, maxDepth int) error {
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}

	var err error
	if t == nil || strings.TrimSpace(t.Title) == "" {
		err = multierr.Append(err, errors.NewValidationError(
			errors.ErrCodeEmptyTitle, "navigation title is empty"))
	}
	if t != nil {
		if herr := validation.ValidateHref(t.Href); herr != nil {
			err = multierr.Append(err, errors.NewValidationError(
				errors.ErrCodeUnsafeHref, fmt.Sprintf("title href: %v", herr)))
		}
	}

	var firstActive Path
	Walk(t, func(p Path, n *Node) bool {
		key := p.String()

		if strings.TrimSpace(n.Label) == "" {
			err = multierr.Append(err, errors.NewValidationError(
				errors.ErrCodeEmptyLabel, "node label is empty").WithPath(key))
		}

		if !n.IsBranch() && n.Href == "" {
			err = multierr.Append(err, errors.NewValidationError(
				errors.ErrCodeMissingHref,
				fmt.Sprintf("link %q has no href and no children", n.Label)).WithPath(key))
		}

		if herr := validation.ValidateHref(n.Href); herr != nil {
			err = multierr.Append(err, errors.NewValidationError(
				errors.ErrCodeUnsafeHref,
				fmt.Sprintf("node %q: %v", n.Label, herr)).WithPath(key))
		}

		if p.Depth() == maxDepth+1 {
			err = multierr.Append(err, errors.NewValidationError(
				errors.ErrCodeTooDeep,
				fmt.Sprintf("node %q is at depth %d, limit is %d", n.Label, p.Depth(), maxDepth)).
				WithPath(key).
				WithContext("depth", p.Depth()).
				WithContext("max_depth", maxDepth))
		}

		if n.Active {
			if firstActive == nil {
				firstActive = p
			} else {
				err = multierr.Append(err, errors.NewValidationError(
					errors.ErrCodeMultipleActive,
					fmt.Sprintf("node %q is active but %s already is", n.Label, firstActive)).
					WithPath(key).
					WithContext("first_active", firstActive.String()))
			}
		}

		return true
	})

	return err
}

// Problems splits the result of Validate into its individual errors.
func Problems(err error) []error {
	return multierr.Errors(err)
}
