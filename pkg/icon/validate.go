package icon

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/ideamans/iconforge/pkg/shared/validation"
)

var (
	// ErrEmptyGroup is returned for a group without files
	ErrEmptyGroup = errors.New("group has no svg files")

	// ErrEmptyDirectory is returned when a group label cannot be derived
	ErrEmptyDirectory = errors.New("group directory label is empty")

	// ErrInvalidIdentifier is returned when a derived component name is not a JS identifier
	ErrInvalidIdentifier = errors.New("invalid component identifier")

	// ErrNameCollision is returned when two files map to the same icon key or component name
	ErrNameCollision = errors.New("icon name collision")
)

// jsIdentifier matches identifiers usable as an import binding
var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether s can be used unquoted as a JS identifier or
// object key
func IsIdentifier(s string) bool {
	return jsIdentifier.MatchString(s)
}

// Validate checks the naming invariants the generated artifacts rely on.
//
// Icon keys and component names must be unique across all groups, not only
// within one: the type union, the lookup object and the aggregator imports
// all live in a single module. Every problem is reported, each collision
// naming both source files.
func Validate(groups []GroupEntry) error {
	errs := validation.New()

	keys := make(map[string]FileEntry)
	components := make(map[string]FileEntry)

	for i, g := range groups {
		if len(g.Files) == 0 {
			errs.Add(fmt.Errorf("group %d (%q): %w", i+1, g.Directory, ErrEmptyGroup))
			continue
		}
		if g.Directory == "" {
			errs.Add(fmt.Errorf("group %d (%s): %w", i+1, g.Files[0].Path, ErrEmptyDirectory))
		}

		for _, f := range g.Files {
			if !IsIdentifier(f.ComponentName) {
				errs.Add(fmt.Errorf("%s: %w: %q", f.Path, ErrInvalidIdentifier, f.ComponentName))
			}
			if prev, ok := keys[f.FileName]; ok {
				errs.Add(fmt.Errorf("%w: icon key %q used by %s and %s", ErrNameCollision, f.FileName, prev.Path, f.Path))
			} else {
				keys[f.FileName] = f
			}
			if prev, ok := components[f.ComponentName]; ok && prev.FileName != f.FileName {
				errs.Add(fmt.Errorf("%w: component %s derived from %s and %s", ErrNameCollision, f.ComponentName, prev.Path, f.Path))
			} else if !ok {
				components[f.ComponentName] = f
			}
		}
	}

	return errs.ErrorOrNil()
}
