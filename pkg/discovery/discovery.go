// Package discovery resolves configured input paths into SVG file lists.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ideamans/iconforge/pkg/shared/validation"
)

var (
	// ErrNoMatches is returned for an input path that matches no svg file
	ErrNoMatches = errors.New("input path matched no svg files")

	// ErrBadPattern is returned for an input path that is not a valid glob
	ErrBadPattern = errors.New("invalid input glob")
)

// Match is the result for one configured input path
type Match struct {
	Input   string   // input path as configured
	Pattern string   // glob evaluated against the project root
	Paths   []string // slash-separated, relative to the project root, sorted
}

// PatternFor turns an input path into a glob relative to the project root.
//
// A plain directory prefix such as "/public/icons" becomes
// "public/icons/*.svg": only the directory's own files are matched, never
// nested directories. An input that already contains glob syntax is used
// as is.
func PatternFor(input string) string {
	p := strings.TrimLeft(strings.TrimSpace(input), "/")
	if hasMeta(p) {
		return p
	}
	p = path.Clean(p)
	if p == "." {
		return "*.svg"
	}
	if strings.EqualFold(path.Ext(p), ".svg") {
		return p
	}
	return p + "/*.svg"
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, `*?[{\`)
}

// Discover evaluates every input path against fsys, keeping input order.
//
// Problems are collected rather than returned one at a time: the error is a
// *validation.Error listing every input that was invalid or matched nothing.
// The returned matches always have one entry per input.
func Discover(fsys fs.FS, inputs []string) ([]Match, error) {
	errs := validation.New()
	matches := make([]Match, 0, len(inputs))

	for _, input := range inputs {
		m := Match{Input: input, Pattern: PatternFor(input)}

		if !doublestar.ValidatePattern(m.Pattern) {
			errs.Add(fmt.Errorf("%w: %q", ErrBadPattern, input))
			matches = append(matches, m)
			continue
		}

		found, err := doublestar.Glob(fsys, m.Pattern, doublestar.WithFilesOnly())
		if err != nil {
			errs.Add(fmt.Errorf("glob %q: %w", input, err))
			matches = append(matches, m)
			continue
		}

		for _, p := range found {
			if strings.EqualFold(path.Ext(p), ".svg") {
				m.Paths = append(m.Paths, p)
			}
		}
		slices.Sort(m.Paths)

		if len(m.Paths) == 0 {
			errs.Add(fmt.Errorf("%w: %q (pattern %s)", ErrNoMatches, input, m.Pattern))
		}
		matches = append(matches, m)
	}

	return matches, errs.ErrorOrNil()
}

// PathLists returns the path list of every match, in order
func PathLists(matches []Match) [][]string {
	lists := make([][]string, 0, len(matches))
	for _, m := range matches {
		lists = append(lists, m.Paths)
	}
	return lists
}
