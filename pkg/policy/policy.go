// Package policy decides which artifact kinds a generation run emits.
//
// The universe has two component kinds: React component modules ("tsx") and
// Astro template files ("astro"). The type union is always emitted and is not
// part of the decision.
package policy

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is one selectable component output
type Kind string

const (
	// KindComponent is the React component module set (.tsx)
	KindComponent Kind = "tsx"
	// KindTemplate is the Astro template file set (.astro)
	KindTemplate Kind = "astro"
)

// Kinds lists every known kind in emission order
var Kinds = []Kind{KindComponent, KindTemplate}

// ErrUnknownKind is returned for include/exclude values outside Kinds
var ErrUnknownKind = errors.New("unknown component kind")

// ParseKind maps a config value to a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindComponent:
		return KindComponent, nil
	case KindTemplate:
		return KindTemplate, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: tsx, astro)", ErrUnknownKind, s)
	}
}

// ParseKinds parses every value and reports the first unknown one
func ParseKinds(values []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(values))
	for _, v := range values {
		k, err := ParseKind(v)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Decision is the outcome of evaluating include/exclude for one run
type Decision struct {
	Stylesheet bool // emit Icon.module.scss
	Components bool // emit per-icon .tsx files and Icon.tsx
	Templates  bool // emit per-icon .astro files and Icon.astro
	Solo       bool // Icon.astro inlines the stylesheet instead of importing it
}

// Enabled reports whether the artifact set for k is emitted
func (d Decision) Enabled(k Kind) bool {
	switch k {
	case KindComponent:
		return d.Components
	case KindTemplate:
		return d.Templates
	default:
		return false
	}
}

// String summarizes the decision for logs
func (d Decision) String() string {
	return fmt.Sprintf("stylesheet=%t tsx=%t astro=%t solo=%t", d.Stylesheet, d.Components, d.Templates, d.Solo)
}

// Decide evaluates the legacy include/exclude table.
//
// The table is kept as legacy configurations expect it, including its
// asymmetries: naming a single kind in include behaves like excluding the
// other one, and the stylesheet module is dropped whenever tsx is excluded
// or astro is the only include. An empty list is the same as no list.
func Decide(include, exclude []Kind) Decision {
	has := func(list []Kind, k Kind) bool {
		for _, v := range list {
			if v == k {
				return true
			}
		}
		return false
	}

	hasAstro := has(include, KindTemplate) && !has(exclude, KindTemplate)
	hasTsx := has(include, KindComponent) && !has(exclude, KindComponent)
	noAstro := has(exclude, KindTemplate)
	noTsx := has(exclude, KindComponent)
	onlyAstro := len(include) == 1 && hasAstro
	onlyTsx := len(include) == 1 && hasTsx
	allowAll := (len(include) == 0 && len(exclude) == 0) || (hasAstro && hasTsx)

	return Decision{
		Stylesheet: (allowAll || onlyTsx || !onlyAstro) && !noTsx,
		Components: (allowAll || hasTsx || !noTsx) && !onlyAstro,
		Templates:  (allowAll || hasAstro || !noAstro) && !onlyTsx,
		Solo:       (onlyAstro || noTsx) && !noAstro,
	}
}
