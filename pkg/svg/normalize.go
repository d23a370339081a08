// Package svg rewrites raw SVG markup so it can be embedded as the body of a
// generated component.
//
// The rewrite is not an XML transform. Size stripping and style
// injection touch only the root <svg> opening tag; attribute renaming is a
// textual pass over attribute positions. Malformed markup passes through.
package svg

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// Mode selects the target syntax of the normalized markup
type Mode int

const (
	// ModeComponent targets React JSX: attribute names are camel-cased
	ModeComponent Mode = iota
	// ModeTemplate targets Astro templates: attribute names are kept
	ModeTemplate
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeComponent:
		return "component"
	case ModeTemplate:
		return "template"
	default:
		return "unknown"
	}
}

// SizeStyle binds rendered width and height to the --icon-size custom
// property set by the aggregator components.
const SizeStyle = `style={{ width: 'var(--icon-size)', height: 'var(--icon-size)' }}`

var (
	whitespace = regexp.MustCompile(`\s+`)
	rootTag    = regexp.MustCompile(`<svg[\s/>]`)
	widthAttr  = regexp.MustCompile(`\swidth="[^"]*"`)
	heightAttr = regexp.MustCompile(`\sheight="[^"]*"`)
)

// jsxAttributes maps the SVG attributes React spells differently
var jsxAttributes = buildJSXAttributes()

func buildJSXAttributes() map[string]string {
	m := map[string]string{
		"class":     "className",
		"xml:space": "xmlSpace",
	}
	for _, name := range []string{
		"clip-path",
		"clip-rule",
		"fill-opacity",
		"fill-rule",
		"stop-color",
		"stop-opacity",
	} {
		m[name] = strcase.ToLowerCamel(name)
	}
	return m
}

// jsxAttributePattern matches any renamed attribute in attribute position.
// Longer names come first so "clip-path" never matches as "clip".
var jsxAttributePattern = regexp.MustCompile(`(\s)(class|xml:space|clip-path|clip-rule|fill-opacity|fill-rule|stop-color|stop-opacity)=`)

// JSXAttributeName returns the React spelling of an SVG attribute name
func JSXAttributeName(name string) string {
	if renamed, ok := jsxAttributes[name]; ok {
		return renamed
	}
	return name
}

// Normalize rewrites raw SVG markup for the given mode:
//
//  1. whitespace runs collapse to one space, the result is trimmed, and
//     anything before the root <svg> tag (prolog, comments) is dropped;
//  2. the first width="..." and first height="..." of the root tag are
//     removed, attributes of inner elements are untouched;
//  3. ModeComponent only: attribute names are renamed for JSX;
//  4. SizeStyle is injected right after the root "<svg" token.
func Normalize(markup string, mode Mode) string {
	out := strings.TrimSpace(whitespace.ReplaceAllString(markup, " "))

	loc := rootTag.FindStringIndex(out)
	if loc != nil {
		out = out[loc[0]:]
		out = rewriteRootTag(out)
	}

	if mode == ModeComponent {
		out = jsxAttributePattern.ReplaceAllStringFunc(out, func(match string) string {
			name := strings.TrimSuffix(match[1:], "=")
			return match[:1] + JSXAttributeName(name) + "="
		})
	}

	if loc != nil {
		out = "<svg " + SizeStyle + out[len("<svg"):]
	}
	return out
}

// rewriteRootTag strips the first width and height attributes of the root
// opening tag. markup must start with the root tag.
func rewriteRootTag(markup string) string {
	end := strings.IndexByte(markup, '>')
	if end < 0 {
		end = len(markup)
	}
	tag, rest := markup[:end], markup[end:]

	tag = replaceFirst(widthAttr, tag)
	tag = replaceFirst(heightAttr, tag)
	return tag + rest
}

func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
