// Package emitter renders the generated artifacts: the icon type union, the
// stylesheet, and for each component kind the per-icon files plus the
// aggregator component. Emitters are pure; they never touch the filesystem.
package emitter

import (
	"fmt"
	"path"
	"strings"

	"github.com/ideamans/iconforge/pkg/icon"
	"github.com/ideamans/iconforge/pkg/policy"
	"github.com/ideamans/iconforge/pkg/svg"
)

// Class groups artifacts for progress reporting. One success line is logged
// per class once all of its artifacts are written.
type Class string

const (
	ClassTypes               Class = "types"
	ClassStylesheet          Class = "stylesheet"
	ClassComponentFiles      Class = "component-files"
	ClassComponentAggregator Class = "component-aggregator"
	ClassTemplateFiles       Class = "template-files"
	ClassTemplateAggregator  Class = "template-aggregator"
)

// SuccessMessage is logged when every artifact of the class was written
func (c Class) SuccessMessage() string {
	switch c {
	case ClassTypes:
		return "Icon types written successfully"
	case ClassStylesheet:
		return StylesheetFile + " written successfully"
	case ClassComponentFiles:
		return "[Icon].tsx files written successfully"
	case ClassComponentAggregator:
		return "Icon.tsx written successfully"
	case ClassTemplateFiles:
		return "[Icon].astro files written successfully"
	case ClassTemplateAggregator:
		return "Icon.astro written successfully"
	default:
		return string(c) + " written successfully"
	}
}

// Artifact is one file to write
type Artifact struct {
	RelPath     string // slash-separated, relative to the output path
	Content     string
	Class       Class
	Description string
}

// Options carries the settings shared by the aggregator emitters
type Options struct {
	// ImportBase prefixes every import of a per-icon file
	ImportBase string
	// PublicDir is the web root the stylesheet mask URLs are relative to
	PublicDir string
}

// ImportBase rewrites outputPath into an import specifier by replacing the
// first occurrence of source with alias.
//
//	ImportBase("/src/components/Icon", "/src/components", "@components") == "@components/Icon"
func ImportBase(outputPath, source, alias string) string {
	if source == "" {
		return outputPath
	}
	return strings.Replace(outputPath, source, alias, 1)
}

// ComponentEmitter renders one component kind
type ComponentEmitter interface {
	// Kind is the policy kind this emitter renders
	Kind() policy.Kind
	// Subfolder is the per-group folder holding the per-icon files
	Subfolder() string
	// Mode is the normalizer mode applied to per-icon markup
	Mode() svg.Mode
	// IconFile renders the per-icon file from raw svg markup
	IconFile(group icon.GroupEntry, file icon.FileEntry, markup string) Artifact
	// Aggregator renders the single component that looks icons up by key
	Aggregator(groups []icon.GroupEntry, opts Options) (Artifact, error)
}

// ForDecision returns the component emitters the decision enables, component
// kind first.
func ForDecision(d policy.Decision) []ComponentEmitter {
	var emitters []ComponentEmitter
	if d.Enabled(policy.KindComponent) {
		emitters = append(emitters, &ReactEmitter{})
	}
	if d.Enabled(policy.KindTemplate) {
		emitters = append(emitters, &AstroEmitter{Solo: d.Solo})
	}
	return emitters
}

// Directories lists the directories the per-icon files of e are written to,
// parents first.
func Directories(e ComponentEmitter, groups []icon.GroupEntry) []string {
	dirs := make([]string, 0, len(groups)*2)
	for _, g := range groups {
		dirs = append(dirs, g.Directory, path.Join(g.Directory, e.Subfolder()))
	}
	return dirs
}

// objectKey renders an icon key as an object literal key
func objectKey(fileName string) string {
	if icon.IsIdentifier(fileName) {
		return fileName
	}
	return fmt.Sprintf("'%s'", fileName)
}

// lookupEntries renders the body of the key to component lookup object
func lookupEntries(groups []icon.GroupEntry) []string {
	var lines []string
	for _, g := range groups {
		lines = append(lines, "  // "+g.Directory)
		for _, f := range g.Files {
			lines = append(lines, fmt.Sprintf("  %s: %s,", objectKey(f.FileName), f.ComponentName))
		}
	}
	return lines
}

// importLines renders one import statement per file via format, which
// receives the component name and the import specifier.
func importLines(groups []icon.GroupEntry, format func(componentName, specifier string) string, specifier func(g icon.GroupEntry, f icon.FileEntry) string) []string {
	var lines []string
	for _, g := range groups {
		lines = append(lines, "// "+g.Directory)
		for _, f := range g.Files {
			lines = append(lines, format(f.ComponentName, specifier(g, f)))
		}
	}
	return lines
}
