// Package icon turns discovered SVG paths into the naming metadata every
// emitter shares: a group label per input path and, per file, the icon key
// and the component identifier.
package icon

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// componentSuffix is appended to every derived component identifier
const componentSuffix = "Icon"

// FileEntry is one discovered SVG
type FileEntry struct {
	Path          string // slash-separated path relative to the project root
	FileName      string // base name without extension; the icon key
	ComponentName string // PascalCase identifier, e.g. ArrowLeftIcon
}

// GroupEntry is one input path's worth of files
type GroupEntry struct {
	Directory string      // group label and output subfolder name
	Files     []FileEntry // discovery order
}

// ComponentName derives the component identifier for an icon key: the key is
// split on "-", the first character of each segment is upper-cased, the
// segments are joined and "Icon" is appended.
//
//	ComponentName("arrow-left") == "ArrowLeftIcon"
//	ComponentName("sun")        == "SunIcon"
func ComponentName(fileName string) string {
	var sb strings.Builder
	for _, segment := range strings.Split(fileName, "-") {
		if segment == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(segment)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(segment[size:])
	}
	sb.WriteString(componentSuffix)
	return sb.String()
}

// FileNameOf returns the base name of p without its extension
func FileNameOf(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// DirectoryOf returns the second-to-last slash-delimited segment of p, or ""
// when p has fewer than two segments.
func DirectoryOf(p string) string {
	segments := strings.Split(p, "/")
	if len(segments) < 2 {
		return ""
	}
	return segments[len(segments)-2]
}

// NewFileEntry builds the entry for a single path
func NewFileEntry(p string) FileEntry {
	fileName := FileNameOf(p)
	return FileEntry{
		Path:          p,
		FileName:      fileName,
		ComponentName: ComponentName(fileName),
	}
}

// ResolveGroup builds a GroupEntry from paths that share one parent
// directory. The label is taken from the first path only; Validate reports
// groups whose label came out empty.
func ResolveGroup(paths []string) GroupEntry {
	group := GroupEntry{
		Files: make([]FileEntry, 0, len(paths)),
	}
	if len(paths) > 0 {
		group.Directory = DirectoryOf(paths[0])
	}
	for _, p := range paths {
		group.Files = append(group.Files, NewFileEntry(p))
	}
	return group
}

// ResolveGroups resolves one group per path list, keeping order
func ResolveGroups(pathLists [][]string) []GroupEntry {
	groups := make([]GroupEntry, 0, len(pathLists))
	for _, paths := range pathLists {
		groups = append(groups, ResolveGroup(paths))
	}
	return groups
}

// CountFiles returns the number of files across all groups
func CountFiles(groups []GroupEntry) int {
	n := 0
	for _, g := range groups {
		n += len(g.Files)
	}
	return n
}
