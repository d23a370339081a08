package emitter

import (
	"fmt"
	"path"
	"strings"

	"github.com/ideamans/iconforge/pkg/icon"
)

// StylesheetFile is the stylesheet module artifact
const StylesheetFile = "Icon.module.scss"

const ruleSeparator = "    // ----------------------------------------"

// MaskURL returns the URL a file is served under: its path relative to
// publicDir, or "/<directory>/<fileName>.svg" when it lives outside it.
func MaskURL(g icon.GroupEntry, f icon.FileEntry, publicDir string) string {
	base := strings.Trim(publicDir, "/")
	p := strings.TrimLeft(f.Path, "/")
	if base == "" {
		return "/" + p
	}
	if rest, ok := strings.CutPrefix(p, base+"/"); ok {
		return "/" + rest
	}
	return path.Join("/", g.Directory, f.FileName+".svg")
}

// StylesheetRules renders the mask rules of every file, grouped under
// directory comments.
func StylesheetRules(groups []icon.GroupEntry, publicDir string) string {
	var lines []string
	for _, g := range groups {
		lines = append(lines, ruleSeparator+"\n    // "+g.Directory)
		for _, f := range g.Files {
			lines = append(lines, fmt.Sprintf("    &.%s {\n      mask-image: url('%s');\n    }", f.FileName, MaskURL(g, f, publicDir)))
		}
	}
	return strings.Join(lines, "\n")
}

// Stylesheet renders the full stylesheet body. The module file and the
// inline style block of a solo template aggregator share it verbatim.
func Stylesheet(groups []icon.GroupEntry, publicDir string) string {
	return `.icon {
  display: flex;
  align-items: center;
  overflow: hidden;
  transition: ease 0.1s;
  transition-property: background-color, color;
  &.isFlat {
    width: calc(var(--icon-size) * 1px);
    height: calc(var(--icon-size) * 1px);
    mask-position: center;
    mask-repeat: no-repeat;
    mask-size: contain;
` + StylesheetRules(groups, publicDir) + `
  }
}`
}

// StylesheetModule renders Icon.module.scss
func StylesheetModule(groups []icon.GroupEntry, publicDir string) Artifact {
	return Artifact{
		RelPath:     StylesheetFile,
		Content:     Stylesheet(groups, publicDir),
		Class:       ClassStylesheet,
		Description: "icon mask stylesheet",
	}
}
