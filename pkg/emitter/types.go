package emitter

import (
	"strings"

	"github.com/ideamans/iconforge/pkg/icon"
)

// TypesFile is the type union artifact
const TypesFile = "Icons.ts"

// TypeUnion renders the string-literal union of every icon key, grouped by
// directory comments in group order.
func TypeUnion(groups []icon.GroupEntry) Artifact {
	var sb strings.Builder
	sb.WriteString("export type Icons =\n")
	for _, g := range groups {
		sb.WriteString("  // " + g.Directory + "\n")
		for _, f := range g.Files {
			sb.WriteString("  | '" + f.FileName + "'\n")
		}
	}
	sb.WriteString(";\n")

	return Artifact{
		RelPath:     TypesFile,
		Content:     sb.String(),
		Class:       ClassTypes,
		Description: "icon key type union",
	}
}
