package emitter

import (
	"fmt"
	"path"

	"github.com/ideamans/iconforge/pkg/icon"
	"github.com/ideamans/iconforge/pkg/policy"
	"github.com/ideamans/iconforge/pkg/svg"
)

// ReactAggregatorFile is the React lookup component
const ReactAggregatorFile = "Icon.tsx"

// ReactEmitter renders React component modules
type ReactEmitter struct{}

var _ ComponentEmitter = (*ReactEmitter)(nil)

func (e *ReactEmitter) Kind() policy.Kind { return policy.KindComponent }

func (e *ReactEmitter) Subfolder() string { return "tsx" }

func (e *ReactEmitter) Mode() svg.Mode { return svg.ModeComponent }

// IconFile renders <group>/tsx/<fileName>.tsx exporting a zero-argument
// component that returns the normalized markup.
func (e *ReactEmitter) IconFile(group icon.GroupEntry, file icon.FileEntry, markup string) Artifact {
	return Artifact{
		RelPath:     path.Join(group.Directory, e.Subfolder(), file.FileName+".tsx"),
		Content:     fmt.Sprintf("export const %s = () => %s;", file.ComponentName, svg.Normalize(markup, e.Mode())),
		Class:       ClassComponentFiles,
		Description: file.ComponentName + " component",
	}
}

// Aggregator renders Icon.tsx
func (e *ReactEmitter) Aggregator(groups []icon.GroupEntry, opts Options) (Artifact, error) {
	imports := importLines(groups,
		func(componentName, specifier string) string {
			return fmt.Sprintf("import { %s } from '%s';", componentName, specifier)
		},
		func(g icon.GroupEntry, f icon.FileEntry) string {
			return path.Join(opts.ImportBase, g.Directory, e.Subfolder(), f.FileName)
		})

	content, err := render(reactAggregator, aggregatorData{
		Imports: imports,
		Entries: lookupEntries(groups),
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		RelPath:     ReactAggregatorFile,
		Content:     content,
		Class:       ClassComponentAggregator,
		Description: "React icon component",
	}, nil
}
