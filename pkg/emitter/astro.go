package emitter

import (
	"fmt"
	"path"

	"github.com/ideamans/iconforge/pkg/icon"
	"github.com/ideamans/iconforge/pkg/policy"
	"github.com/ideamans/iconforge/pkg/svg"
)

// AstroAggregatorFile is the Astro lookup component
const AstroAggregatorFile = "Icon.astro"

// AstroEmitter renders Astro template files
type AstroEmitter struct {
	// Solo inlines the stylesheet into the aggregator instead of importing
	// the stylesheet module, which is not emitted in that case.
	Solo bool
}

var _ ComponentEmitter = (*AstroEmitter)(nil)

func (e *AstroEmitter) Kind() policy.Kind { return policy.KindTemplate }

func (e *AstroEmitter) Subfolder() string { return "astro" }

func (e *AstroEmitter) Mode() svg.Mode { return svg.ModeTemplate }

// IconFile renders <group>/astro/<fileName>.astro holding the normalized
// markup alone.
func (e *AstroEmitter) IconFile(group icon.GroupEntry, file icon.FileEntry, markup string) Artifact {
	return Artifact{
		RelPath:     path.Join(group.Directory, e.Subfolder(), file.FileName+".astro"),
		Content:     svg.Normalize(markup, e.Mode()),
		Class:       ClassTemplateFiles,
		Description: file.ComponentName + " template",
	}
}

// Aggregator renders Icon.astro
func (e *AstroEmitter) Aggregator(groups []icon.GroupEntry, opts Options) (Artifact, error) {
	imports := importLines(groups,
		func(componentName, specifier string) string {
			return fmt.Sprintf("import %s from '%s';", componentName, specifier)
		},
		func(g icon.GroupEntry, f icon.FileEntry) string {
			return path.Join(opts.ImportBase, g.Directory, e.Subfolder(), f.FileName+".astro")
		})

	styles := fmt.Sprintf("@import './%s';", StylesheetFile)
	if e.Solo {
		styles = Stylesheet(groups, opts.PublicDir)
	}

	content, err := render(astroAggregator, aggregatorData{
		Imports: imports,
		Entries: lookupEntries(groups),
		Styles:  styles,
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		RelPath:     AstroAggregatorFile,
		Content:     content,
		Class:       ClassTemplateAggregator,
		Description: "Astro icon component",
	}, nil
}
