package emitter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideamans/iconforge/pkg/icon"
	"github.com/ideamans/iconforge/pkg/policy"
	"github.com/ideamans/iconforge/pkg/svg"
)

func testGroups() []icon.GroupEntry {
	return icon.ResolveGroups([][]string{
		{"public/icons/moon.svg", "public/icons/sun.svg"},
		{"public/logos/astro.svg", "public/logos/react.svg"},
	})
}

var testOptions = Options{ImportBase: "@components/Icon", PublicDir: "/public"}

func TestTypeUnion(t *testing.T) {
	got := TypeUnion(testGroups())

	assert.Equal(t, TypesFile, got.RelPath)
	assert.Equal(t, ClassTypes, got.Class)
	assert.Equal(t, `export type Icons =
  // icons
  | 'moon'
  | 'sun'
  // logos
  | 'astro'
  | 'react'
;
`, got.Content)
}

func TestTypeUnion_Deterministic(t *testing.T) {
	assert.Equal(t, TypeUnion(testGroups()), TypeUnion(testGroups()))
}

func TestMaskURL(t *testing.T) {
	g := icon.ResolveGroup([]string{"public/icons/sun.svg"})
	outside := icon.ResolveGroup([]string{"assets/brand/logo.svg"})

	tests := []struct {
		name      string
		group     icon.GroupEntry
		publicDir string
		want      string
	}{
		{"under public dir", g, "/public", "/icons/sun.svg"},
		{"public dir with trailing slash", g, "/public/", "/icons/sun.svg"},
		{"outside public dir", outside, "/public", "/brand/logo.svg"},
		{"empty public dir", outside, "", "/assets/brand/logo.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskURL(tt.group, tt.group.Files[0], tt.publicDir))
		})
	}
}

func TestStylesheetRules(t *testing.T) {
	got := StylesheetRules(testGroups()[:1], "/public")

	assert.Equal(t, `    // ----------------------------------------
    // icons
    &.moon {
      mask-image: url('/icons/moon.svg');
    }
    &.sun {
      mask-image: url('/icons/sun.svg');
    }`, got)
}

func TestStylesheetModule(t *testing.T) {
	got := StylesheetModule(testGroups(), "/public")

	assert.Equal(t, StylesheetFile, got.RelPath)
	assert.True(t, strings.HasPrefix(got.Content, ".icon {\n"))
	assert.True(t, strings.HasSuffix(got.Content, "  }\n}"))
	assert.Contains(t, got.Content, "width: calc(var(--icon-size) * 1px);")
	assert.Equal(t, 4, strings.Count(got.Content, "mask-image: url("))
	assert.Equal(t, Stylesheet(testGroups(), "/public"), got.Content, "module and inline bodies must match")
}

func TestReactEmitter_IconFile(t *testing.T) {
	groups := testGroups()
	e := &ReactEmitter{}

	got := e.IconFile(groups[0], groups[0].Files[1], `<svg width="24" height="24" viewBox="0 0 24 24"><path clip-rule="evenodd"/></svg>`)

	assert.Equal(t, "icons/tsx/sun.tsx", got.RelPath)
	assert.Equal(t, ClassComponentFiles, got.Class)
	assert.Equal(t,
		`export const SunIcon = () => <svg `+svg.SizeStyle+` viewBox="0 0 24 24"><path clipRule="evenodd"/></svg>;`,
		got.Content)
}

func TestReactEmitter_Aggregator(t *testing.T) {
	got, err := (&ReactEmitter{}).Aggregator(testGroups(), testOptions)
	require.NoError(t, err)

	assert.Equal(t, ReactAggregatorFile, got.RelPath)
	assert.Equal(t, ClassComponentAggregator, got.Class)

	imports := regexp.MustCompile(`(?m)^import \{ \w+ \} from '@components/Icon/\w+/tsx/\w+';$`).FindAllString(got.Content, -1)
	assert.Len(t, imports, 4)
	assert.Contains(t, got.Content, "import { MoonIcon } from '@components/Icon/icons/tsx/moon';")
	assert.Contains(t, got.Content, "// icons\nimport { MoonIcon }")
	assert.Contains(t, got.Content, "  // logos\n  astro: AstroIcon,\n  react: ReactIcon,\n};")
	assert.Contains(t, got.Content, "size = 16,")
	assert.Contains(t, got.Content, "['--icon-size' as string]: size,")
	assert.Contains(t, got.Content, "{!color && <SvgIcon />}")
	assert.NotContains(t, got.Content, "[[")
}

func TestAggregator_QuotesNonIdentifierKeys(t *testing.T) {
	groups := icon.ResolveGroups([][]string{{"public/icons/arrow-left.svg", "public/icons/sun.svg"}})

	got, err := (&ReactEmitter{}).Aggregator(groups, testOptions)
	require.NoError(t, err)

	assert.Contains(t, got.Content, "  'arrow-left': ArrowLeftIcon,")
	assert.Contains(t, got.Content, "  sun: SunIcon,")
}

func TestAstroEmitter_IconFile(t *testing.T) {
	groups := testGroups()
	e := &AstroEmitter{}

	got := e.IconFile(groups[1], groups[1].Files[0], `<svg width="24" height="24"><g class="a"/></svg>`)

	assert.Equal(t, "logos/astro/astro.astro", got.RelPath)
	assert.Equal(t, ClassTemplateFiles, got.Class)
	assert.Equal(t, `<svg `+svg.SizeStyle+`><g class="a"/></svg>`, got.Content)
}

func TestAstroEmitter_Aggregator(t *testing.T) {
	tests := []struct {
		name       string
		solo       bool
		wantImport bool
	}{
		{"imports stylesheet module", false, true},
		{"inlines stylesheet when solo", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&AstroEmitter{Solo: tt.solo}).Aggregator(testGroups(), testOptions)
			require.NoError(t, err)

			assert.Equal(t, AstroAggregatorFile, got.RelPath)
			assert.True(t, strings.HasPrefix(got.Content, "---\n"))
			assert.Contains(t, got.Content, "import SunIcon from '@components/Icon/icons/astro/sun.astro';")
			assert.Contains(t, got.Content, "const { icon, color, size = 16, id, class: className, ...rest } = Astro.props;")
			assert.Contains(t, got.Content, "{...rest}")

			if tt.wantImport {
				assert.Contains(t, got.Content, "<style lang=\"scss\">\n@import './Icon.module.scss';\n</style>\n")
			} else {
				assert.Contains(t, got.Content, "<style lang=\"scss\">\n"+Stylesheet(testGroups(), "/public")+"\n</style>\n")
				assert.NotContains(t, got.Content, "@import")
			}
		})
	}
}

func TestForDecision(t *testing.T) {
	tests := []struct {
		name     string
		decision policy.Decision
		want     []policy.Kind
		wantSolo bool
	}{
		{"both", policy.Decide(nil, nil), []policy.Kind{policy.KindComponent, policy.KindTemplate}, false},
		{"astro only", policy.Decide([]policy.Kind{policy.KindTemplate}, nil), []policy.Kind{policy.KindTemplate}, true},
		{"tsx only", policy.Decide([]policy.Kind{policy.KindComponent}, nil), []policy.Kind{policy.KindComponent}, false},
		{"none", policy.Decision{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kinds []policy.Kind
			for _, e := range ForDecision(tt.decision) {
				kinds = append(kinds, e.Kind())
				if a, ok := e.(*AstroEmitter); ok {
					assert.Equal(t, tt.wantSolo, a.Solo)
				}
			}
			assert.Equal(t, tt.want, kinds)
		})
	}
}

func TestDirectories(t *testing.T) {
	assert.Equal(t,
		[]string{"icons", "icons/astro", "logos", "logos/astro"},
		Directories(&AstroEmitter{}, testGroups()))
}

func TestImportBase(t *testing.T) {
	assert.Equal(t, "@components/Icon", ImportBase("/src/components/Icon", "/src/components", "@components"))
	assert.Equal(t, "/lib/Icon", ImportBase("/lib/Icon", "/src/components", "@components"))
	assert.Equal(t, "/src/Icon", ImportBase("/src/Icon", "", "@components"))
}

func TestClass_SuccessMessage(t *testing.T) {
	assert.Equal(t, "Icon types written successfully", ClassTypes.SuccessMessage())
	assert.Equal(t, "Icon.module.scss written successfully", ClassStylesheet.SuccessMessage())
	assert.Equal(t, "[Icon].tsx files written successfully", ClassComponentFiles.SuccessMessage())
	assert.Equal(t, "Icon.astro written successfully", ClassTemplateAggregator.SuccessMessage())
}
