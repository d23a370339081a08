package icon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"arrow-left", "ArrowLeftIcon"},
		{"sun", "SunIcon"},
		{"chevron-double-up", "ChevronDoubleUpIcon"},
		{"typescript", "TypescriptIcon"},
		{"already-Capital", "AlreadyCapitalIcon"},
		{"keepsCamel", "KeepsCamelIcon"},
		{"x--y", "XYIcon"},
		{"2fa", "2faIcon"},
		{"élan", "ÉlanIcon"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, ComponentName(tt.fileName))
			// pure: same input, same output
			assert.Equal(t, ComponentName(tt.fileName), ComponentName(tt.fileName))
		})
	}
}

func TestFileNameAndDirectory(t *testing.T) {
	assert.Equal(t, "arrow-left", FileNameOf("public/icons/arrow-left.svg"))
	assert.Equal(t, "sun", FileNameOf("sun.svg"))
	assert.Equal(t, "icons", DirectoryOf("public/icons/arrow-left.svg"))
	assert.Equal(t, "icons", DirectoryOf("icons/sun.svg"))
	assert.Equal(t, "", DirectoryOf("sun.svg"))
}

func TestResolveGroup(t *testing.T) {
	group := ResolveGroup([]string{
		"public/icons/moon.svg",
		"public/icons/arrow-left.svg",
	})

	assert.Equal(t, "icons", group.Directory)
	require.Len(t, group.Files, 2)
	assert.Equal(t, FileEntry{
		Path:          "public/icons/moon.svg",
		FileName:      "moon",
		ComponentName: "MoonIcon",
	}, group.Files[0])
	assert.Equal(t, "ArrowLeftIcon", group.Files[1].ComponentName)
}

func TestResolveGroup_Empty(t *testing.T) {
	group := ResolveGroup(nil)
	assert.Equal(t, "", group.Directory)
	assert.Empty(t, group.Files)
}

func TestResolveGroups_KeepsOrder(t *testing.T) {
	groups := ResolveGroups([][]string{
		{"public/icons/sun.svg"},
		{"public/logos/astro.svg", "public/logos/react.svg"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "icons", groups[0].Directory)
	assert.Equal(t, "logos", groups[1].Directory)
	assert.Equal(t, 3, CountFiles(groups))
}

func TestValidate(t *testing.T) {
	t.Run("valid groups", func(t *testing.T) {
		groups := ResolveGroups([][]string{
			{"public/icons/moon.svg", "public/icons/sun.svg"},
			{"public/logos/astro.svg"},
		})
		assert.NoError(t, Validate(groups))
	})

	t.Run("separator styles colliding on component name", func(t *testing.T) {
		groups := ResolveGroups([][]string{
			{"public/icons/arrow-left.svg", "public/icons/arrowLeft.svg"},
		})
		err := Validate(groups)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNameCollision)
		assert.Contains(t, err.Error(), "ArrowLeftIcon")
		assert.Contains(t, err.Error(), "public/icons/arrow-left.svg")
		assert.Contains(t, err.Error(), "public/icons/arrowLeft.svg")
	})

	t.Run("same key in two groups reported once", func(t *testing.T) {
		groups := ResolveGroups([][]string{
			{"public/icons/react.svg"},
			{"public/logos/react.svg"},
		})
		err := Validate(groups)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNameCollision)
		assert.Contains(t, err.Error(), `icon key "react"`)
		assert.NotContains(t, err.Error(), "validation errors")
	})

	t.Run("empty group and missing directory", func(t *testing.T) {
		groups := []GroupEntry{
			ResolveGroup(nil),
			ResolveGroup([]string{"sun.svg"}),
		}
		err := Validate(groups)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyGroup))
		assert.True(t, errors.Is(err, ErrEmptyDirectory))
	})

	t.Run("invalid identifier", func(t *testing.T) {
		groups := ResolveGroups([][]string{
			{"public/icons/icon.v2.svg"},
		})
		err := Validate(groups)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("sun"))
	assert.True(t, IsIdentifier("$sun_2"))
	assert.False(t, IsIdentifier("arrow-left"))
	assert.False(t, IsIdentifier("2fa"))
	assert.False(t, IsIdentifier(""))
}
