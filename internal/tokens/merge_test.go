package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, css string, category Category) *Node {
	t.Helper()
	tree, err := ParseTokens(css, ParseOptions{Category: category})
	require.NoError(t, err)
	return tree
}

func mustJSON(t *testing.T, n *Node) string {
	t.Helper()
	data, err := json.Marshal(n)
	require.NoError(t, err)
	return string(data)
}

func TestMerge_CombinesSiblingGroups(t *testing.T) {
	dst := NewTree()
	require.NoError(t, Merge(dst, mustParse(t, `--color-brand-500: #3b82f6;`, CategoryColor), false))
	require.NoError(t, Merge(dst, mustParse(t, `--color-neutral-0: #ffffff;`, CategorySemantic), false))

	color, ok := dst.Lookup("color")
	require.True(t, ok)
	assert.Equal(t, []string{"brand", "neutral"}, color.Keys())

	neutral, _ := dst.Lookup("color", "neutral", "0")
	assert.Equal(t, CategorySemantic, neutral.Leaf().Type)
	assert.Equal(t, 2, dst.CountLeaves())
}

func TestMerge_LaterLeafWins(t *testing.T) {
	dst := NewTree()
	require.NoError(t, Merge(dst, mustParse(t, `--radius-sm: 2px;`, CategoryRadius), false))
	require.NoError(t, Merge(dst, mustParse(t, `--radius-sm: 4px;`, CategoryBorder), false))

	node, ok := dst.Lookup("radius", "sm")
	require.True(t, ok)
	assert.Equal(t, Leaf{Value: "4px", Type: CategoryBorder, OriginalVariable: "--radius-sm"}, *node.Leaf())
}

func TestMerge_ShapeConflictOrderMatters(t *testing.T) {
	a := mustParse(t, "--space: 1rem;", CategorySpacing)
	b := mustParse(t, "--space-1: 0.25rem;\n--space-2: 0.5rem;", CategorySpacing)

	ab := NewTree()
	require.NoError(t, Merge(ab, a, false))
	require.NoError(t, Merge(ab, b, false))

	ba := NewTree()
	require.NoError(t, Merge(ba, b, false))
	require.NoError(t, Merge(ba, a, false))

	assert.NotEqual(t, mustJSON(t, ab), mustJSON(t, ba))

	// A then B: group replaces the token.
	space, _ := ab.Lookup("space")
	assert.False(t, space.IsLeaf())
	assert.Equal(t, []string{"1", "2"}, space.Keys())

	// B then A: token replaces the whole group.
	space, _ = ba.Lookup("space")
	require.True(t, space.IsLeaf())
	assert.Equal(t, "1rem", space.Leaf().Value)
	assert.Equal(t, 1, ba.CountLeaves())
}

func TestMerge_KeepsKeyPosition(t *testing.T) {
	dst := NewTree()
	require.NoError(t, Merge(dst, mustParse(t, "--a: 1;\n--b: 2;", CategoryUnknown), false))
	require.NoError(t, Merge(dst, mustParse(t, "--c: 3;\n--a: 4;", CategoryUnknown), false))

	assert.Equal(t, []string{"a", "b", "c"}, dst.Keys())
	a, _ := dst.Lookup("a")
	assert.Equal(t, "4", a.Leaf().Value)
}

func TestMerge_DoesNotAliasSource(t *testing.T) {
	src := mustParse(t, `--color-brand-500: #3b82f6;`, CategoryColor)
	before := mustJSON(t, src)

	dst := NewTree()
	require.NoError(t, Merge(dst, src, false))
	require.NoError(t, Merge(dst, mustParse(t, `--color-brand-700: #1d4ed8;`, CategoryColor), false))

	assert.Equal(t, before, mustJSON(t, src))

	srcColor, _ := src.Lookup("color")
	dstColor, _ := dst.Lookup("color")
	assert.NotSame(t, srcColor, dstColor)
}

func TestMerge_Strict(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		wantPath []string
	}{
		{
			name:     "group over token",
			first:    "--space: 1rem;",
			second:   "--space-1: 0.25rem;",
			wantPath: []string{"space"},
		},
		{
			name:     "token over group",
			first:    "--color-brand-500: #3b82f6;",
			second:   "--color-brand: blue;",
			wantPath: []string{"color", "brand"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := NewTree()
			require.NoError(t, Merge(dst, mustParse(t, tt.first, CategoryUnknown), true))

			err := Merge(dst, mustParse(t, tt.second, CategoryUnknown), true)
			require.ErrorIs(t, err, ErrCollision)

			var collision *CollisionError
			require.ErrorAs(t, err, &collision)
			assert.Equal(t, tt.wantPath, collision.Path)
		})
	}

	t.Run("compatible trees merge", func(t *testing.T) {
		dst := NewTree()
		require.NoError(t, Merge(dst, mustParse(t, "--a-b: 1;", CategoryUnknown), true))
		require.NoError(t, Merge(dst, mustParse(t, "--a-c: 2;\n--a-b: 3;", CategoryUnknown), true))
		assert.Equal(t, 2, dst.CountLeaves())
	})
}

func TestCollisionError(t *testing.T) {
	err := &CollisionError{Path: []string{"color", "brand"}, File: "colors.css"}
	assert.Contains(t, err.Error(), `"color.brand"`)
	assert.Contains(t, err.Error(), "colors.css")
}
