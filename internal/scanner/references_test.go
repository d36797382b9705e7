package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceSet_SeedsAllUsageKeys(t *testing.T) {
	assets := []string{"assets/a.png", "assets/b.svg"}
	reverse := map[string][]string{
		"assets/b.svg": {"AppAssets.logo", "AppIcons.logo"},
	}

	refs := NewReferenceSet(assets, reverse)

	// One literal-path record per asset
	require.NotNil(t, refs.Record(LiteralKey("assets/a.png")))
	require.NotNil(t, refs.Record(LiteralKey("assets/b.svg")))

	// One record per (asset × identifier)
	require.NotNil(t, refs.Record("AppAssets.logo"))
	require.NotNil(t, refs.Record("AppIcons.logo"))

	assert.Equal(t, 0, refs.Count("AppIcons.logo"))
	assert.Equal(t, "assets/b.svg", refs.Record("AppIcons.logo").Asset)
}

func TestReferenceSet_AddAccumulates(t *testing.T) {
	refs := NewReferenceSet([]string{"assets/b.svg"}, map[string][]string{
		"assets/b.svg": {"AppIcons.logo"},
	})

	refs.Add("AppIcons.logo", "assets/b.svg", "lib/a.dart", 2)
	refs.Add("AppIcons.logo", "assets/b.svg", "lib/b.dart", 1)
	refs.Add("AppIcons.logo", "assets/b.svg", "lib/c.dart", 0) // no-op

	rec := refs.Record("AppIcons.logo")
	assert.Equal(t, 3, rec.Count)
	assert.Equal(t, []string{"lib/a.dart", "lib/b.dart"}, rec.Files())
}

func TestReferenceSet_UsedClassification(t *testing.T) {
	refs := NewReferenceSet([]string{"assets/a.png", "assets/b.svg"}, map[string][]string{
		"assets/b.svg": {"AppIcons.logo"},
	})

	// Nothing referenced yet
	assert.False(t, refs.Used("assets/a.png", nil))
	assert.False(t, refs.Used("assets/b.svg", []string{"AppIcons.logo"}))

	// Identifier hit marks the asset used
	refs.Add("AppIcons.logo", "assets/b.svg", "lib/main.dart", 1)
	assert.True(t, refs.Used("assets/b.svg", []string{"AppIcons.logo"}))

	// Literal-path hit marks an identifier-less asset used
	refs.Add(LiteralKey("assets/a.png"), "assets/a.png", "lib/main.dart", 1)
	assert.True(t, refs.Used("assets/a.png", nil))
}

func TestReferenceSet_TotalMatches(t *testing.T) {
	refs := NewReferenceSet([]string{"assets/b.svg"}, map[string][]string{
		"assets/b.svg": {"AppIcons.logo"},
	})

	refs.Add("AppIcons.logo", "assets/b.svg", "lib/main.dart", 2)
	refs.Add(LiteralKey("assets/b.svg"), "assets/b.svg", "test/main_test.dart", 3)

	assert.Equal(t, 5, refs.TotalMatches("assets/b.svg", []string{"AppIcons.logo"}))
}

func TestLiteralKey_DistinctFromIdentifiers(t *testing.T) {
	// A literal key can never collide with a Group.field identifier.
	assert.Equal(t, "path:assets/a.png", LiteralKey("assets/a.png"))
}
