package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Discovery:
// - Collects files matching the extension allow-list, forward-slash relative
// - Results are sorted and deduplicated across overlapping roots
// - Ignore-set applies to the code scan only, matched as path segments
// - Ignore names do not match as substring prefixes of longer segments
// - Missing roots are skipped without error
// - Symbolic links are excluded

func writeFile(t *testing.T, root string, rel string, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscovery_CollectAssets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/images/bg.png", "png")
	writeFile(t, root, "assets/icons/logo.svg", "svg")
	writeFile(t, root, "assets/anims/loading.json", "{}")
	writeFile(t, root, "assets/notes.txt", "not an asset")
	writeFile(t, root, "lib/main.dart", "code")

	d, err := NewDiscovery(root, nil)
	require.NoError(t, err)

	assets, err := d.CollectAssets([]string{"assets"}, []string{".png", ".svg", ".json"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"assets/anims/loading.json",
		"assets/icons/logo.svg",
		"assets/images/bg.png",
	}, assets)
}

func TestDiscovery_IgnoreAppliesToCodeOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/build/generated.png", "png")
	writeFile(t, root, "lib/build/gen.dart", "generated")
	writeFile(t, root, "lib/main.dart", "code")

	d, err := NewDiscovery(root, []string{"build"})
	require.NoError(t, err)

	assets, err := d.CollectAssets([]string{"assets"}, []string{".png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/build/generated.png"}, assets)

	code, err := d.CollectCode([]string{"lib"}, []string{".dart"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/main.dart"}, code)
}

func TestDiscovery_IgnoreMatchesWholeSegmentsOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/build/skip.dart", "skip")
	writeFile(t, root, "lib/builder/keep.dart", "keep")
	writeFile(t, root, "lib/prebuild/keep.dart", "keep")

	d, err := NewDiscovery(root, []string{"build"})
	require.NoError(t, err)

	code, err := d.CollectCode([]string{"lib"}, []string{".dart"})
	require.NoError(t, err)

	assert.Equal(t, []string{"lib/builder/keep.dart", "lib/prebuild/keep.dart"}, code)
}

func TestDiscovery_MissingRootSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/main.dart", "code")

	d, err := NewDiscovery(root, nil)
	require.NoError(t, err)

	code, err := d.CollectCode([]string{"lib", "does-not-exist"}, []string{".dart"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/main.dart"}, code)
}

func TestDiscovery_DeduplicatesOverlappingRoots(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/main.dart", "code")

	d, err := NewDiscovery(root, nil)
	require.NoError(t, err)

	code, err := d.CollectCode([]string{"lib", "lib"}, []string{".dart"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/main.dart"}, code)
}

func TestDiscovery_SkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/real.png", "png")
	require.NoError(t, os.Symlink(
		filepath.Join(root, "assets", "real.png"),
		filepath.Join(root, "assets", "link.png")))

	d, err := NewDiscovery(root, nil)
	require.NoError(t, err)

	assets, err := d.CollectAssets([]string{"assets"}, []string{".png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/real.png"}, assets)
}

func TestDiscovery_ExtensionMatchIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/photo.PNG", "png")

	d, err := NewDiscovery(root, nil)
	require.NoError(t, err)

	assets, err := d.CollectAssets([]string{"assets"}, []string{".png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/photo.PNG"}, assets)
}
