package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for DeclarationParser:
// - Extracts name = 'literal' fields from a direct group block
// - Filters out literals not starting with the asset prefix
// - Extracts name = Group.field pairs from an alias group block when the
//   target group is a known direct group
// - Only the first block per group per file is considered
// - Files without any group marker contribute nothing
// - Later files overwrite earlier entries on key collision
// - Malformed declarations are skipped without partial extraction
// - Unreadable files are skipped

func newTestParser(t *testing.T, root string) *DeclarationParser {
	t.Helper()
	return NewDeclarationParser(root, []string{"Images", "AppIcons"}, []string{"AppAssets"}, "assets/")
}

func TestParse_DirectEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/images.dart", `
class Images {
  static const String bg = 'assets/images/bg.png';
  static const logo = "assets/images/logo.png";
  static const remote = 'https://cdn.example.com/banner.png';
  static const int count = 3;
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/images.dart"})

	assert.Equal(t, map[string]string{
		"Images.bg":   "assets/images/bg.png",
		"Images.logo": "assets/images/logo.png",
	}, decls.Direct)
	assert.Empty(t, decls.Aliases)
}

func TestParse_AliasEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/assets.dart", `
class AppIcons {
  static const logo = 'assets/icons/logo.svg';
}

class AppAssets {
  static const logo = AppIcons.logo;
  static const banner = Unknown.banner;
  static const title = 'not an asset';
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/assets.dart"})

	assert.Equal(t, map[string]string{"AppIcons.logo": "assets/icons/logo.svg"}, decls.Direct)
	// Unknown.banner references an unrecognized group and is dropped
	assert.Equal(t, map[string]string{"AppAssets.logo": "AppIcons.logo"}, decls.Aliases)
}

func TestParse_FirstBlockPerGroupOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/images.dart", `
class Images {
  static const first = 'assets/first.png';
}

class Images {
  static const second = 'assets/second.png';
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/images.dart"})

	assert.Equal(t, map[string]string{"Images.first": "assets/first.png"}, decls.Direct)
}

func TestParse_NestedBracesStayInBlock(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/images.dart", `
class Images {
  static const bg = 'assets/bg.png';
  static Map<String, String> lookup() {
    return {'x': 'y'};
  }
  static const fg = 'assets/fg.png';
}

class Other {
  static const stray = 'assets/stray.png';
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/images.dart"})

	// Other is not a known group; Images' block extends past the nested braces
	assert.Equal(t, map[string]string{
		"Images.bg": "assets/bg.png",
		"Images.fg": "assets/fg.png",
	}, decls.Direct)
}

func TestParse_LaterFileOverwrites(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/a.dart", `
class Images {
  static const bg = 'assets/old.png';
}
`)
	writeFile(t, root, "lib/b.dart", `
class Images {
  static const bg = 'assets/new.png';
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/a.dart", "lib/b.dart"})

	assert.Equal(t, "assets/new.png", decls.Direct["Images.bg"])
}

func TestParse_NoMarkerContributesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/main.dart", `
void main() {
  print('assets/images/bg.png');
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/main.dart"})

	assert.Empty(t, decls.Direct)
	assert.Empty(t, decls.Aliases)
}

func TestParse_UnbalancedBracesSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/broken.dart", `
class Images {
  static const bg = 'assets/bg.png';
`)

	decls := newTestParser(t, root).Parse([]string{"lib/broken.dart"})

	assert.Empty(t, decls.Direct)
}

func TestParse_UnreadableFileSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/images.dart", `
class Images {
  static const bg = 'assets/bg.png';
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/missing.dart", "lib/images.dart"})

	require.Len(t, decls.Direct, 1)
	assert.Equal(t, "assets/bg.png", decls.Direct["Images.bg"])
}

func TestParse_AbstractClassDeclaration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lib/images.dart", `
abstract class Images {
  static const bg = 'assets/bg.png';
}
`)

	decls := newTestParser(t, root).Parse([]string{"lib/images.dart"})

	assert.Equal(t, map[string]string{"Images.bg": "assets/bg.png"}, decls.Direct)
}
