package scanner

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Discovery walks the project tree and collects asset and code files.
// All returned paths are relative to the project root, forward-slash
// normalized, sorted, and deduplicated.
type Discovery struct {
	rootDir string
	ignore  []glob.Glob
}

// NewDiscovery creates a discovery instance for the given project root.
// ignoreDirs are directory names excluded from ignore-filtered walks,
// matched as whole path segments anywhere in the tree.
func NewDiscovery(rootDir string, ignoreDirs []string) (*Discovery, error) {
	d := &Discovery{
		rootDir: rootDir,
	}

	for _, dir := range ignoreDirs {
		// Match the name as a path segment at any depth, never as a
		// substring of a longer segment.
		pattern := "{" + dir + "," + dir + "/**,**/" + dir + ",**/" + dir + "/**}"
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignore = append(d.ignore, g)
	}

	return d, nil
}

// CollectAssets returns asset files under the given roots matching the
// extension allow-list. The ignore-set is not applied to asset roots.
func (d *Discovery) CollectAssets(roots []string, extensions []string) ([]string, error) {
	return d.collect(roots, extensions, false)
}

// CollectCode returns code files under the given roots matching the
// extension allow-list, with the ignore-set applied.
func (d *Discovery) CollectCode(roots []string, extensions []string) ([]string, error) {
	return d.collect(roots, extensions, true)
}

func (d *Discovery) collect(roots []string, extensions []string, applyIgnore bool) ([]string, error) {
	extMap := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extMap[strings.ToLower(ext)] = true
	}

	seen := make(map[string]bool)

	for _, root := range roots {
		rootPath := filepath.Join(d.rootDir, root)

		// Missing roots are expected in partial project layouts.
		if _, err := os.Stat(rootPath); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(rootPath, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				if path == rootPath {
					return err
				}
				// Unreadable entries are skipped, not fatal.
				log.Printf("Warning: skipping %s: %v", path, err)
				if entry != nil && entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			rel, relErr := filepath.Rel(d.rootDir, path)
			if relErr != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)

			if entry.IsDir() {
				if applyIgnore && d.ignored(rel) {
					return filepath.SkipDir
				}
				return nil
			}

			// Symbolic links are never followed or reported.
			if entry.Type()&fs.ModeSymlink != 0 {
				return nil
			}

			if applyIgnore && d.ignored(rel) {
				return nil
			}

			if !extMap[strings.ToLower(filepath.Ext(rel))] {
				return nil
			}

			seen[rel] = true
			return nil
		})
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
	}

	files := make([]string, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}
	sort.Strings(files)

	return files, nil
}

// ignored checks a relative path against the compiled ignore-set.
func (d *Discovery) ignored(relPath string) bool {
	for _, g := range d.ignore {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
