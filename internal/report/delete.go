package report

import (
	"log"
	"os"
	"path/filepath"

	"github.com/assetsweep/assetsweep/internal/scanner"
)

// DeleteUnused removes the unused assets from disk. Individual failures are
// logged and skipped; the returned count and bytes cover what was actually
// removed.
func DeleteUnused(rootDir string, res *scanner.Result) (deleted int, freed int64) {
	for _, asset := range res.Unused {
		path := filepath.Join(rootDir, filepath.FromSlash(asset.Path))
		if err := os.Remove(path); err != nil {
			log.Printf("Warning: failed to delete %s: %v", asset.Path, err)
			continue
		}
		deleted++
		freed += asset.Size
	}
	return deleted, freed
}
