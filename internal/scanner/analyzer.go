package scanner

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Progress receives scan progress callbacks. Implementations are display
// concerns only and must not influence matching.
type Progress interface {
	OnScanStart(totalFiles int)
	OnFilesScanned(scanned, total int)
	OnScanComplete(total int)
}

// NopProgress discards all progress callbacks.
type NopProgress struct{}

func (NopProgress) OnScanStart(int)         {}
func (NopProgress) OnFilesScanned(int, int) {}
func (NopProgress) OnScanComplete(int)      {}

// Analyzer scans code files for occurrences of known identifiers and literal
// asset paths, accumulating matches into a ReferenceSet.
type Analyzer struct {
	rootDir     string
	assetPrefix string
	assets      []string
	identifiers []string
	assetOf     map[string]string
	groupOf     map[string]string
	patterns    map[string]*regexp.Regexp
	groups      []string
	cadence     int
}

// NewAnalyzer creates an analyzer for the given identifier table and
// discovered asset list. cadence controls how often progress is reported,
// in files.
func NewAnalyzer(rootDir string, table map[string]string, assets []string, assetPrefix string, cadence int) *Analyzer {
	a := &Analyzer{
		rootDir:     rootDir,
		assetPrefix: assetPrefix,
		assets:      assets,
		assetOf:     make(map[string]string, len(table)),
		groupOf:     make(map[string]string, len(table)),
		patterns:    make(map[string]*regexp.Regexp, len(table)),
		cadence:     cadence,
	}
	if a.cadence <= 0 {
		a.cadence = 25
	}

	groupSet := make(map[string]bool)
	for id, path := range table {
		a.identifiers = append(a.identifiers, id)
		a.assetOf[id] = path

		group := id
		if dot := strings.IndexByte(id, '.'); dot >= 0 {
			group = id[:dot]
		}
		a.groupOf[id] = group
		groupSet[group] = true

		// The identifier must not match as a substring of a longer
		// token: Images.bg must not fire on ImagesV2.bg.
		a.patterns[id] = regexp.MustCompile(`\b` + regexp.QuoteMeta(id) + `\b`)
	}
	sort.Strings(a.identifiers)

	for group := range groupSet {
		a.groups = append(a.groups, group)
	}
	sort.Strings(a.groups)

	return a
}

// Analyze scans every code file once, accumulating match counts and
// referencing files into refs. Unreadable files count as zero matches.
// Classification reads are only valid once Analyze has returned.
func (a *Analyzer) Analyze(ctx context.Context, codeFiles []string, refs *ReferenceSet, progress Progress) error {
	if progress == nil {
		progress = NopProgress{}
	}

	total := len(codeFiles)
	progress.OnScanStart(total)

	for i, file := range codeFiles {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(filepath.Join(a.rootDir, filepath.FromSlash(file)))
		if err != nil {
			log.Printf("Warning: skipping %s: %v", file, err)
			continue
		}
		text := string(data)

		a.matchIdentifiers(text, file, refs)
		a.matchLiteralPaths(text, file, refs)

		if (i+1)%a.cadence == 0 {
			progress.OnFilesScanned(i+1, total)
		}
	}

	progress.OnScanComplete(total)
	return nil
}

// matchIdentifiers counts word-boundary-anchored, non-overlapping matches of
// every known identifier in text.
func (a *Analyzer) matchIdentifiers(text, file string, refs *ReferenceSet) {
	if !a.containsAnyGroup(text) {
		return
	}

	for _, id := range a.identifiers {
		// Cheap substring check on the group name before the regexp.
		if !strings.Contains(text, a.groupOf[id]) {
			continue
		}
		n := len(a.patterns[id].FindAllStringIndex(text, -1))
		refs.Add(id, a.assetOf[id], file, n)
	}
}

// matchLiteralPaths counts plain substring occurrences of every known asset
// path in text. Substring containment is deliberate: quoted literal paths
// are distinct enough, and over-counting errs toward keeping files.
func (a *Analyzer) matchLiteralPaths(text, file string, refs *ReferenceSet) {
	if !strings.Contains(text, a.assetPrefix) {
		return
	}

	for _, asset := range a.assets {
		if !strings.Contains(text, asset) {
			continue
		}
		refs.Add(LiteralKey(asset), asset, file, strings.Count(text, asset))
	}
}

func (a *Analyzer) containsAnyGroup(text string) bool {
	for _, group := range a.groups {
		if strings.Contains(text, group) {
			return true
		}
	}
	return false
}
