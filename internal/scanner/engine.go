package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/assetsweep/assetsweep/internal/config"
)

// Asset is one discovered asset file with its usage classification inputs.
type Asset struct {
	Path        string   `json:"path"`
	Size        int64    `json:"size"`
	Identifiers []string `json:"identifiers,omitempty"`
	Matches     int      `json:"matches"`
}

// MissingFile records an identifier whose resolved path has no backing file
// on disk.
type MissingFile struct {
	Identifier string `json:"identifier"`
	Path       string `json:"path"`
}

// Result is the classification produced by a completed scan. Used and Unused
// are disjoint and together cover every discovered asset.
type Result struct {
	Used            []Asset         `json:"used"`
	Unused          []Asset         `json:"unused"`
	UsedBytes       int64           `json:"used_bytes"`
	UnusedBytes     int64           `json:"unused_bytes"`
	CodeFiles       int             `json:"code_files"`
	Identifiers     int             `json:"identifiers"`
	MissingFiles    []MissingFile   `json:"missing_files,omitempty"`
	DanglingAliases []DanglingAlias `json:"dangling_aliases,omitempty"`
}

// TotalBytes returns the combined size of all discovered assets.
func (r *Result) TotalBytes() int64 {
	return r.UsedBytes + r.UnusedBytes
}

// Engine runs the full asset reference resolution pipeline: discover files,
// extract declarations, resolve aliases, scan usages, classify.
type Engine struct {
	rootDir   string
	cfg       *config.Config
	discovery *Discovery
	parser    *DeclarationParser
}

// New creates an engine for the project rooted at rootDir.
func New(rootDir string, cfg *config.Config) (*Engine, error) {
	discovery, err := NewDiscovery(rootDir, cfg.Code.IgnoreDirs)
	if err != nil {
		return nil, fmt.Errorf("failed to compile ignore patterns: %w", err)
	}

	return &Engine{
		rootDir:   rootDir,
		cfg:       cfg,
		discovery: discovery,
		parser:    NewDeclarationParser(rootDir, cfg.Groups.Direct, cfg.Groups.Alias, cfg.Assets.Prefix),
	}, nil
}

// Scan runs the pipeline once and returns the classification. Scanning an
// unchanged tree twice yields identical results.
func (e *Engine) Scan(ctx context.Context, progress Progress) (*Result, error) {
	assets, err := e.discovery.CollectAssets(e.cfg.Assets.Roots, e.cfg.Assets.Extensions)
	if err != nil {
		return nil, fmt.Errorf("asset discovery failed: %w", err)
	}

	codeFiles, err := e.discovery.CollectCode(e.cfg.Code.Roots, e.cfg.Code.Extensions)
	if err != nil {
		return nil, fmt.Errorf("code discovery failed: %w", err)
	}

	decls := e.parser.Parse(codeFiles)
	table, dangling := ResolveAliases(decls)
	reverse := BuildReverseIndex(table)

	refs := NewReferenceSet(assets, reverse)

	analyzer := NewAnalyzer(e.rootDir, table, assets, e.cfg.Assets.Prefix, e.cfg.Scan.ProgressEvery)
	if err := analyzer.Analyze(ctx, codeFiles, refs, progress); err != nil {
		return nil, err
	}

	result := &Result{
		CodeFiles:       len(codeFiles),
		Identifiers:     len(table),
		MissingFiles:    e.missingFiles(table),
		DanglingAliases: dangling,
	}

	for _, path := range assets {
		asset := Asset{
			Path:        path,
			Size:        e.fileSize(path),
			Identifiers: reverse[path],
			Matches:     refs.TotalMatches(path, reverse[path]),
		}
		if refs.Used(path, reverse[path]) {
			result.Used = append(result.Used, asset)
			result.UsedBytes += asset.Size
		} else {
			result.Unused = append(result.Unused, asset)
			result.UnusedBytes += asset.Size
		}
	}

	return result, nil
}

// missingFiles returns one warning per identifier whose resolved path does
// not exist on disk.
func (e *Engine) missingFiles(table map[string]string) []MissingFile {
	var missing []MissingFile
	for id, path := range table {
		if _, err := os.Stat(filepath.Join(e.rootDir, filepath.FromSlash(path))); os.IsNotExist(err) {
			missing = append(missing, MissingFile{Identifier: id, Path: path})
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].Identifier < missing[j].Identifier
	})
	return missing
}

func (e *Engine) fileSize(relPath string) int64 {
	info, err := os.Stat(filepath.Join(e.rootDir, filepath.FromSlash(relPath)))
	if err != nil {
		return 0
	}
	return info.Size()
}
