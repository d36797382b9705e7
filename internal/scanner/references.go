package scanner

import "sort"

// literalKeyPrefix distinguishes literal-path usage keys from identifier
// keys in the shared record table. No identifier can contain a slash, so
// the prefix cannot collide.
const literalKeyPrefix = "path:"

// LiteralKey returns the usage key tracking literal occurrences of an asset
// path in code.
func LiteralKey(assetPath string) string {
	return literalKeyPrefix + assetPath
}

// ReferenceRecord tracks textual matches for one usage key: an identifier or
// a literal asset path. Counts only grow during analysis.
type ReferenceRecord struct {
	Asset string
	Count int
	files map[string]bool
}

// Files returns the sorted set of code files in which at least one match
// occurred.
func (r *ReferenceRecord) Files() []string {
	files := make([]string, 0, len(r.files))
	for file := range r.files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// ReferenceSet is the record table mutated by the usage analyzer. It is
// seeded before analysis with one record per (asset × identifier)
// combination and one literal-path record per asset; records are never
// deleted.
type ReferenceSet struct {
	records map[string]*ReferenceRecord
}

// NewReferenceSet seeds zero-count records for the given discovered assets
// and reverse index.
func NewReferenceSet(assets []string, reverse map[string][]string) *ReferenceSet {
	s := &ReferenceSet{
		records: make(map[string]*ReferenceRecord),
	}

	for _, asset := range assets {
		s.records[LiteralKey(asset)] = newRecord(asset)
		for _, id := range reverse[asset] {
			s.records[id] = newRecord(asset)
		}
	}

	return s
}

func newRecord(asset string) *ReferenceRecord {
	return &ReferenceRecord{
		Asset: asset,
		files: make(map[string]bool),
	}
}

// Add accumulates n matches found in file for the given usage key. Keys not
// seeded (identifiers whose asset was never discovered) get a record on
// first use so their counts are still available to diagnostics.
func (s *ReferenceSet) Add(key, asset, file string, n int) {
	if n <= 0 {
		return
	}
	rec, ok := s.records[key]
	if !ok {
		rec = newRecord(asset)
		s.records[key] = rec
	}
	rec.Count += n
	rec.files[file] = true
}

// Record returns the record for a usage key, or nil if none exists.
func (s *ReferenceSet) Record(key string) *ReferenceRecord {
	return s.records[key]
}

// Count returns the occurrence count for a usage key, zero if none exists.
func (s *ReferenceSet) Count(key string) int {
	if rec := s.records[key]; rec != nil {
		return rec.Count
	}
	return 0
}

// Used reports whether an asset has at least one match on its literal-path
// key or on any of its identifiers. Valid only after the full code file list
// has been analyzed.
func (s *ReferenceSet) Used(asset string, identifiers []string) bool {
	if s.Count(LiteralKey(asset)) > 0 {
		return true
	}
	for _, id := range identifiers {
		if s.Count(id) > 0 {
			return true
		}
	}
	return false
}

// TotalMatches sums the occurrence counts of an asset's literal-path key and
// identifiers.
func (s *ReferenceSet) TotalMatches(asset string, identifiers []string) int {
	total := s.Count(LiteralKey(asset))
	for _, id := range identifiers {
		total += s.Count(id)
	}
	return total
}
