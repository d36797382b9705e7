package scanner

import "sort"

// DanglingAlias records an alias whose target has no direct declaration.
// These are excluded from the identifier table and surfaced as warnings.
type DanglingAlias struct {
	Alias  string `json:"alias"`
	Target string `json:"target"`
}

// ResolveAliases composes the alias pairs with the direct map into a single
// identifier → asset path table.
//
// Resolution is one hop only: an alias pointing at another alias does not
// resolve. Direct entries win on key collision with a resolved alias.
func ResolveAliases(decls *Declarations) (map[string]string, []DanglingAlias) {
	table := make(map[string]string, len(decls.Direct)+len(decls.Aliases))
	var dangling []DanglingAlias

	for alias, target := range decls.Aliases {
		path, ok := decls.Direct[target]
		if !ok {
			dangling = append(dangling, DanglingAlias{Alias: alias, Target: target})
			continue
		}
		table[alias] = path
	}

	// Direct entries are merged last so they override any resolved alias
	// that reused the same key.
	for id, path := range decls.Direct {
		table[id] = path
	}

	sort.Slice(dangling, func(i, j int) bool {
		return dangling[i].Alias < dangling[j].Alias
	})

	return table, dangling
}

// BuildReverseIndex inverts an identifier table into asset path → sorted
// identifier list. An asset may have zero, one, or several identifiers.
func BuildReverseIndex(table map[string]string) map[string][]string {
	reverse := make(map[string][]string)
	for id, path := range table {
		reverse[path] = append(reverse[path], id)
	}
	for path := range reverse {
		sort.Strings(reverse[path])
	}
	return reverse
}
