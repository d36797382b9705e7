package scanner

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Declarations holds the raw output of the definition-file scan: direct
// identifier → literal path entries and alias identifier → target
// identifier pairs, both keyed by fully-qualified "Group.field" names.
type Declarations struct {
	Direct  map[string]string
	Aliases map[string]string
}

// Field declarations are matched line by line inside a group block. Only the
// single-line `name = 'literal'` and `name = Group.field` forms are
// recognized; multi-line literals and string concatenation are out of scope.
var (
	directFieldRe = regexp.MustCompile(`(?m)^\s*(?:static\s+)?(?:const\s+|final\s+)?(?:String\s+)?([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*['"]([^'"\n]+)['"]`)
	aliasFieldRe  = regexp.MustCompile(`(?m)^\s*(?:static\s+)?(?:const\s+|final\s+)?(?:String\s+)?([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*([A-Za-z_$][A-Za-z0-9_$]*)\.([A-Za-z_$][A-Za-z0-9_$]*)\s*;?`)
)

// DeclarationParser extracts asset constant declarations from code files.
type DeclarationParser struct {
	rootDir      string
	directGroups []string
	aliasGroups  []string
	assetPrefix  string
	headerRes    map[string]*regexp.Regexp
}

// NewDeclarationParser creates a parser recognizing the given direct and
// alias holder groups. Literal values are kept only when they start with
// assetPrefix.
func NewDeclarationParser(rootDir string, directGroups, aliasGroups []string, assetPrefix string) *DeclarationParser {
	p := &DeclarationParser{
		rootDir:      rootDir,
		directGroups: directGroups,
		aliasGroups:  aliasGroups,
		assetPrefix:  assetPrefix,
		headerRes:    make(map[string]*regexp.Regexp, len(directGroups)+len(aliasGroups)),
	}

	for _, group := range directGroups {
		p.headerRes[group] = headerRegexp(group)
	}
	for _, group := range aliasGroups {
		p.headerRes[group] = headerRegexp(group)
	}

	return p
}

func headerRegexp(group string) *regexp.Regexp {
	return regexp.MustCompile(`class\s+` + regexp.QuoteMeta(group) + `\b`)
}

// Parse scans the given code files (paths relative to the project root) and
// returns the extracted declarations. Files declaring the same key later in
// the list overwrite earlier entries. Unreadable files contribute nothing.
func (p *DeclarationParser) Parse(codeFiles []string) *Declarations {
	decls := &Declarations{
		Direct:  make(map[string]string),
		Aliases: make(map[string]string),
	}

	for _, file := range codeFiles {
		data, err := os.ReadFile(filepath.Join(p.rootDir, filepath.FromSlash(file)))
		if err != nil {
			log.Printf("Warning: skipping %s: %v", file, err)
			continue
		}
		text := string(data)

		if !p.isDefinitionFile(text) {
			continue
		}

		for _, group := range p.directGroups {
			block, ok := p.groupBlock(text, group)
			if !ok {
				continue
			}
			p.extractDirect(group, block, decls.Direct)
		}

		for _, group := range p.aliasGroups {
			block, ok := p.groupBlock(text, group)
			if !ok {
				continue
			}
			p.extractAliases(group, block, decls.Aliases)
		}
	}

	return decls
}

// isDefinitionFile is a cheap textual pre-filter: a file is only worth block
// extraction if it mentions at least one known group declaration.
func (p *DeclarationParser) isDefinitionFile(text string) bool {
	for _, group := range p.directGroups {
		if strings.Contains(text, "class "+group) {
			return true
		}
	}
	for _, group := range p.aliasGroups {
		if strings.Contains(text, "class "+group) {
			return true
		}
	}
	return false
}

// groupBlock locates the first declaration of the given group in text and
// returns the body between its enclosing braces.
func (p *DeclarationParser) groupBlock(text, group string) (string, bool) {
	loc := p.headerRes[group].FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	open := strings.Index(text[loc[1]:], "{")
	if open < 0 {
		return "", false
	}
	start := loc[1] + open

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start+1 : i], true
			}
		}
	}

	// Unbalanced braces: malformed declaration, no partial extraction.
	return "", false
}

func (p *DeclarationParser) extractDirect(group, block string, out map[string]string) {
	for _, m := range directFieldRe.FindAllStringSubmatch(block, -1) {
		field, literal := m[1], m[2]
		if !strings.HasPrefix(literal, p.assetPrefix) {
			continue
		}
		out[group+"."+field] = literal
	}
}

func (p *DeclarationParser) extractAliases(group, block string, out map[string]string) {
	for _, m := range aliasFieldRe.FindAllStringSubmatch(block, -1) {
		field, targetGroup, targetField := m[1], m[2], m[3]
		if !p.isDirectGroup(targetGroup) {
			continue
		}
		out[group+"."+field] = targetGroup + "." + targetField
	}
}

func (p *DeclarationParser) isDirectGroup(name string) bool {
	for _, group := range p.directGroups {
		if group == name {
			return true
		}
	}
	return false
}
