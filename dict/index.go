package dict

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// LexicalIndex maps surface forms to the dictionary entries that produced
// them and supplies a phonetic replacement table and a fast multi-word
// substring automaton used to prefilter CHECKCOMPOUNDREP candidates and
// the suggester's two-edit candidates.
type LexicalIndex struct {
	bySurface map[string][]*Entry
	byLower   map[string][]*Entry // case-folded index for case-insensitive fallback
	phRules   []PhoneticRule

	automaton *ahocorasick.Automaton // nil if the dictionary is empty
}

// PhoneticRule is one "ph:" replacement pair: a candidate misspelling
// text mapped to the surface that should be suggested.
type PhoneticRule struct {
	From string
	To   string
}

// NewLexicalIndex builds an index over entries. The Aho-Corasick
// automaton is built once, over every distinct surface, so every
// substring prefilter lookup afterward shares that one scan instead of
// paying for its own linear search.
func NewLexicalIndex(entries []*Entry) *LexicalIndex {
	idx := &LexicalIndex{
		bySurface: make(map[string][]*Entry, len(entries)),
		byLower:   make(map[string][]*Entry, len(entries)),
	}

	builder := ahocorasick.NewBuilder()
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		idx.bySurface[e.Surface] = append(idx.bySurface[e.Surface], e)
		lower := strings.ToLower(e.Surface)
		idx.byLower[lower] = append(idx.byLower[lower], e)
		if !seen[e.Surface] {
			seen[e.Surface] = true
			builder.AddPattern([]byte(e.Surface))
		}
		idx.phRules = append(idx.phRules, extractPhoneticRules(e)...)
	}
	if len(seen) > 0 {
		if auto, err := builder.Build(); err == nil {
			idx.automaton = auto
		}
	}
	return idx
}

func extractPhoneticRules(e *Entry) []PhoneticRule {
	var rules []PhoneticRule
	for _, m := range e.Morph {
		if m.Key != "ph" {
			continue
		}
		val := m.Value
		switch {
		case strings.Contains(val, "->"):
			parts := strings.SplitN(val, "->", 2)
			rules = append(rules, PhoneticRule{From: parts[0], To: parts[1]})
		case strings.HasSuffix(val, "*") && len(val) > 1:
			p := val[:len(val)-1] // val with trailing '*' removed
			if len(p) > 0 && len(e.Surface) > 0 {
				rules = append(rules, PhoneticRule{From: p[:len(p)-1], To: e.Surface[:len(e.Surface)-1]})
			}
		default:
			rules = append(rules, PhoneticRule{From: val, To: e.Surface})
		}
	}
	return rules
}

// Lookup returns every entry sharing the exact surface form, preferring
// exact case over folded matches: callers needing case-insensitive
// fallback should call LookupFold only when Lookup returns nothing.
// Exact-case variants always take priority over folded ones.
func (idx *LexicalIndex) Lookup(surface string) []*Entry {
	return idx.bySurface[surface]
}

// LookupFold returns every entry whose surface case-folds to the same
// form as surface.
func (idx *LexicalIndex) LookupFold(surface string) []*Entry {
	return idx.byLower[strings.ToLower(surface)]
}

// ContainsWord reports whether surface has at least one entry, by exact
// case or case-folded.
func (idx *LexicalIndex) ContainsWord(surface string) bool {
	if len(idx.Lookup(surface)) > 0 {
		return true
	}
	return len(idx.LookupFold(surface)) > 0
}

// AllSurfaces returns every distinct surface form in the index, in no
// particular order. Used by the suggester's bounded full-dictionary
// Levenshtein scan fallback; callers needing determinism must sort the
// result themselves.
func (idx *LexicalIndex) AllSurfaces() []string {
	out := make([]string, 0, len(idx.bySurface))
	for s := range idx.bySurface {
		out = append(out, s)
	}
	return out
}

// Size reports the number of distinct surface forms, used to decide
// whether the dictionary is "small" enough for the full scan fallback.
func (idx *LexicalIndex) Size() int {
	return len(idx.bySurface)
}

// PhoneticRules returns the "ph:" replacement table.
func (idx *LexicalIndex) PhoneticRules() []PhoneticRule {
	return idx.phRules
}

// ContainsSubstring reports whether any dictionary surface occurs within
// haystack starting at or after offset 0. Used to prefilter
// CHECKCOMPOUNDREP candidates before falling back to exact Lookup.
func (idx *LexicalIndex) ContainsSubstring(haystack string) bool {
	if idx.automaton == nil {
		return false
	}
	return idx.automaton.IsMatch([]byte(haystack))
}
