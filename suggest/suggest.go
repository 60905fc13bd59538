// Package suggest generates ranked correction candidates for a token that
// failed Spell, following a fixed priority order: every candidate from
// every stage is re-verified through the checker's own Spell before
// acceptance, so a suggestion is never weaker than the acceptance policy
// it is meant to fix.
//
// Several independent generators contribute into one capped, ordered
// result set, each tried only until the budget is exhausted.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/coregx/hunspell/affix"
	"github.com/coregx/hunspell/dict"
)

// Config controls suggestion generation beyond the checker-facing cap.
type Config struct {
	Cap                    int
	MaxCompoundSuggestions int
	MaxEditDistance        int

	OnlyMaxDiff bool
	MaxDiff     int
	HasMaxDiff  bool

	NoSplitSuggestions bool
}

const lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Generate returns up to sc.Cap ranked candidates for word, trying each
// generation strategy in priority order. spell is the checker's own
// acceptance predicate;
// every candidate is filtered through it before being added.
func Generate(word string, cfg *affix.Configuration, idx *dict.LexicalIndex, spell func(string) bool, sc Config) []string {
	if sc.Cap <= 0 {
		sc.Cap = 10
	}
	g := &generator{
		word:  word,
		cfg:   cfg,
		idx:   idx,
		spell: spell,
		sc:    sc,
		seen:  map[string]bool{word: true},
	}

	g.substitutions()
	g.mapSubstitutions()
	g.insertions()
	g.deletions()
	g.adjacentSwaps()
	g.repAndPhonetic()
	if !sc.NoSplitSuggestions {
		g.splits()
	}
	g.possessive()
	g.twoEditNeighborhood()
	g.levenshteinScan()

	return g.out
}

type generator struct {
	word  string
	cfg   *affix.Configuration
	idx   *dict.LexicalIndex
	spell func(string) bool
	sc    Config

	seen map[string]bool
	out  []string
}

func (g *generator) full() bool {
	return len(g.out) >= g.sc.Cap
}

// tryAlphabet is TRY-order characters followed by any plain-alphabetic
// fallback character TRY omits.
func (g *generator) tryAlphabet() []rune {
	out := make([]rune, 0, len(g.cfg.Try)+len(lowerAlphabet))
	present := make(map[rune]bool)
	for _, r := range g.cfg.Try {
		out = append(out, r)
		present[r] = true
	}
	for _, r := range lowerAlphabet {
		if !present[r] {
			out = append(out, r)
		}
	}
	return out
}

func (g *generator) add(candidate string) {
	if g.full() || candidate == "" || g.seen[candidate] {
		return
	}
	g.seen[candidate] = true
	if !g.accept(candidate) {
		return
	}
	g.out = append(g.out, candidate)
}

// accept applies the common filters every stage shares: must pass Spell,
// must not be flagged NOSUGGEST, and must satisfy ONLYMAXDIFF if set.
func (g *generator) accept(candidate string) bool {
	if !g.spell(candidate) {
		return false
	}
	if g.isNoSuggest(candidate) {
		return false
	}
	if g.sc.OnlyMaxDiff && g.sc.HasMaxDiff {
		if levenshtein.ComputeDistance(g.word, candidate) > g.sc.MaxDiff {
			return false
		}
	}
	return true
}

func (g *generator) isNoSuggest(candidate string) bool {
	if !g.cfg.Attributes.HasNoSuggest {
		return false
	}
	entries := g.idx.Lookup(candidate)
	if len(entries) == 0 {
		entries = g.idx.LookupFold(candidate)
	}
	for _, e := range entries {
		if e.HasFlag(g.cfg.Attributes.NoSuggest) {
			return true
		}
	}
	return false
}

func (g *generator) substitutions() {
	runes := []rune(g.word)
	alphabet := g.tryAlphabet()
	for i := range runes {
		if g.full() {
			return
		}
		orig := runes[i]
		for _, r := range alphabet {
			if r == orig {
				continue
			}
			runes[i] = r
			g.add(string(runes))
			if g.full() {
				runes[i] = orig
				return
			}
		}
		runes[i] = orig
	}
}

// mapSubstitutions tries, at every position, every other member of a
// configured MAP equivalence group the current character belongs to
// (e.g. MAP group "aá" lets an input spelled with plain "a" suggest the
// accented dictionary form and vice versa), a second, narrower
// substitution source than the TRY-order pass, not a replacement for it.
func (g *generator) mapSubstitutions() {
	if len(g.cfg.Map) == 0 {
		return
	}
	runes := []rune(g.word)
	for i := range runes {
		if g.full() {
			return
		}
		for _, group := range g.cfg.Map {
			if !runeIn(group, runes[i]) {
				continue
			}
			for _, m := range group {
				if m == runes[i] {
					continue
				}
				cand := append([]rune(nil), runes...)
				cand[i] = m
				g.add(string(cand))
				if g.full() {
					return
				}
			}
		}
	}
}

func runeIn(group []rune, r rune) bool {
	for _, g := range group {
		if g == r {
			return true
		}
	}
	return false
}

func (g *generator) insertions() {
	alphabet := g.tryAlphabet()
	runes := []rune(g.word)
	for i := 0; i <= len(runes); i++ {
		if g.full() {
			return
		}
		for _, r := range alphabet {
			candidate := string(runes[:i]) + string(r) + string(runes[i:])
			g.add(candidate)
			if g.full() {
				return
			}
		}
	}
}

func (g *generator) deletions() {
	runes := []rune(g.word)
	for i := range runes {
		if g.full() {
			return
		}
		candidate := string(runes[:i]) + string(runes[i+1:])
		g.add(candidate)
	}
}

func (g *generator) adjacentSwaps() {
	runes := []rune(g.word)
	for i := 0; i+1 < len(runes); i++ {
		if g.full() {
			return
		}
		swapped := append([]rune(nil), runes...)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		g.add(string(swapped))
	}
}

func (g *generator) repAndPhonetic() {
	for _, rp := range g.cfg.Rep {
		if g.full() {
			return
		}
		if rp.From == "" {
			continue
		}
		for i := strings.Index(g.word, rp.From); i >= 0; {
			candidate := g.word[:i] + rp.To + g.word[i+len(rp.From):]
			g.add(candidate)
			if g.full() {
				return
			}
			next := strings.Index(g.word[i+1:], rp.From)
			if next < 0 {
				break
			}
			i = i + 1 + next
		}
	}
	lower := strings.ToLower(g.word)
	for _, rule := range g.idx.PhoneticRules() {
		if g.full() {
			return
		}
		if strings.ToLower(rule.From) == lower {
			g.add(rule.To)
		}
	}
}

func (g *generator) splits() {
	runes := []rune(g.word)
	added := 0
	for i := 1; i < len(runes); i++ {
		if g.full() {
			return
		}
		if g.sc.MaxCompoundSuggestions > 0 && added >= g.sc.MaxCompoundSuggestions {
			return
		}
		left, right := string(runes[:i]), string(runes[i:])
		if left == "" || right == "" {
			continue
		}
		if g.spell(left) && g.spell(right) {
			before := len(g.out)
			g.add(left + " " + right)
			if len(g.out) > before {
				added++
			}
		}
	}
}

func (g *generator) possessive() {
	if !strings.HasSuffix(g.word, "s") || len(g.word) < 2 {
		return
	}
	stem := g.word[:len(g.word)-1]
	g.add(stem + "'s")
}

// twoEditNeighborhood rebuilds the single-substitution and
// single-deletion neighbours of the word and deletes one more rune from
// each; insertions and swaps are not used as either edit. A result is
// pre-filtered against the dictionary's substring index before the
// expensive Spell call.
func (g *generator) twoEditNeighborhood() {
	if g.full() {
		return
	}
	base := []rune(g.word)
	alphabet := g.tryAlphabet()
	var oneEdits []string
	for i := range base {
		for _, r := range alphabet {
			if r == base[i] {
				continue
			}
			cand := append([]rune(nil), base...)
			cand[i] = r
			oneEdits = append(oneEdits, string(cand))
		}
	}
	for i := range base {
		oneEdits = append(oneEdits, string(base[:i])+string(base[i+1:]))
	}

	for _, e := range oneEdits {
		if g.full() {
			return
		}
		runes := []rune(e)
		for i := range runes {
			if g.full() {
				return
			}
			deleted := string(runes[:i]) + string(runes[i+1:])
			if deleted != g.word && !g.idx.ContainsSubstring(deleted) {
				continue
			}
			g.add(deleted)
		}
	}
}

// levenshteinScan is the last-resort fallback: a full scan of every
// dictionary surface, bounded by edit distance and only run while the
// suggestion list is still short and the dictionary is small enough to
// scan cheaply.
func (g *generator) levenshteinScan() {
	if g.full() {
		return
	}
	const smallDictionary = 50000
	if g.idx.Size() > smallDictionary {
		return
	}
	threshold := g.sc.MaxEditDistance
	if threshold <= 0 {
		if len([]rune(g.word)) >= 4 {
			threshold = 2
		} else {
			threshold = 3
		}
	}
	surfaces := g.idx.AllSurfaces()
	sort.Strings(surfaces)
	for _, s := range surfaces {
		if g.full() {
			return
		}
		if s == g.word || g.seen[s] {
			continue
		}
		if levenshtein.ComputeDistance(g.word, s) <= threshold {
			g.add(s)
		}
	}
}
