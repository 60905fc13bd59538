// Package hunspell implements a Hunspell-compatible spell checker: given
// an affix file (.aff) and a dictionary file (.dic), it answers whether a
// token is a valid surface form of the described language and, for
// invalid tokens, proposes ranked correction candidates.
//
// A Checker is safe to use concurrently from multiple goroutines: Spell
// and Suggest read the runtime word set under a read lock, and Add and
// Remove change it under an exclusive lock.
//
// Example:
//
//	checker, err := hunspell.New(affixFile, dictFile, hunspell.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !checker.Spell("wrod") {
//	    fmt.Println(checker.Suggest("wrod")) // [word ...]
//	}
package hunspell

import (
	"io"
	"strings"
	"sync"

	"github.com/coregx/hunspell/affix"
	"github.com/coregx/hunspell/compound"
	"github.com/coregx/hunspell/derive"
	"github.com/coregx/hunspell/dict"
	"github.com/coregx/hunspell/suggest"
)

// Checker is a compiled spell-checker handle: immutable Configuration and
// LexicalIndex built once at New, plus a small mutable runtime-added word
// set guarded by a reader/exclusive-writer lock.
type Checker struct {
	cfg     *affix.Configuration
	idx     *dict.LexicalIndex
	deriver *derive.Deriver
	config  Config

	mu      sync.RWMutex
	runtime map[string]bool
}

// New builds a Checker from an affix source and a dictionary source. Both
// readers are consumed fully and need not be kept open afterward.
func New(affixSrc, dictSrc io.Reader, config Config) (*Checker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cfg, err := affix.ParseConfiguration(affixSrc)
	if err != nil {
		return nil, err
	}
	entries, err := dict.ParseDictionary(dictSrc, cfg.Codec)
	if err != nil {
		return nil, err
	}
	idx := dict.NewLexicalIndex(entries)
	return &Checker{
		cfg:     cfg,
		idx:     idx,
		deriver: derive.New(cfg, idx),
		config:  config,
		runtime: make(map[string]bool),
	}, nil
}

// Spell reports whether token is a valid surface form, applying ordered
// acceptance checks: direct lookup, affix derivation, BREAK
// decomposition, compound check, WORDCHARS admission, then (if still
// rejected) IGNORE-stripped, ICONV-converted, and trailing-dot-trimmed
// retries of the same chain.
func (c *Checker) Spell(token string) bool {
	if validateToken(token) != nil {
		return false
	}
	return c.spell(token, false)
}

// spell is Spell's implementation, plus inBreak: true once a BREAK split
// has produced the sub-surface being checked, so affixAccepted can allow
// ONLYINCOMPOUND-flagged derivations that a direct top-level call must
// reject (see the ONLYINCOMPOUND break-mode decision in DESIGN.md).
func (c *Checker) spell(token string, inBreak bool) bool {
	if c.spellCore(token, inBreak) {
		return true
	}
	if len(c.cfg.IgnoreChars) > 0 {
		if stripped := stripIgnore(token, c.cfg.IgnoreChars); stripped != token && stripped != "" {
			if c.spellCore(stripped, inBreak) {
				return true
			}
		}
	}
	for _, candidate := range applyIConv(token, c.cfg.IConv) {
		if candidate != token && c.spellCore(candidate, inBreak) {
			return true
		}
	}
	if strings.HasSuffix(token, ".") {
		if trimmed := strings.TrimRight(token, "."); trimmed != "" && c.spellCore(trimmed, inBreak) {
			return true
		}
	}
	return false
}

// spellCore runs acceptance steps 1-5 (runtime words, lookup, affix
// derivation, break, compound, wordchars) without the IGNORE/ICONV/
// trailing-dot retries, which spell layers on top. BREAK sub-surfaces go
// through spell, so each of them gets those retries too.
func (c *Checker) spellCore(word string, inBreak bool) bool {
	if c.hasRuntimeWord(word) {
		return true
	}
	if c.lookupAccepted(word) {
		return true
	}
	if c.affixAccepted(word, inBreak) {
		return true
	}
	if c.breakAccepted(word) {
		return true
	}
	if c.compoundAccepted(word) {
		return true
	}
	if c.wordCharsAccepted(word) {
		return true
	}
	return false
}

// lookupAccepted implements step 1: direct lexical lookup with
// per-variant policy. Exact-case entries are preferred; case-folded
// entries are tried only when no exact-case entry exists, and a
// case-folded KEEPCASE entry is rejected unless CHECKSHARPS exempts it.
func (c *Checker) lookupAccepted(word string) bool {
	entries := c.idx.Lookup(word)
	exact := true
	if len(entries) == 0 {
		entries = c.idx.LookupFold(word)
		exact = false
	}
	for _, e := range entries {
		if c.standaloneAdmissible(e, word, exact) {
			return true
		}
	}
	return false
}

func (c *Checker) standaloneAdmissible(e *dict.Entry, word string, exactCase bool) bool {
	a := c.cfg.Attributes
	if a.HasForbidden && e.HasFlag(a.Forbidden) {
		return false
	}
	if a.HasOnlyInCompound && e.HasFlag(a.OnlyInCompound) {
		return false
	}
	if a.HasNeedAffix && e.HasFlag(a.NeedAffix) {
		return false
	}
	if a.HasKeepCase && e.HasFlag(a.KeepCase) && !exactCase {
		exempt := c.cfg.CheckSharps && (hasSharpS(word) || hasSharpS(e.Surface))
		if !exempt {
			return false
		}
	}
	return true
}

// affixAccepted implements step 2: affix derivation, with the root's
// forbidden flag already excluded by the derive package. inBreak allows
// ONLYINCOMPOUND-flagged roots to participate: a BREAK sub-surface is
// never "standalone" in the sense step 1 means, so the restriction that
// steps 1 and 2 apply to a top-level word does not apply here.
func (c *Checker) affixAccepted(word string, inBreak bool) bool {
	for _, r := range c.deriver.TryFindAffixBase(word, inBreak) {
		eff := r.EffectiveFlags()
		if c.cfg.Attributes.HasForbidden && eff.Contains(c.cfg.Attributes.Forbidden) {
			continue
		}
		return true
	}
	return false
}

// breakAccepted implements step 3: split at any non-edge occurrence of a
// configured BREAK sequence into two non-empty sub-surfaces, each
// accepted by the full spell pipeline recursively, in break-mode context.
func (c *Checker) breakAccepted(word string) bool {
	for _, seq := range c.cfg.BreakSeqs {
		if seq == "" {
			continue
		}
		for i := strings.Index(word, seq); i >= 0; {
			if i > 0 && i+len(seq) < len(word) {
				left, right := word[:i], word[i+len(seq):]
				if c.spell(left, true) && c.spell(right, true) {
					return true
				}
			}
			next := strings.Index(word[i+1:], seq)
			if next < 0 {
				break
			}
			i = i + 1 + next
		}
	}
	return false
}

// compoundAccepted implements step 4, plus the FORCEUCASE final-form
// constraint: a split that requires an upper-case initial is only
// accepted if word actually starts with an upper-case letter.
func (c *Checker) compoundAccepted(word string) bool {
	ok, forceUpper := compound.CheckCompound(word, c.cfg, c.idx, c.deriver)
	if !ok {
		return false
	}
	if forceUpper && !startsUpper(word) {
		return false
	}
	return true
}

// wordCharsAccepted implements step 5: admission via a configured
// WORDCHARS set, subject to the punctuation-boundary sanity rules.
func (c *Checker) wordCharsAccepted(word string) bool {
	if len(c.cfg.WordChars) == 0 {
		return false
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !c.cfg.WordChars[r] {
			return false
		}
	}
	if isPunctClass(runes[0]) || isPunctClass(runes[len(runes)-1]) {
		return false
	}
	for i := 0; i+1 < len(runes); i++ {
		if isPunctClass(runes[i]) && isPunctClass(runes[i+1]) {
			return false
		}
	}
	return true
}

// Suggest returns up to config.MaxSuggestions ranked correction
// candidates for token, never including token itself.
func (c *Checker) Suggest(token string) []string {
	if validateToken(token) != nil {
		return nil
	}
	maxCompound := c.config.MaxCompoundSuggestions
	if c.cfg.HasMaxCpdSugs {
		maxCompound = c.cfg.MaxCpdSugs
	}
	sc := suggest.Config{
		Cap:                    c.config.MaxSuggestions,
		MaxCompoundSuggestions: maxCompound,
		MaxEditDistance:        c.config.MaxEditDistance,
		OnlyMaxDiff:            c.cfg.OnlyMaxDiff,
		MaxDiff:                c.cfg.MaxDiff,
		HasMaxDiff:             c.cfg.HasMaxDiff,
		NoSplitSuggestions:     c.cfg.NoSplitSugs,
	}
	suggestions := suggest.Generate(token, c.cfg, c.idx, c.Spell, sc)
	if len(c.cfg.OConv) == 0 {
		return suggestions
	}
	for i, s := range suggestions {
		suggestions[i] = applyOConv(s, c.cfg.OConv)
	}
	return suggestions
}

// applyOConv converts an internal dictionary surface to its displayed
// spelling, applying every OCONV pair once, in declared order, globally
// across the candidate (the inverse direction of ICONV's input
// normalization).
func applyOConv(candidate string, pairs []affix.ReplacementPair) string {
	for _, p := range pairs {
		if p.From == "" {
			continue
		}
		candidate = strings.ReplaceAll(candidate, p.From, p.To)
	}
	return candidate
}

// Add inserts word into the runtime word set. Reports false if word was
// already present (in the dictionary or the runtime set).
func (c *Checker) Add(word string) bool {
	if word == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.runtime[word] || c.idx.ContainsWord(word) {
		return false
	}
	c.runtime[word] = true
	return true
}

// Remove deletes word from the runtime word set. Reports false if word
// was not present there (words loaded from the dictionary file cannot be
// removed this way).
func (c *Checker) Remove(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.runtime[word] {
		return false
	}
	delete(c.runtime, word)
	return true
}

func (c *Checker) hasRuntimeWord(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runtime[word]
}

func stripIgnore(word string, ignore map[rune]bool) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if ignore[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// applyIConv returns every candidate produced by one single (first-
// occurrence) or global (all-occurrences) ICONV substitution.
func applyIConv(word string, pairs []affix.ReplacementPair) []string {
	var out []string
	for _, p := range pairs {
		if p.From == "" || !strings.Contains(word, p.From) {
			continue
		}
		if single := strings.Replace(word, p.From, p.To, 1); single != word {
			out = append(out, single)
		}
		if all := strings.ReplaceAll(word, p.From, p.To); all != word {
			out = append(out, all)
		}
	}
	return out
}
