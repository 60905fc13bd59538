// Package derive implements affix derivation: given a candidate surface
// form, it enumerates the dictionary roots that could have produced it
// via one prefix, one suffix, or a nested prefix+suffix pair.
//
// The search is exhaustive but bounded: at most one extra level of
// stacking is tried past the first affix, against a fixed rule table,
// with no unbounded recursion.
package derive

import (
	"strings"

	"github.com/coregx/hunspell/affix"
	"github.com/coregx/hunspell/dict"
	hflag "github.com/coregx/hunspell/flag"
)

// Kind classifies how a derivation was assembled.
type Kind int

const (
	SuffixOnly Kind = iota
	PrefixOnly
	PrefixThenSuffix // surface = suffix(prefix(root)): prefix applied first, suffix outermost
	SuffixThenPrefix // surface = prefix(suffix(root)): suffix applied first, prefix outermost
)

// Result is one admissible derivation of a surface form.
type Result struct {
	RootEntry     *dict.Entry
	AppendedFlags hflag.Set
	Kind          Kind
	AffixCount    int
	PrefixRule    *affix.Rule
	SuffixRule    *affix.Rule
}

// EffectiveFlags is the root's own flags union the flags appended by
// every affix rule applied in this derivation.
func (r *Result) EffectiveFlags() hflag.Set {
	return r.RootEntry.Flags.Union(&r.AppendedFlags)
}

// SuffixDerived reports whether the outermost affix applied was a
// suffix: such a derivation may not appear in a non-final compound
// position unless it carries the COMPOUNDPERMIT flag.
func (r *Result) SuffixDerived() bool {
	return r.Kind == SuffixOnly || r.Kind == PrefixThenSuffix
}

// PrefixDerived reports whether the outermost affix applied was a
// prefix: such a derivation may not appear in a non-initial compound
// position unless it carries the COMPOUNDPERMIT flag.
func (r *Result) PrefixDerived() bool {
	return r.Kind == PrefixOnly || r.Kind == SuffixThenPrefix
}

// Deriver enumerates affix derivations against a fixed Configuration and
// LexicalIndex.
type Deriver struct {
	cfg *affix.Configuration
	idx *dict.LexicalIndex
}

// New returns a Deriver over cfg and idx.
func New(cfg *affix.Configuration, idx *dict.LexicalIndex) *Deriver {
	return &Deriver{cfg: cfg, idx: idx}
}

// TryFindAffixBase enumerates every admissible derivation of surface.
// allowOnlyInCompound controls whether roots flagged ONLYINCOMPOUND are
// admissible (the compound splitter passes true; the standalone checker
// step passes false).
func (d *Deriver) TryFindAffixBase(surface string, allowOnlyInCompound bool) []Result {
	var out []Result

	for _, sufRule := range d.allSuffixRules() {
		inter, ok := peelSuffix(surface, sufRule, d.cfg.FullStrip)
		if !ok {
			continue
		}
		for _, root := range d.rootCandidates(inter, sufRule.Flag, allowOnlyInCompound) {
			out = append(out, Result{
				RootEntry:     root,
				AppendedFlags: sufRule.AppendedFlags.Clone(),
				Kind:          SuffixOnly,
				AffixCount:    1,
				SuffixRule:    &sufRule,
			})
		}
		if !sufRule.CrossProduct {
			continue
		}
		for _, preRule := range d.allPrefixRules() {
			if !preRule.CrossProduct {
				continue
			}
			inner, ok2 := peelPrefix(inter, preRule, d.cfg.FullStrip)
			if !ok2 {
				continue
			}
			if !circumfixOK(d.cfg, preRule, sufRule) {
				continue
			}
			for _, root := range d.rootCandidates(inner, preRule.Flag, allowOnlyInCompound) {
				af := sufRule.AppendedFlags.Union(&preRule.AppendedFlags)
				out = append(out, Result{
					RootEntry:     root,
					AppendedFlags: af,
					Kind:          PrefixThenSuffix,
					AffixCount:    2,
					PrefixRule:    &preRule,
					SuffixRule:    &sufRule,
				})
			}
		}
	}

	for _, preRule := range d.allPrefixRules() {
		inter, ok := peelPrefix(surface, preRule, d.cfg.FullStrip)
		if !ok {
			continue
		}
		for _, root := range d.rootCandidates(inter, preRule.Flag, allowOnlyInCompound) {
			out = append(out, Result{
				RootEntry:     root,
				AppendedFlags: preRule.AppendedFlags.Clone(),
				Kind:          PrefixOnly,
				AffixCount:    1,
				PrefixRule:    &preRule,
			})
		}
		if !preRule.CrossProduct {
			continue
		}
		for _, sufRule := range d.allSuffixRules() {
			if !sufRule.CrossProduct {
				continue
			}
			inner, ok2 := peelSuffix(inter, sufRule, d.cfg.FullStrip)
			if !ok2 {
				continue
			}
			if !circumfixOK(d.cfg, preRule, sufRule) {
				continue
			}
			for _, root := range d.rootCandidates(inner, sufRule.Flag, allowOnlyInCompound) {
				af := preRule.AppendedFlags.Union(&sufRule.AppendedFlags)
				out = append(out, Result{
					RootEntry:     root,
					AppendedFlags: af,
					Kind:          SuffixThenPrefix,
					AffixCount:    2,
					PrefixRule:    &preRule,
					SuffixRule:    &sufRule,
				})
			}
		}
	}

	return out
}

func (d *Deriver) allSuffixRules() []affix.Rule {
	var out []affix.Rule
	for _, rules := range d.cfg.Suffixes {
		out = append(out, rules...)
	}
	return out
}

func (d *Deriver) allPrefixRules() []affix.Rule {
	var out []affix.Rule
	for _, rules := range d.cfg.Prefixes {
		out = append(out, rules...)
	}
	return out
}

// rootCandidates returns every dictionary entry for word that accepts
// rule flag required and is admissible as a derivation base: not
// forbidden, and not ONLYINCOMPOUND unless allowOnlyInCompound.
func (d *Deriver) rootCandidates(word string, required hflag.Flag, allowOnlyInCompound bool) []*dict.Entry {
	var out []*dict.Entry
	for _, e := range d.idx.Lookup(word) {
		if !e.HasFlag(required) {
			continue
		}
		if d.cfg.Attributes.HasForbidden && e.HasFlag(d.cfg.Attributes.Forbidden) {
			continue
		}
		if !allowOnlyInCompound && d.cfg.Attributes.HasOnlyInCompound && e.HasFlag(d.cfg.Attributes.OnlyInCompound) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func peelSuffix(word string, r affix.Rule, fullStrip bool) (string, bool) {
	if !strings.HasSuffix(word, r.Append) {
		return "", false
	}
	base := word[:len(word)-len(r.Append)]
	if !fullStrip && base == "" && r.Strip != "" {
		return "", false
	}
	intermediate := base + r.Strip
	if !r.Condition.Match(intermediate) {
		return "", false
	}
	return intermediate, true
}

func peelPrefix(word string, r affix.Rule, fullStrip bool) (string, bool) {
	if !strings.HasPrefix(word, r.Append) {
		return "", false
	}
	base := word[len(r.Append):]
	if !fullStrip && base == "" && r.Strip != "" {
		return "", false
	}
	intermediate := r.Strip + base
	if !r.Condition.Match(intermediate) {
		return "", false
	}
	return intermediate, true
}

func circumfixOK(cfg *affix.Configuration, pre, suf affix.Rule) bool {
	if !cfg.Attributes.HasCircumfix {
		return true
	}
	cf := cfg.Attributes.Circumfix
	return pre.AppendedFlags.Contains(cf) == suf.AppendedFlags.Contains(cf)
}
