// Package compound implements Hunspell compound-word recognition: the
// two parallel compounding modes described by COMPOUNDRULE (rulemode.go)
// and by COMPOUNDFLAG/COMPOUNDBEGIN/COMPOUNDMIDDLE/COMPOUNDEND
// (compound.go, this file), plus the shared junction rules in
// boundary.go. Both modes can be configured at once; when COMPOUNDRULE
// patterns are present, rule mode alone decides and flag mode is not
// consulted.
package compound

import (
	"github.com/coregx/hunspell/affix"
	"github.com/coregx/hunspell/derive"
	"github.com/coregx/hunspell/dict"
	hflag "github.com/coregx/hunspell/flag"
)

type partRole int

const (
	roleBegin partRole = iota
	roleMiddle
	roleEnd
)

// candidate is one admissible reading of a word span as a compound part,
// either a direct dictionary entry or an affix-derived form (derive
// package, ONLYINCOMPOUND roots permitted since this is compound
// context).
type candidate struct {
	flags         hflag.Set
	suffixDerived bool
	prefixDerived bool
}

// CheckCompound reports whether word can be assembled from ≥2 dictionary
// parts under the configured compounding rules, and whether the winning
// split requires the whole word to begin with an upper-case letter
// (FORCEUCASE on a part sitting at either edge, left to the caller,
// since only the caller knows the token's actual casing). Rule mode
// (COMPOUNDRULE) and flag mode (COMPOUNDFLAG/BEGIN/MIDDLE/END) are two
// independently configurable mechanisms; when COMPOUNDRULE patterns are
// configured they govern compounding and flag mode is not consulted.
// When no COMPOUNDRULE patterns are configured, flag mode applies if any
// compound-position flag is configured.
func CheckCompound(word string, cfg *affix.Configuration, idx *dict.LexicalIndex, d *derive.Deriver) (ok bool, forceUpper bool) {
	if len(cfg.Compound.Rules) > 0 {
		return checkRuleMode(word, cfg, idx)
	}
	cd := cfg.Compound
	if cd.HasFlag || cd.HasBegin || cd.HasMiddle || cd.HasEnd {
		return checkFlagMode(word, cfg, idx, d)
	}
	return false, false
}

// checkFlagMode implements the COMPOUNDFLAG/BEGIN/MIDDLE/END search: a
// recursive, bounded partition walk where each part's
// admissibility depends on its position (first/middle/last), its
// compounding flags, and whether it is itself an affix derivation (an
// affix-derived form may only occupy the edge consistent with the
// affix it carries, unless COMPOUNDPERMIT overrides it). Recursion
// depth is bounded by word length / COMPOUNDMIN rather than left
// unbounded.
func checkFlagMode(word string, cfg *affix.Configuration, idx *dict.LexicalIndex, d *derive.Deriver) (bool, bool) {
	cd := cfg.Compound
	minLen := cd.MinLen
	if minLen < 1 {
		minLen = 1
	}
	maxParts := len(word)/minLen + 1
	syllables := countVowels(word, cfg)

	var search func(start, count int, prevText string, prevFlags hflag.Set) (bool, bool)
	search = func(start, count int, prevText string, prevFlags hflag.Set) (bool, bool) {
		if start == len(word) {
			return count >= 2, false
		}
		if count >= maxParts {
			return false, false
		}
		for end := start + minLen; end <= len(word); end++ {
			isLast := end == len(word)
			if start == 0 && isLast {
				continue // a single part is not a compound
			}
			var role partRole
			switch {
			case start == 0:
				role = roleBegin
			case isLast:
				role = roleEnd
			default:
				role = roleMiddle
			}
			if cd.HasWordMax && count+1 > cd.WordMax {
				if !(cd.HasSyllable && syllables <= cd.SyllableMax) {
					continue
				}
			}
			text := word[start:end]
			for _, c := range gatherCandidates(text, cfg, idx, d) {
				if !admissibleForRole(cfg, c, role) {
					continue
				}
				if count > 0 && !boundaryOK(cfg, idx, prevText, text, prevFlags, c.flags) {
					continue
				}
				if childOK, childForce := search(end, count+1, text, c.flags); childOK {
					force := childForce
					if start == 0 && RequiresForceUppercase(cfg, c.flags) {
						force = true
					}
					if isLast && RequiresForceUppercase(cfg, c.flags) {
						force = true
					}
					return true, force
				}
			}
		}
		return false, false
	}

	ok, force := search(0, 0, "", hflag.Set{})
	if !ok {
		return false, false
	}
	if !checkRep(word, cfg, idx) {
		return false, false
	}
	return true, force
}

// gatherCandidates returns every admissible reading of text as a
// compound part: direct dictionary entries (FORBIDDENWORD excluded) and
// affix derivations (ONLYINCOMPOUND roots permitted).
func gatherCandidates(text string, cfg *affix.Configuration, idx *dict.LexicalIndex, d *derive.Deriver) []candidate {
	var out []candidate
	for _, e := range idx.Lookup(text) {
		if cfg.Attributes.HasForbidden && e.HasFlag(cfg.Attributes.Forbidden) {
			continue
		}
		out = append(out, candidate{flags: e.Flags.Clone()})
	}
	for _, r := range d.TryFindAffixBase(text, true) {
		if cfg.Attributes.HasForbidden && r.RootEntry.HasFlag(cfg.Attributes.Forbidden) {
			continue
		}
		eff := r.EffectiveFlags()
		out = append(out, candidate{
			flags:         eff,
			suffixDerived: r.SuffixDerived(),
			prefixDerived: r.PrefixDerived(),
		})
	}
	return out
}

// admissibleForRole applies COMPOUNDFLAG/BEGIN/MIDDLE/END/ROOT/FORBID
// membership and the affix-derivation edge constraint.
func admissibleForRole(cfg *affix.Configuration, c candidate, role partRole) bool {
	cd := cfg.Compound
	if cd.HasForbid && c.flags.Contains(cd.Forbid) {
		return false
	}
	generalOK := cd.HasFlag && c.flags.Contains(cd.Flag)
	rootOK := cd.HasRoot && c.flags.Contains(cd.Root)
	var roleOK bool
	switch role {
	case roleBegin:
		roleOK = cd.HasBegin && c.flags.Contains(cd.Begin)
	case roleMiddle:
		roleOK = cd.HasMiddle && c.flags.Contains(cd.Middle)
	case roleEnd:
		roleOK = cd.HasEnd && c.flags.Contains(cd.End)
	}
	if !generalOK && !roleOK && !rootOK {
		return false
	}
	permit := cd.HasPermit && c.flags.Contains(cd.Permit)
	if c.suffixDerived && role != roleEnd && !permit {
		return false
	}
	if c.prefixDerived && role != roleBegin && !permit {
		return false
	}
	return true
}

// RequiresForceUppercase reports whether a compound part's flags carry
// FORCEUCASE; both compounding modes apply it to the first and the last
// part. A true result obliges the caller (the checker package, which
// knows the original input's casing) to reject an otherwise-valid
// compound that was not written with an initial capital.
func RequiresForceUppercase(cfg *affix.Configuration, partFlags hflag.Set) bool {
	return cfg.Attributes.HasForceUCase && partFlags.Contains(cfg.Attributes.ForceUCase)
}

func countVowels(word string, cfg *affix.Configuration) int {
	if len(cfg.Compound.VowelSet) == 0 {
		return 0
	}
	n := 0
	for _, r := range word {
		if cfg.IsVowel(r) {
			n++
		}
	}
	return n
}
