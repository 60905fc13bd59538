package compound

import (
	"strings"
	"unicode"

	"github.com/coregx/hunspell/affix"
	"github.com/coregx/hunspell/dict"
	hflag "github.com/coregx/hunspell/flag"
)

// boundaryOK applies every configured junction rule between the
// previously accepted part and the candidate current part.
func boundaryOK(cfg *affix.Configuration, idx *dict.LexicalIndex, prev, cur string, prevFlags, curFlags hflag.Set) bool {
	if cfg.Compound.CheckDup && checkDup(prev, cur) {
		return false
	}
	if cfg.Compound.CheckCase && !checkCase(prev, cur) {
		return false
	}
	if cfg.Compound.CheckTriple && !checkTriple(prev, cur, cfg.Compound.SimplifiedTriple) {
		return false
	}
	if len(cfg.Compound.Patterns) > 0 && !checkPattern(prev, cur, prevFlags, curFlags, cfg.Compound.Patterns) {
		return false
	}
	return true
}

// checkDup implements CHECKCOMPOUNDDUP: reject an exact (case-insensitive)
// repeat of the immediately preceding part.
func checkDup(prev, cur string) bool {
	return strings.EqualFold(prev, cur)
}

// checkCase implements CHECKCOMPOUNDCASE: reject when the boundary runs
// lowercase-into-Upper or Upper-into-Upper. Upper-into-lowercase (e.g. a
// capitalized first part) is permitted.
func checkCase(prev, cur string) bool {
	pr := []rune(prev)
	cr := []rune(cur)
	if len(pr) == 0 || len(cr) == 0 {
		return true
	}
	a, b := pr[len(pr)-1], cr[0]
	if !unicode.IsLetter(a) || !unicode.IsLetter(b) {
		return true
	}
	return !unicode.IsUpper(b)
}

// checkTriple implements CHECKCOMPOUNDTRIPLE: reject three identical
// letters straddling the boundary. SIMPLIFIEDTRIPLE disables the
// rejection, matching the orthographic convention of writing only two of
// the three identical letters.
func checkTriple(prev, cur string, simplified bool) bool {
	if simplified {
		return true
	}
	pr := []rune(prev)
	cr := []rune(cur)
	var tail []rune
	if len(pr) >= 2 {
		tail = pr[len(pr)-2:]
	} else {
		tail = pr
	}
	var head []rune
	if len(cr) >= 2 {
		head = cr[:2]
	} else {
		head = cr
	}
	window := append(append([]rune{}, tail...), head...)
	for i := 0; i+2 < len(window); i++ {
		if window[i] == window[i+1] && window[i+1] == window[i+2] {
			return false
		}
	}
	return true
}

// checkPattern implements CHECKCOMPOUNDPATTERN.
func checkPattern(prev, cur string, prevFlags, curFlags hflag.Set, patterns []affix.CompoundPattern) bool {
	for _, p := range patterns {
		if p.EndChars != "" && !strings.HasSuffix(prev, p.EndChars) {
			continue
		}
		if p.BeginChars != "" && !strings.HasPrefix(cur, p.BeginChars) {
			continue
		}
		if p.HasEndFlag && !prevFlags.Contains(p.EndFlag) {
			continue
		}
		if p.HasBeginFlag && !curFlags.Contains(p.BeginFlag) {
			continue
		}
		return false
	}
	return true
}

// checkRep implements CHECKCOMPOUNDREP: the whole compound is rejected if
// any single REP substitution turns it into an existing dictionary word.
// The lexical index's Aho-Corasick automaton prefilters candidates (a
// replaced form can only be an exact dictionary word if it also contains
// one as a substring, trivially itself, before the exact membership
// check.
func checkRep(word string, cfg *affix.Configuration, idx *dict.LexicalIndex) bool {
	if !cfg.Compound.CheckRep {
		return true
	}
	for _, rep := range cfg.Rep {
		if rep.From == "" {
			continue
		}
		for i := 0; i+len(rep.From) <= len(word); i++ {
			if word[i:i+len(rep.From)] != rep.From {
				continue
			}
			candidate := word[:i] + rep.To + word[i+len(rep.From):]
			if !idx.ContainsSubstring(candidate) {
				continue
			}
			if idx.ContainsWord(candidate) {
				return false
			}
		}
	}
	return true
}
