package compound

import (
	"github.com/coregx/hunspell/affix"
	"github.com/coregx/hunspell/dict"
	hflag "github.com/coregx/hunspell/flag"
)

type partInfo struct {
	text       string
	flags      hflag.Set
	digitClass [digitClassCount]bool
}

// checkRuleMode implements COMPOUNDRULE matching: word is accepted if
// some partition into ≥2 dictionary parts has a
// per-part token sequence matching one of the configured patterns.
func checkRuleMode(word string, cfg *affix.Configuration, idx *dict.LexicalIndex) (bool, bool) {
	minLen := cfg.Compound.MinLen
	if minLen < 1 {
		minLen = 1
	}
	maxDepth := len(word)/minLen + 1

	var found bool
	var winParts []partInfo
	var walk func(start int, parts []partInfo, texts []string)
	walk = func(start int, parts []partInfo, texts []string) {
		if found || len(parts) > maxDepth {
			return
		}
		if start == len(word) {
			if len(parts) < 2 {
				return
			}
			for _, pat := range cfg.Compound.Rules {
				if matchPattern(pat.Tokens, parts) && ordinalAgreementOK(texts) {
					found = true
					winParts = append([]partInfo(nil), parts...)
					return
				}
			}
			return
		}
		for end := start + minLen; end <= len(word); end++ {
			part := word[start:end]
			entries := idx.Lookup(part)
			if len(entries) == 0 {
				entries = idx.LookupFold(part)
			}
			if len(entries) == 0 {
				continue
			}
			var flags hflag.Set
			for _, e := range entries {
				flags.UnionInto(&e.Flags)
			}
			info := partInfo{text: part, flags: flags, digitClass: classify(part)}
			walk(end, append(parts, info), append(texts, part))
			if found {
				return
			}
		}
	}
	walk(0, nil, nil)
	if !found {
		return false, false
	}
	force := RequiresForceUppercase(cfg, winParts[0].flags) || RequiresForceUppercase(cfg, winParts[len(winParts)-1].flags)
	return true, force
}

func matchPattern(tokens []affix.RuleToken, parts []partInfo) bool {
	return matchFrom(tokens, parts, 0, 0)
}

func matchFrom(tokens []affix.RuleToken, parts []partInfo, ti, pi int) bool {
	if ti == len(tokens) {
		return pi == len(parts)
	}
	tok := tokens[ti]
	switch tok.Quant {
	case affix.QuantOpt:
		if matchFrom(tokens, parts, ti+1, pi) {
			return true
		}
		if pi < len(parts) && tokenMatchesPart(tok, parts[pi]) {
			return matchFrom(tokens, parts, ti+1, pi+1)
		}
		return false
	case affix.QuantStar:
		if pi < len(parts) && tokenMatchesPart(tok, parts[pi]) && matchFrom(tokens, parts, ti, pi+1) {
			return true
		}
		return matchFrom(tokens, parts, ti+1, pi)
	default: // QuantOne
		if pi >= len(parts) || !tokenMatchesPart(tok, parts[pi]) {
			return false
		}
		return matchFrom(tokens, parts, ti+1, pi+1)
	}
}

func tokenMatchesPart(tok affix.RuleToken, p partInfo) bool {
	if tok.IsDigit {
		if tok.Digit < 0 || tok.Digit >= digitClassCount {
			return false
		}
		return p.digitClass[tok.Digit]
	}
	for _, f := range tok.Flags {
		if p.flags.Contains(f) {
			return true
		}
	}
	return false
}
