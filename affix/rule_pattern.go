package affix

import (
	"strings"

	hflag "github.com/coregx/hunspell/flag"
)

// compileRulePattern parses a COMPOUNDRULE pattern string into a
// CompoundRulePattern: a concatenation of tokens, each a flag, a
// parenthesized group of flag alternatives, or a digit class 1..7,
// optionally followed by '*' or '?'.
func compileRulePattern(src string, codec hflag.Codec) (CompoundRulePattern, bool) {
	var pat CompoundRulePattern
	runes := []rune(src)
	for i := 0; i < len(runes); {
		var tok RuleToken
		switch {
		case runes[i] == '(':
			end := indexRuneFrom(runes, i+1, ')')
			if end < 0 {
				return CompoundRulePattern{}, false
			}
			group := string(runes[i+1 : end])
			set := codec.Decode(group)
			tok.Flags = set.Slice()
			i = end + 1
		case runes[i] >= '1' && runes[i] <= '7':
			tok.IsDigit = true
			tok.Digit = int(runes[i] - '0')
			i++
		default:
			set := codec.Decode(string(runes[i]))
			if set.Len() == 0 {
				i++
				continue
			}
			tok.Flags = set.Slice()
			i++
		}
		if i < len(runes) {
			switch runes[i] {
			case '*':
				tok.Quant = QuantStar
				i++
			case '?':
				tok.Quant = QuantOpt
				i++
			}
		}
		pat.Tokens = append(pat.Tokens, tok)
	}
	if len(pat.Tokens) == 0 {
		return CompoundRulePattern{}, false
	}
	return pat, true
}

func indexRuneFrom(rs []rune, from int, target rune) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == target {
			return i
		}
	}
	return -1
}

// compileCompoundPattern parses a CHECKCOMPOUNDPATTERN entry's fields
// ("CHECKCOMPOUNDPATTERN endchars[/flag] beginchars[/flag] [replacement]").
func compileCompoundPattern(fields []string, codec hflag.Codec) (CompoundPattern, bool) {
	if len(fields) < 3 {
		return CompoundPattern{}, false
	}
	var p CompoundPattern
	p.EndChars, p.EndFlag, p.HasEndFlag = splitCharsFlag(fields[1], codec)
	p.BeginChars, p.BeginFlag, p.HasBeginFlag = splitCharsFlag(fields[2], codec)
	if len(fields) >= 4 {
		p.Replacement = fields[3]
	}
	return p, true
}

func splitCharsFlag(tok string, codec hflag.Codec) (string, hflag.Flag, bool) {
	idx := strings.IndexByte(tok, '/')
	if idx < 0 {
		return tok, 0, false
	}
	set := codec.Decode(tok[idx+1:])
	if set.Len() == 0 {
		return tok[:idx], 0, false
	}
	return tok[:idx], set.Slice()[0], true
}
