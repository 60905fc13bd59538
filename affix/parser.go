package affix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	hflag "github.com/coregx/hunspell/flag"
)

// ParseError reports a fatal condition encountered while reading an affix
// source: missing-file and encoding-mismatch conditions are surfaced by
// the caller's io.Reader/decoder before ParseConfiguration ever runs;
// ParseConfiguration itself only returns an error for an empty source,
// since every other malformed line is skipped.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("affix: line %d: %s", e.Line, e.Reason)
}

// ParseConfiguration reads an affix source and returns its immutable
// Configuration. The flag codec is resolved in a first pass over the FLAG
// directive (if any) before any flag-bearing line is decoded.
func ParseConfiguration(r io.Reader) (*Configuration, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Line: 0, Reason: "empty affix source"}
	}

	cfg := NewConfiguration()
	cfg.Codec = resolveCodec(lines)

	p := &parser{cfg: cfg, lines: lines}
	p.run()
	return cfg, nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\xef\xbb\xbf")
			first = false
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func resolveCodec(lines []string) hflag.Codec {
	for _, line := range lines {
		fields := fieldsOf(line)
		if len(fields) >= 2 && fields[0] == "FLAG" {
			return hflag.ParseCodec(fields[1])
		}
	}
	return hflag.Single
}

func fieldsOf(line string) []string {
	if i := strings.IndexByte(line, '#'); i == 0 {
		return nil
	}
	return strings.Fields(line)
}

type parser struct {
	cfg   *Configuration
	lines []string
}

func (p *parser) run() {
	for i := 0; i < len(p.lines); i++ {
		fields := fieldsOf(p.lines[i])
		if len(fields) == 0 {
			continue
		}
		directive := fields[0]
		switch directive {
		case "SET":
			if len(fields) >= 2 {
				p.cfg.Encoding = fields[1]
			}
		case "FLAG":
			// Already resolved in resolveCodec; nothing further to store.
		case "TRY":
			if len(fields) >= 2 {
				p.cfg.Try = fields[1]
			}
		case "WORDCHARS":
			if len(fields) >= 2 {
				for _, r := range fields[1] {
					p.cfg.WordChars[r] = true
				}
			}
		case "IGNORE":
			if len(fields) >= 2 {
				for _, r := range fields[1] {
					p.cfg.IgnoreChars[r] = true
				}
			}
		case "CHECKSHARPS":
			p.cfg.CheckSharps = true
		case "FULLSTRIP":
			p.cfg.FullStrip = true
		case "ONLYMAXDIFF":
			p.cfg.OnlyMaxDiff = true
		case "NOSPLITSUGS":
			p.cfg.NoSplitSugs = true
		case "SIMPLIFIEDTRIPLE":
			p.cfg.Compound.SimplifiedTriple = true
		case "CHECKCOMPOUNDDUP":
			p.cfg.Compound.CheckDup = true
		case "CHECKCOMPOUNDCASE":
			p.cfg.Compound.CheckCase = true
		case "CHECKCOMPOUNDTRIPLE":
			p.cfg.Compound.CheckTriple = true
		case "CHECKCOMPOUNDREP":
			p.cfg.Compound.CheckRep = true
		case "COMPOUNDMORESUFFIXES", "MORESUFFIXES":
			p.cfg.Compound.MoreSuffixes = true
		case "MAXCPDSUGS":
			if n, ok := intField(fields, 1); ok {
				p.cfg.MaxCpdSugs, p.cfg.HasMaxCpdSugs = n, true
			}
		case "MAXDIFF":
			if n, ok := intField(fields, 1); ok {
				p.cfg.MaxDiff, p.cfg.HasMaxDiff = n, true
			}
		case "COMPOUNDMIN":
			if n, ok := intField(fields, 1); ok {
				p.cfg.Compound.MinLen = n
			}
		case "COMPOUNDWORDMAX":
			if n, ok := intField(fields, 1); ok {
				p.cfg.Compound.WordMax, p.cfg.Compound.HasWordMax = n, true
			}
		case "COMPOUNDSYLLABLE":
			if len(fields) >= 3 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					p.cfg.Compound.SyllableMax = n
					p.cfg.Compound.HasSyllable = true
					p.cfg.Compound.VowelSet = map[rune]bool{}
					for _, r := range fields[2] {
						p.cfg.Compound.VowelSet[r] = true
					}
				}
			}
		case "COMPOUNDFLAG":
			setOneFlag(&p.cfg.Compound.Flag, &p.cfg.Compound.HasFlag, p.cfg, fields)
		case "COMPOUNDBEGIN":
			setOneFlag(&p.cfg.Compound.Begin, &p.cfg.Compound.HasBegin, p.cfg, fields)
		case "COMPOUNDMIDDLE":
			setOneFlag(&p.cfg.Compound.Middle, &p.cfg.Compound.HasMiddle, p.cfg, fields)
		case "COMPOUNDEND", "COMPOUNDLAST":
			setOneFlag(&p.cfg.Compound.End, &p.cfg.Compound.HasEnd, p.cfg, fields)
		case "COMPOUNDROOT":
			setOneFlag(&p.cfg.Compound.Root, &p.cfg.Compound.HasRoot, p.cfg, fields)
		case "COMPOUNDPERMITFLAG":
			setOneFlag(&p.cfg.Compound.Permit, &p.cfg.Compound.HasPermit, p.cfg, fields)
		case "COMPOUNDFORBIDFLAG":
			setOneFlag(&p.cfg.Compound.Forbid, &p.cfg.Compound.HasForbid, p.cfg, fields)
		case "ONLYINCOMPOUND":
			setOneFlag(&p.cfg.Attributes.OnlyInCompound, &p.cfg.Attributes.HasOnlyInCompound, p.cfg, fields)
		case "NOSUGGEST":
			setOneFlag(&p.cfg.Attributes.NoSuggest, &p.cfg.Attributes.HasNoSuggest, p.cfg, fields)
		case "FORBIDDENWORD":
			setOneFlag(&p.cfg.Attributes.Forbidden, &p.cfg.Attributes.HasForbidden, p.cfg, fields)
		case "NEEDAFFIX", "PSEUDOROOT":
			setOneFlag(&p.cfg.Attributes.NeedAffix, &p.cfg.Attributes.HasNeedAffix, p.cfg, fields)
		case "FORCEUCASE":
			setOneFlag(&p.cfg.Attributes.ForceUCase, &p.cfg.Attributes.HasForceUCase, p.cfg, fields)
		case "KEEPCASE":
			setOneFlag(&p.cfg.Attributes.KeepCase, &p.cfg.Attributes.HasKeepCase, p.cfg, fields)
		case "CIRCUMFIX":
			setOneFlag(&p.cfg.Attributes.Circumfix, &p.cfg.Attributes.HasCircumfix, p.cfg, fields)
		case "BREAK":
			i = p.consumeTable(i, fields, "BREAK", func(entryFields []string) {
				if len(entryFields) >= 2 {
					p.cfg.BreakSeqs = append(p.cfg.BreakSeqs, entryFields[1])
				}
			})
		case "REP":
			i = p.consumeTable(i, fields, "REP", func(entryFields []string) {
				if len(entryFields) >= 3 {
					p.cfg.Rep = append(p.cfg.Rep, ReplacementPair{From: entryFields[1], To: entryFields[2]})
				}
			})
		case "MAP":
			i = p.consumeTable(i, fields, "MAP", func(entryFields []string) {
				if len(entryFields) >= 2 {
					p.cfg.Map = append(p.cfg.Map, []rune(entryFields[1]))
				}
			})
		case "ICONV":
			i = p.consumeTable(i, fields, "ICONV", func(entryFields []string) {
				if len(entryFields) >= 3 {
					p.cfg.IConv = append(p.cfg.IConv, ReplacementPair{From: entryFields[1], To: entryFields[2]})
				}
			})
		case "OCONV":
			i = p.consumeTable(i, fields, "OCONV", func(entryFields []string) {
				if len(entryFields) >= 3 {
					p.cfg.OConv = append(p.cfg.OConv, ReplacementPair{From: entryFields[1], To: entryFields[2]})
				}
			})
		case "COMPOUNDRULE":
			i = p.consumeTable(i, fields, "COMPOUNDRULE", func(entryFields []string) {
				if len(entryFields) >= 2 {
					if pat, ok := compileRulePattern(entryFields[1], p.cfg.Codec); ok {
						p.cfg.Compound.Rules = append(p.cfg.Compound.Rules, pat)
					}
				}
			})
		case "CHECKCOMPOUNDPATTERN":
			i = p.consumeTable(i, fields, "CHECKCOMPOUNDPATTERN", func(entryFields []string) {
				if pat, ok := compileCompoundPattern(entryFields, p.cfg.Codec); ok {
					p.cfg.Compound.Patterns = append(p.cfg.Compound.Patterns, pat)
				}
			})
		case "PFX":
			i = p.consumeAffixGroup(i, fields, PrefixKind)
		case "SFX":
			i = p.consumeAffixGroup(i, fields, SuffixKind)
		default:
			// Unknown directive: stored verbatim nowhere (no consumer needs
			// it) and parsing continues.
		}
	}
}

func setOneFlag(dst *hflag.Flag, has *bool, cfg *Configuration, fields []string) {
	if len(fields) < 2 {
		return
	}
	set := cfg.Codec.Decode(fields[1])
	if set.Len() == 0 {
		return
	}
	*dst = set.Slice()[0]
	*has = true
}

func intField(fields []string, idx int) (int, bool) {
	if idx >= len(fields) {
		return 0, false
	}
	n, err := strconv.Atoi(fields[idx])
	if err != nil {
		return 0, false
	}
	return n, true
}

// consumeTable consumes the header line at i (directive + count, count
// unused for robustness) plus every immediately following line that
// repeats the same directive keyword, feeding each entry's fields to add.
// Returns the index of the last line consumed.
func (p *parser) consumeTable(i int, header []string, directive string, add func([]string)) int {
	_ = header
	j := i + 1
	for j < len(p.lines) {
		f := fieldsOf(p.lines[j])
		if len(f) == 0 || f[0] != directive {
			break
		}
		add(f)
		j++
	}
	return j - 1
}

// consumeAffixGroup parses a PFX/SFX header ("PFX flag Y|N count") and
// its following count entry lines ("PFX flag strip append[/flags] cond").
func (p *parser) consumeAffixGroup(i int, header []string, kind Kind) int {
	if len(header) < 3 {
		return i
	}
	flagSet := p.cfg.Codec.Decode(header[1])
	if flagSet.Len() == 0 {
		return i
	}
	f := flagSet.Slice()[0]
	crossProduct := header[2] == "Y" || header[2] == "y"

	j := i + 1
	directive := "PFX"
	if kind == SuffixKind {
		directive = "SFX"
	}
	side := Prefix
	if kind == SuffixKind {
		side = Suffix
	}
	for j < len(p.lines) {
		ef := fieldsOf(p.lines[j])
		if len(ef) < 4 || ef[0] != directive {
			break
		}
		// Entry line must reference the same flag to belong to this group;
		// a mismatched flag is treated as the start of the next group, not
		// consumed here (the outer loop will re-process it).
		entryFlag := p.cfg.Codec.Decode(ef[1])
		if entryFlag.Len() == 0 || entryFlag.Slice()[0] != f {
			break
		}
		strip := ef[2]
		if strip == "0" {
			strip = ""
		}
		appendTok := ef[3]
		appendText, appendedFlags := splitAppendToken(appendTok, p.cfg.Codec)
		if appendText == "0" {
			appendText = ""
		}
		condSrc := "."
		if len(ef) >= 5 {
			condSrc = ef[4]
		}
		cond, ok := CompileCondition(condSrc, side)
		if !ok {
			j++
			continue // MalformedRegexCondition: drop this rule, keep parsing
		}
		rule := Rule{
			Flag:          f,
			Kind:          kind,
			CrossProduct:  crossProduct,
			Strip:         strip,
			Append:        appendText,
			AppendedFlags: appendedFlags,
			Condition:     cond,
		}
		if kind == PrefixKind {
			p.cfg.Prefixes[f] = append(p.cfg.Prefixes[f], rule)
		} else {
			p.cfg.Suffixes[f] = append(p.cfg.Suffixes[f], rule)
		}
		j++
	}
	return j - 1
}

// splitAppendToken decomposes "append_text[/appended_flags]".
func splitAppendToken(tok string, codec hflag.Codec) (string, hflag.Set) {
	idx := strings.IndexByte(tok, '/')
	if idx < 0 {
		return tok, hflag.Set{}
	}
	return tok[:idx], codec.Decode(tok[idx+1:])
}
