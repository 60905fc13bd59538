// Package affix parses Hunspell .aff affix files into an immutable
// Configuration and compiles affix rule conditions into compact matchers.
//
// The parser is deliberately permissive: unrecognized or malformed
// directives are skipped rather than aborting the parse, matching the
// heterogeneity of real-world Hunspell dictionaries.
package affix

import (
	hflag "github.com/coregx/hunspell/flag"
)

// Kind distinguishes prefix rules from suffix rules.
type Kind int

const (
	PrefixKind Kind = iota
	SuffixKind
)

// Rule is one PFX/SFX entry: strip the given text from the affected edge
// (if any), append new text (if any, itself possibly carrying flags
// inherited by the derived form), subject to Condition matching the
// stripped intermediate form's edge.
type Rule struct {
	Flag          hflag.Flag
	Kind          Kind
	CrossProduct  bool // Y in the PFX/SFX header: may combine with the opposite kind
	Strip         string
	Append        string
	AppendedFlags hflag.Set
	Condition     Condition
}

// EmptyAppend reports whether this rule only attaches flags, leaving the
// surface form equal to the root.
func (r *Rule) EmptyAppend() bool {
	return r.Append == ""
}

// CompoundPattern is a forbidden junction between adjacent compound parts
// (CHECKCOMPOUNDPATTERN).
type CompoundPattern struct {
	EndChars      string
	EndFlag       hflag.Flag
	HasEndFlag    bool
	BeginChars    string
	HasBeginFlag  bool
	BeginFlag     hflag.Flag
	Replacement   string
}

// ReplacementPair is one REP, ICONV, or OCONV entry. MAP groups are kept
// separately, as rune slices (Configuration.Map).
type ReplacementPair struct {
	From string
	To   string
}

// CompoundRulePattern is one COMPOUNDRULE pattern: a sequence of tokens,
// each either a single flag, a parenthesized group of flags (any one of
// which matches), or a digit class 1..7, each optionally followed by a
// '*' (zero or more) or '?' (zero or one) quantifier.
type CompoundRulePattern struct {
	Tokens []RuleToken
}

// RuleToken is one element of a CompoundRulePattern.
type RuleToken struct {
	Flags    []hflag.Flag // alternatives; one flag unless parenthesized group
	Digit    int          // 1..7 if this token is a digit class, else 0
	IsDigit  bool
	Quant    Quant
}

// Quant is a COMPOUNDRULE token quantifier.
type Quant int

const (
	QuantOne  Quant = iota // no suffix: exactly one
	QuantStar              // '*': zero or more
	QuantOpt               // '?': zero or one
)

// CompoundDirectives groups the COMPOUND* configuration.
type CompoundDirectives struct {
	Flag        hflag.Flag
	HasFlag     bool
	Begin       hflag.Flag
	HasBegin    bool
	Middle      hflag.Flag
	HasMiddle   bool
	End         hflag.Flag
	HasEnd      bool
	Root        hflag.Flag
	HasRoot     bool
	Permit      hflag.Flag
	HasPermit   bool
	Forbid      hflag.Flag
	HasForbid   bool
	MinLen      int
	WordMax     int
	HasWordMax  bool
	SyllableMax int
	HasSyllable bool
	VowelSet    map[rune]bool
	Rules       []CompoundRulePattern
	MoreSuffixes bool

	CheckDup           bool
	CheckCase          bool
	CheckTriple        bool
	SimplifiedTriple   bool
	CheckRep           bool
	Patterns           []CompoundPattern
}

// Attributes groups the single-flag lexical attribute directives.
type Attributes struct {
	NeedAffix      hflag.Flag
	HasNeedAffix   bool
	Forbidden      hflag.Flag
	HasForbidden   bool
	NoSuggest      hflag.Flag
	HasNoSuggest   bool
	KeepCase       hflag.Flag
	HasKeepCase    bool
	ForceUCase     hflag.Flag
	HasForceUCase  bool
	OnlyInCompound hflag.Flag
	HasOnlyInCompound bool
	Circumfix      hflag.Flag
	HasCircumfix   bool
}

// Configuration is the immutable, parsed outcome of an affix file. Once
// built it is shared read-only by the checker and suggester for the
// lifetime of a spell-checker handle.
type Configuration struct {
	Codec    hflag.Codec
	Encoding string

	Try        string
	WordChars  map[rune]bool
	IgnoreChars map[rune]bool
	BreakSeqs  []string

	Rep   []ReplacementPair
	Map   [][]rune
	IConv []ReplacementPair
	OConv []ReplacementPair

	Prefixes map[hflag.Flag][]Rule
	Suffixes map[hflag.Flag][]Rule

	Compound   CompoundDirectives
	Attributes Attributes

	CheckSharps  bool
	FullStrip    bool
	MaxCpdSugs   int
	HasMaxCpdSugs bool
	MaxDiff      int
	HasMaxDiff   bool
	OnlyMaxDiff  bool
	NoSplitSugs  bool
}

// NewConfiguration returns a Configuration with the documented defaults
// for fields Hunspell treats as present-but-unconfigured.
func NewConfiguration() *Configuration {
	return &Configuration{
		Codec:      hflag.Single,
		WordChars:  map[rune]bool{},
		IgnoreChars: map[rune]bool{},
		Prefixes:   map[hflag.Flag][]Rule{},
		Suffixes:   map[hflag.Flag][]Rule{},
		Compound: CompoundDirectives{
			MinLen: 3,
		},
	}
}

// IsVowel reports whether r is in the configured compound vowel set, used
// by the COMPOUNDSYLLABLE cap. Returns false if no vowel set was
// configured (the syllable cap is then inactive).
func (c *Configuration) IsVowel(r rune) bool {
	return c.Compound.VowelSet[r]
}
