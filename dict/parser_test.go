package dict

import (
	"strings"
	"testing"

	hflag "github.com/coregx/hunspell/flag"
)

func TestParseDictionary_Basic(t *testing.T) {
	src := "2\nhund\nhund/A\n"
	entries, err := ParseDictionary(strings.NewReader(src), hflag.Single)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Surface != "hund" || entries[0].Flags.Len() != 0 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Surface != "hund" || !entries[1].Flags.Contains('A') {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestParseDictionary_MorphFields(t *testing.T) {
	src := "1\nrun/A\tst:run po:verb\n"
	entries, err := ParseDictionary(strings.NewReader(src), hflag.Single)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if v, ok := e.MorphValue("st"); !ok || v != "run" {
		t.Errorf("expected st:run, got %v %v", v, ok)
	}
	if v, ok := e.MorphValue("po"); !ok || v != "verb" {
		t.Errorf("expected po:verb, got %v %v", v, ok)
	}
}

func TestParseDictionary_Comments(t *testing.T) {
	src := "# a comment\nfoo\n# another\nbar\n"
	entries, err := ParseDictionary(strings.NewReader(src), hflag.Single)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
}

func TestParseDictionary_MultiWordSurface(t *testing.T) {
	src := "1\nNew York\tst:New_York\n"
	entries, err := ParseDictionary(strings.NewReader(src), hflag.Single)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Surface != "New York" {
		t.Fatalf("expected multi-word surface, got %+v", entries)
	}
}

func TestParseDictionary_WrongCountStillParsesAll(t *testing.T) {
	src := "99\nfoo\nbar\nbaz\n"
	entries, err := ParseDictionary(strings.NewReader(src), hflag.Single)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected all 3 entries regardless of wrong count, got %d", len(entries))
	}
}

func TestLexicalIndex_HomonymsKeptSeparate(t *testing.T) {
	entries := []*Entry{
		{Surface: "lead", Flags: hflag.New('A')},
		{Surface: "lead", Flags: hflag.New('B')},
	}
	idx := NewLexicalIndex(entries)
	variants := idx.Lookup("lead")
	if len(variants) != 2 {
		t.Fatalf("expected 2 homonym variants, got %d", len(variants))
	}
}

func TestLexicalIndex_PhoneticRules(t *testing.T) {
	entries := []*Entry{
		{Surface: "separate", Morph: []MorphField{{Key: "ph", Value: "seperate"}}},
		{Surface: "great", Morph: []MorphField{{Key: "ph", Value: "grate->great"}}},
	}
	idx := NewLexicalIndex(entries)
	rules := idx.PhoneticRules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 phonetic rules, got %d", len(rules))
	}
}

func TestLexicalIndex_ContainsSubstring(t *testing.T) {
	entries := []*Entry{{Surface: "szer"}, {Surface: "víz"}}
	idx := NewLexicalIndex(entries)
	if !idx.ContainsSubstring("szervíz") {
		t.Error("expected substring match for szer within szervíz")
	}
	if idx.ContainsSubstring("xyz123") {
		t.Error("expected no substring match")
	}
}
