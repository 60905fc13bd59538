package suggest

import (
	"strings"
	"testing"

	"github.com/coregx/hunspell/affix"
	"github.com/coregx/hunspell/dict"
)

// spellFromDict builds a trivial Spell predicate over the given words,
// with no affix derivation: a candidate is accepted iff it is one of the
// listed surfaces exactly.
func spellFromDict(words ...string) func(string) bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return func(s string) bool { return set[s] }
}

func buildIndex(t *testing.T, cfg *affix.Configuration, dictSrc string) *dict.LexicalIndex {
	t.Helper()
	entries, err := dict.ParseDictionary(strings.NewReader(dictSrc), cfg.Codec)
	if err != nil {
		t.Fatalf("parse dict: %v", err)
	}
	return dict.NewLexicalIndex(entries)
}

func TestGenerate_SubstitutionFindsNeighbor(t *testing.T) {
	cfg := affix.NewConfiguration()
	cfg.Try = "eaoi"
	idx := buildIndex(t, cfg, "1\nhund\n")
	spell := spellFromDict("hund", "hund")

	got := Generate("hond", cfg, idx, spell, Config{Cap: 10})
	if !contains(got, "hund") {
		t.Errorf("expected hund among suggestions for hond, got %v", got)
	}
}

func TestGenerate_NeverContainsInput(t *testing.T) {
	cfg := affix.NewConfiguration()
	idx := buildIndex(t, cfg, "1\nhund\n")
	spell := spellFromDict("hund", "hundx")

	got := Generate("hundx", cfg, idx, spell, Config{Cap: 10})
	if contains(got, "hundx") {
		t.Fatal("Generate must never return the input token")
	}
}

func TestGenerate_Deletion(t *testing.T) {
	cfg := affix.NewConfiguration()
	idx := buildIndex(t, cfg, "1\ncat\n")
	spell := spellFromDict("cat")

	got := Generate("cats", cfg, idx, spell, Config{Cap: 10})
	if !contains(got, "cat") {
		t.Errorf("expected cat among suggestions for cats, got %v", got)
	}
}

func TestGenerate_AdjacentSwap(t *testing.T) {
	cfg := affix.NewConfiguration()
	idx := buildIndex(t, cfg, "1\nform\n")
	spell := spellFromDict("form")

	got := Generate("from", cfg, idx, spell, Config{Cap: 10})
	if !contains(got, "form") {
		t.Errorf("expected form among suggestions for from, got %v", got)
	}
}

func TestGenerate_Split(t *testing.T) {
	cfg := affix.NewConfiguration()
	idx := buildIndex(t, cfg, "2\nice\ncream\n")
	spell := spellFromDict("ice", "cream", "ice cream")

	got := Generate("icecream", cfg, idx, spell, Config{Cap: 10})
	if !contains(got, "ice cream") {
		t.Errorf("expected %q among suggestions, got %v", "ice cream", got)
	}
}

func TestGenerate_SplitSkippedWhenNoSplitSuggestions(t *testing.T) {
	cfg := affix.NewConfiguration()
	idx := buildIndex(t, cfg, "2\nice\ncream\n")
	spell := spellFromDict("ice", "cream", "ice cream")

	got := Generate("icecream", cfg, idx, spell, Config{Cap: 10, NoSplitSuggestions: true})
	if contains(got, "ice cream") {
		t.Error("expected no split suggestion when NoSplitSuggestions is set")
	}
}

func TestGenerate_Possessive(t *testing.T) {
	cfg := affix.NewConfiguration()
	idx := buildIndex(t, cfg, "1\ndog\n")
	spell := spellFromDict("dog's")

	got := Generate("dogs", cfg, idx, spell, Config{Cap: 10})
	if !contains(got, "dog's") {
		t.Errorf("expected dog's among suggestions for dogs, got %v", got)
	}
}

func TestGenerate_RespectsCap(t *testing.T) {
	cfg := affix.NewConfiguration()
	cfg.Try = "abcdefghijklmnopqrstuvwxyz"
	idx := buildIndex(t, cfg, "1\nfoo\n")
	spell := func(s string) bool { return s != "hond" } // accept almost everything

	got := Generate("hond", cfg, idx, spell, Config{Cap: 3})
	if len(got) > 3 {
		t.Errorf("expected at most 3 suggestions, got %d: %v", len(got), got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
