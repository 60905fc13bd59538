package hunspell

import (
	"strings"
	"testing"
)

func newChecker(t *testing.T, aff, dic string) *Checker {
	t.Helper()
	c, err := New(strings.NewReader(aff), strings.NewReader(dic), DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestSpell_AffixDerivation(t *testing.T) {
	c := newChecker(t, "SFX A Y 1\nSFX A 0 s .\n", "2\nhund\nhund/A\n")

	if !c.Spell("hund") {
		t.Error("expected hund to be accepted directly")
	}
	if !c.Spell("hunds") {
		t.Error("expected hunds to be accepted via SFX A")
	}
	if c.Spell("hundx") {
		t.Error("expected hundx to be rejected")
	}
}

func TestSpell_CompoundFlagMode(t *testing.T) {
	c := newChecker(t, "COMPOUNDFLAG A\nCOMPOUNDMIN 3\n", "3\nfoo/A\nbar/A\ntest/A\n")

	for _, w := range []string{"foobar", "footest", "foobartest"} {
		if !c.Spell(w) {
			t.Errorf("expected %q to be accepted", w)
		}
	}
	if c.Spell("foobaz") {
		t.Error("expected foobaz to be rejected")
	}
}

func TestSpell_CheckCompoundDup(t *testing.T) {
	c := newChecker(t, "COMPOUNDFLAG C\nCHECKCOMPOUNDDUP\n", "2\nfoo/C\nbar/C\n")

	if c.Spell("foofoo") {
		t.Error("expected foofoo to be rejected by CHECKCOMPOUNDDUP")
	}
	if !c.Spell("foobar") {
		t.Error("expected foobar to be accepted")
	}
	if !c.Spell("foobarfoo") {
		t.Error("expected foobarfoo to be accepted: duplicate parts are non-adjacent")
	}
}

func TestSpell_CheckCompoundPattern(t *testing.T) {
	aff := "COMPOUNDFLAG C\nCHECKCOMPOUNDPATTERN 1\nCHECKCOMPOUNDPATTERN oo e\n"
	c := newChecker(t, aff, "3\nfoo/C\neat/C\nbar/C\n")

	if c.Spell("fooeat") {
		t.Error("expected fooeat to be rejected by CHECKCOMPOUNDPATTERN")
	}
	if !c.Spell("foobar") {
		t.Error("expected foobar to be accepted")
	}
}

func TestSpell_CompoundRuleMode(t *testing.T) {
	aff := "COMPOUNDMIN 1\nCOMPOUNDRULE 1\nCOMPOUNDRULE ABC\n"
	c := newChecker(t, aff, "3\na/A\nb/B\nc/BC\n")

	if !c.Spell("abc") {
		t.Error("expected abc to match COMPOUNDRULE ABC")
	}
	if !c.Spell("acc") {
		t.Error("expected acc to match ABC")
	}
	if c.Spell("ab") {
		t.Error("expected ab to be rejected")
	}
	if c.Spell("ba") {
		t.Error("expected ba to be rejected")
	}
}

func TestSpell_CheckCompoundRep(t *testing.T) {
	aff := "REP 1\nREP í i\nCOMPOUNDFLAG C\nCHECKCOMPOUNDREP\n"
	c := newChecker(t, aff, "3\nszerviz/C\nszer/C\nvíz/C\n")

	if c.Spell("szervíz") {
		t.Error("expected szervíz to be rejected: it matches szerviz via REP")
	}
}

func TestSpell_Break(t *testing.T) {
	aff := "BREAK 1\nBREAK -\n"
	c := newChecker(t, aff, "3\nfoo\nbar\nbaz\n")

	if !c.Spell("foo-bar-baz") {
		t.Error("expected foo-bar-baz to be accepted via BREAK")
	}
	if c.Spell("foo-xyz") {
		t.Error("expected foo-xyz to be rejected: xyz is not a word")
	}
	if c.Spell("-foo") {
		t.Error("expected -foo to be rejected: break at the edge doesn't decompose")
	}
}

func TestSpell_EmptyToken(t *testing.T) {
	c := newChecker(t, "SET UTF-8\n", "1\nfoo\n")
	if c.Spell("") {
		t.Error("expected the empty token to be rejected")
	}
	if got := c.Suggest(""); got != nil {
		t.Errorf("expected Suggest(\"\") to return nil, got %v", got)
	}
}

func TestSpell_ForbiddenWord(t *testing.T) {
	aff := "FORBIDDENWORD !\n"
	c := newChecker(t, aff, "1\nbadword/!\n")
	if c.Spell("badword") {
		t.Error("expected a FORBIDDENWORD entry to be rejected")
	}
}

func TestSpell_NeedAffix(t *testing.T) {
	aff := "NEEDAFFIX N\nSFX A Y 1\nSFX A 0 s .\n"
	c := newChecker(t, aff, "1\nfoo/AN\n")
	if c.Spell("foo") {
		t.Error("expected a bare NEEDAFFIX root to be rejected standalone")
	}
	if !c.Spell("foos") {
		t.Error("expected the affixed form to be accepted")
	}
}

func TestAddRemove(t *testing.T) {
	c := newChecker(t, "SET UTF-8\n", "1\nfoo\n")

	if c.Spell("newword") {
		t.Fatal("newword should not be accepted before Add")
	}
	if !c.Add("newword") {
		t.Fatal("expected Add to succeed the first time")
	}
	if c.Add("newword") {
		t.Error("expected the second Add to report false")
	}
	if !c.Spell("newword") {
		t.Error("expected newword to be accepted after Add")
	}
	if !c.Remove("newword") {
		t.Fatal("expected Remove to succeed")
	}
	if c.Remove("newword") {
		t.Error("expected the second Remove to report false")
	}
	if c.Spell("newword") {
		t.Error("expected newword to be rejected after Remove")
	}
}

func TestSuggest_NeverContainsInput(t *testing.T) {
	aff := "SFX A Y 1\nSFX A 0 s .\n"
	c := newChecker(t, aff, "2\nhund\nhund/A\n")

	suggestions := c.Suggest("hundx")
	found := map[string]bool{}
	for _, s := range suggestions {
		if s == "hundx" {
			t.Fatal("Suggest must never return the input token")
		}
		found[s] = true
		if !c.Spell(s) {
			t.Errorf("suggested %q is not itself accepted by Spell", s)
		}
	}
	if !found["hund"] {
		t.Error("expected hund among the suggestions for hundx")
	}
	if !found["hunds"] {
		t.Error("expected hunds among the suggestions for hundx")
	}
}
