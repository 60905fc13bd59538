// Package dict parses Hunspell .dic word lists into a LexicalIndex: a
// case-aware, homonym-preserving map from surface form to the dictionary
// entries that produced it, plus a "ph:" phonetic replacement table used
// by the suggester.
package dict

import (
	hflag "github.com/coregx/hunspell/flag"
)

// Entry is one dictionary word-list line: a surface form, its flag set,
// and any morphological fields. Entries are immutable once loaded; two
// entries may share the same Surface (homonyms) and are never merged into
// a single flag bag: admission decisions depend on "every variant has
// flag F" vs "some variant lacks F" and must see each variant separately.
type Entry struct {
	Surface string
	Flags   hflag.Set
	Morph   []MorphField
}

// MorphField is one "key:value" morphological annotation, e.g. "st:run",
// "ph:seperate->separate".
type MorphField struct {
	Key   string
	Value string
}

// HasFlag reports whether the entry carries f.
func (e *Entry) HasFlag(f hflag.Flag) bool {
	return e.Flags.Contains(f)
}

// MorphValue looks up the first morphological field with the given key.
func (e *Entry) MorphValue(key string) (string, bool) {
	for _, m := range e.Morph {
		if m.Key == key {
			return m.Value, true
		}
	}
	return "", false
}
