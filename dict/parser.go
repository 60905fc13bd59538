package dict

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	hflag "github.com/coregx/hunspell/flag"
)

// ParseDictionary reads a Hunspell .dic word list, decoding flags under
// codec, and returns the parsed entries in file order (homonyms are
// returned as separate entries sharing a surface; grouping into a
// LexicalIndex is the caller's job via NewLexicalIndex).
//
// The optional leading decimal-count line is tolerated but not relied
// upon: every non-comment, non-empty line after it is parsed as an entry,
// so a wrong or missing count never drops or fabricates entries.
func ParseDictionary(r io.Reader, codec hflag.Codec) ([]*Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []*Entry
	first := true
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\xef\xbb\xbf")
			first = false
			if looksLikeCount(line) {
				continue
			}
		}
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if e := parseEntryLine(line, codec); e != nil {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func looksLikeCount(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	_, err := strconv.Atoi(line)
	return err == nil
}

// parseEntryLine splits "surface[/flags][\tmorph-fields...]". A line may
// carry multiple whitespace-separated words before the first recognized
// "key:value" morph token; those words (plus the surface) are joined
// with single spaces into a multi-word surface.
func parseEntryLine(line string, codec hflag.Codec) *Entry {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	var surfaceParts []string
	var morph []MorphField
	for _, f := range fields {
		if key, val, ok := splitMorphToken(f); ok {
			morph = append(morph, MorphField{Key: key, Value: val})
			continue
		}
		surfaceParts = append(surfaceParts, f)
	}
	if len(surfaceParts) == 0 {
		return nil
	}

	head := surfaceParts[0]
	surface, flags := splitSurfaceFlags(head, codec)
	rest := surfaceParts[1:]
	if len(rest) > 0 {
		surface = surface + " " + strings.Join(rest, " ")
	}

	return &Entry{Surface: surface, Flags: flags, Morph: morph}
}

var morphKeys = map[string]bool{
	"st": true, "po": true, "al": true, "ts": true,
	"is": true, "ds": true, "dp": true, "sp": true, "ph": true,
}

func splitMorphToken(f string) (key, value string, ok bool) {
	idx := strings.IndexByte(f, ':')
	if idx <= 0 {
		return "", "", false
	}
	key = f[:idx]
	if !morphKeys[key] {
		return "", "", false
	}
	return key, f[idx+1:], true
}

func splitSurfaceFlags(tok string, codec hflag.Codec) (string, hflag.Set) {
	idx := strings.IndexByte(tok, '/')
	if idx < 0 {
		return tok, hflag.Set{}
	}
	return tok[:idx], codec.Decode(tok[idx+1:])
}
