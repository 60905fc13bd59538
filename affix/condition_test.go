package affix

import "testing"

func TestCompileCondition_Dot(t *testing.T) {
	c, ok := CompileCondition(".", Suffix)
	if !ok {
		t.Fatal("CompileCondition(.) should succeed")
	}
	if !c.Match("") || !c.Match("anything") {
		t.Error("dot condition should match any intermediate, including empty")
	}
}

func TestCompileCondition_Suffix(t *testing.T) {
	c, ok := CompileCondition("[^aeiou]", Suffix)
	if !ok {
		t.Fatal("compile should succeed")
	}
	if !c.Match("cat") {
		t.Error("cat ends in consonant, should match")
	}
	if c.Match("tree") {
		t.Error("tree ends in vowel, should not match")
	}
}

func TestCompileCondition_Literal(t *testing.T) {
	c, ok := CompileCondition("ts", Suffix)
	if !ok {
		t.Fatal("compile should succeed")
	}
	if !c.Match("cats") {
		t.Error("cats ends in 'ts', should match")
	}
	if c.Match("cat") {
		t.Error("cat does not end in 'ts'")
	}
}

func TestCompileCondition_Prefix(t *testing.T) {
	c, ok := CompileCondition("un", Prefix)
	if !ok {
		t.Fatal("compile should succeed")
	}
	if !c.Match("undo") {
		t.Error("undo starts with 'un'")
	}
	if c.Match("redo") {
		t.Error("redo does not start with 'un'")
	}
}

func TestCompileCondition_Range(t *testing.T) {
	c, ok := CompileCondition("[a-c]", Suffix)
	if !ok {
		t.Fatal("compile should succeed")
	}
	if !c.Match("xb") {
		t.Error("b is in range a-c")
	}
	if c.Match("xd") {
		t.Error("d is not in range a-c")
	}
}

func TestCompileCondition_Unterminated(t *testing.T) {
	if _, ok := CompileCondition("[abc", Suffix); ok {
		t.Error("unterminated bracket class should fail to compile")
	}
}

func TestCompileCondition_ShortIntermediate(t *testing.T) {
	c, ok := CompileCondition("xyz", Suffix)
	if !ok {
		t.Fatal("compile should succeed")
	}
	if c.Match("xy") {
		t.Error("intermediate shorter than condition window should not match")
	}
}
