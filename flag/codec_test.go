package flag

import "testing"

func TestCodec_Decode(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
		token string
		want  []Flag
	}{
		{"single", Single, "AB", []Flag{'A', 'B'}},
		{"long", Long, "aAbB", []Flag{Flag('a')<<8 | Flag('A'), Flag('b')<<8 | Flag('B')}},
		{"long odd length", Long, "abc", nil},
		{"num", Num, "1,2,300", []Flag{1, 2, 300}},
		{"num with spaces", Num, "1, 2 ,3", []Flag{1, 2, 3}},
		{"num out of range", Num, "0,70000,5", []Flag{5}},
		{"utf8", UTF8, "日本語", []Flag{'日', '本', '語'}},
		{"empty", Single, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.codec.Decode(tt.token)
			if got.Len() != len(tt.want) {
				t.Fatalf("Decode(%q) len = %d, want %d", tt.token, got.Len(), len(tt.want))
			}
			for _, f := range tt.want {
				if !got.Contains(f) {
					t.Errorf("Decode(%q) missing flag %d", tt.token, f)
				}
			}
		})
	}
}

func TestParseCodec(t *testing.T) {
	tests := []struct {
		directive string
		want      Codec
	}{
		{"long", Long},
		{"num", Num},
		{"UTF-8", UTF8},
		{"utf8", UTF8},
		{"", Single},
		{"garbage", Single},
	}
	for _, tt := range tests {
		if got := ParseCodec(tt.directive); got != tt.want {
			t.Errorf("ParseCodec(%q) = %v, want %v", tt.directive, got, tt.want)
		}
	}
}
