package utils

import "testing"

func TestKebabCase(t *testing.T) {
	tests := []struct {
		ident string
		want  string
	}{
		{"Ping", "ping"},
		{"Echo", "echo"},
		{"GetWordIndex", "get-word-index"},
		{"word_index", "word-index"},
		{"HTTPServer", "http-server"},
		{"A", "a"},
		{"OneOrTwo", "one-or-two"},
		{"times2", "times2"},
	}

	for _, tt := range tests {
		if got := KebabCase(tt.ident); got != tt.want {
			t.Errorf("KebabCase(%q) = %q, want %q", tt.ident, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		ident string
		want  string
	}{
		{"Gold", "Gold"},
		{"MedalGold", "Medal Gold"},
		{"first_place", "First Place"},
		{"HTTPServer", "HTTP Server"},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.ident); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.ident, got, tt.want)
		}
	}
}
