package script

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		content string
		want    int64
	}{
		{"one two three", 3},
		{"", 0},
		{"   ", 0},
		{"single", 1},
		{"  padded   out\n\twith  whitespace ", 3},
	}

	for _, tt := range tests {
		if got := CountWords(tt.content); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}
