package search

import "testing"

func TestBuildMatch(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		wantOK bool
	}{
		{"single word", "robot", "robot*", true},
		{"multiple words", "first episode", "first* AND episode*", true},
		{"surrounding whitespace", "  garden  ", "garden*", true},
		{"internal whitespace collapsed", "a \t b", "a* AND b*", true},
		{"embedded quotes doubled", `say "hi"`, `say* AND ""hi""*`, true},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BuildMatch(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("BuildMatch(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("BuildMatch(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
