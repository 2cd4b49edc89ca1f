package export

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCSVQuotesEveryField(t *testing.T) {
	rows := []map[string]any{
		{"id": 1, "name": "A,B"},
	}

	got := CSV([]string{"id", "name"}, rows)
	want := "id,name\n\"1\",\"A,B\""
	if got != want {
		t.Errorf("CSV = %q, want %q", got, want)
	}
}

func TestCSVDoublesEmbeddedQuotes(t *testing.T) {
	rows := []map[string]any{
		{"id": 2, "name": `say "hi"`},
	}

	got := CSV([]string{"id", "name"}, rows)
	want := "id,name\n\"2\",\"say \"\"hi\"\"\""
	if got != want {
		t.Errorf("CSV = %q, want %q", got, want)
	}
}

func TestCSVMissingAndNilValues(t *testing.T) {
	rows := []map[string]any{
		{"id": 1, "name": nil},
		{"id": 2},
	}

	got := CSV([]string{"id", "name"}, rows)
	want := "id,name\n\"1\",\"\"\n\"2\",\"\""
	if got != want {
		t.Errorf("CSV = %q, want %q", got, want)
	}
}

func TestCSVEmptyRows(t *testing.T) {
	if got := CSV([]string{"id"}, nil); got != "" {
		t.Errorf("CSV with no rows = %q, want empty", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	rows := []map[string]any{
		{"id": float64(1), "name": "A"},
	}

	data, err := JSON(rows)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var back []map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(rows, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Show", "my_show"},
		{"Pilot: Episode 1!", "pilot__episode_1_"},
		{"already_fine", "already_fine"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
