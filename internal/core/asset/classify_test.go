package asset

import (
	"testing"

	"github.com/example/creatorvault/internal/models"
)

func TestTypeForFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"thumbnail.png", models.AssetImage},
		{"photo.JPG", models.AssetImage},
		{"clip.jpeg", models.AssetImage},
		{"banner.webp", models.AssetImage},
		{"anim.gif", models.AssetImage},
		{"notes.pdf", models.AssetFile},
		{"raw.mov", models.AssetFile},
		{"noextension", models.AssetFile},
		{"archive.tar.gz", models.AssetFile},
	}

	for _, tt := range tests {
		if got := TypeForFile(tt.name); got != tt.want {
			t.Errorf("TypeForFile(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
