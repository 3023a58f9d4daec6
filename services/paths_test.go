package services

import (
	"strings"
	"testing"
	"time"
)

func TestProjectFolder(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My App!", "my-app"},
		{"Test", "test"},
		{"Test!", "test"},
		{"  Spaced   Out  ", "spaced-out"},
		{"CRM 2.0", "crm-20"},
		{"already-slugged", "already-slugged"},
		{"ÜBER app", "ber-app"},
	}

	for _, tc := range cases {
		if got := ProjectFolder(tc.title); got != tc.want {
			t.Errorf("ProjectFolder(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

// Titles that normalize identically share a storage folder. This documents
// the known collision, it does not prevent it.
func TestProjectFolderCollision(t *testing.T) {
	a := ProjectFolder("Test")
	b := ProjectFolder("Test!")
	if a != b {
		t.Fatalf("expected colliding folders, got %q and %q", a, b)
	}
	if CoverKey(a, "one.png") != CoverKey(b, "two.png") {
		t.Fatal("expected colliding cover keys")
	}
}

func TestCoverKey(t *testing.T) {
	got := CoverKey("my-app", "photo.PNG")
	if got != "project/my-app/my-app-cover.PNG" {
		t.Errorf("CoverKey = %q", got)
	}
}

func TestGalleryKey(t *testing.T) {
	got := GalleryKey("my-app", "shot.jpg", 3)
	if got != "project/my-app/my-app-3.jpg" {
		t.Errorf("GalleryKey = %q", got)
	}
}

func TestTimestampedGalleryKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := TimestampedGalleryKey("my-app", "shot.jpg", 1, now)
	if got != "project/my-app/my-app-1700000000000-1.jpg" {
		t.Errorf("TimestampedGalleryKey = %q", got)
	}
}

func TestRandomKey(t *testing.T) {
	got := RandomKey("certificates", "cert.pdf")
	if !strings.HasPrefix(got, "certificates/") || !strings.HasSuffix(got, ".pdf") {
		t.Errorf("RandomKey = %q", got)
	}
	if got == RandomKey("certificates", "cert.pdf") {
		t.Error("expected distinct random keys")
	}
}

func TestRandomKeyNoExtension(t *testing.T) {
	if got := RandomKey("profile", "photo"); !strings.HasSuffix(got, ".bin") {
		t.Errorf("RandomKey without extension = %q", got)
	}
}

func TestKeyFromImageURL(t *testing.T) {
	got := KeyFromImageURL("my-app", "https://cdn.example.com/portofolio/project/my-app/my-app-cover.png")
	if got != "project/my-app/my-app-cover.png" {
		t.Errorf("KeyFromImageURL = %q", got)
	}
}
