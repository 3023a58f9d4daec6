package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

// ProjectFolder derives the storage folder for a project from its title:
// lowercased, whitespace runs collapsed to single hyphens, everything outside
// [a-z0-9-] stripped. The derivation is not collision-safe: titles that
// normalize identically ("Test" and "Test!") share a folder and their files
// can overwrite each other.
func ProjectFolder(title string) string {
	s := strings.Join(strings.Fields(strings.ToLower(title)), "-")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CoverKey builds the deterministic cover image key for a project folder.
func CoverKey(folder, filename string) string {
	return fmt.Sprintf("project/%s/%s-cover.%s", folder, folder, fileExt(filename))
}

// GalleryKey builds the key for the index-th gallery image. index is 1-based.
func GalleryKey(folder, filename string, index int) string {
	return fmt.Sprintf("project/%s/%s-%d.%s", folder, folder, index, fileExt(filename))
}

// TimestampedGalleryKey is the edit-time variant: a unix-millis timestamp is
// mixed into the name to reduce, not eliminate, collisions with files already
// in the folder.
func TimestampedGalleryKey(folder, filename string, index int, now time.Time) string {
	return fmt.Sprintf("project/%s/%s-%d-%d.%s", folder, folder, now.UnixMilli(), index, fileExt(filename))
}

// RandomKey builds a key under prefix with a random hex name, keeping the
// original file's extension. Used for certificate images and the profile
// photo.
func RandomKey(prefix, filename string) string {
	buf := make([]byte, 12)
	rand.Read(buf)
	return fmt.Sprintf("%s/%s.%s", prefix, hex.EncodeToString(buf), fileExt(filename))
}

// KeyFromImageURL reconstructs a project storage key from a stored public
// URL. The key is derived from the URL's filename and the folder rule, not
// read from a stored path, so if the folder derivation ever changes this
// reconstruction goes stale.
func KeyFromImageURL(folder, imageURL string) string {
	return fmt.Sprintf("project/%s/%s", folder, path.Base(imageURL))
}

func fileExt(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return "bin"
	}
	return ext
}
