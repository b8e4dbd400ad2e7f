package slugid_test

import (
	"strings"
	"testing"

	"dermaglow/internal/pkg/slugid"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func TestNewProducesBase36Slugs(t *testing.T) {
	for i := 0; i < 1000; i++ {
		slug := slugid.New()
		if slug == "" || len(slug) > 6 {
			t.Fatalf("slug %q outside expected length", slug)
		}
		for _, r := range slug {
			if !strings.ContainsRune(base36, r) {
				t.Fatalf("slug %q contains non-base36 rune %q", slug, r)
			}
		}
	}
}
