// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dangerclosesec/hub/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make returns the base slug for name: ASCII only, lowercase, words joined by single hyphens.
func Make(name string) (string, error) {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '-', r == '_', unicode.IsSpace(r):
			pendingSep = true
		}
		// anything else (punctuation, non-ASCII letters) is dropped
	}

	if b.Len() == 0 {
		return "", &domain.InvalidNameError{Name: name}
	}
	return b.String(), nil
}

// Unique returns base if it is not in existing, otherwise the first free base-N with N >= 2.
func Unique(base string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	candidate := base
	for n := 2; ; n++ {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}

// Generate combines Make and Unique. existing must not contain the slug of the record being
// written, so that saving a record under its current name keeps its slug.
func Generate(name string, existing []string) (string, error) {
	base, err := Make(name)
	if err != nil {
		return "", err
	}
	return Unique(base, existing), nil
}
