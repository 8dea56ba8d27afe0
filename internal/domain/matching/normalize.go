package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeText folds case and diacritics and collapses whitespace, so
// "  São  Paulo " and "sao paulo" compare equal.
func normalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// containsNormalized expects already-normalized inputs. Blank never matches.
func containsNormalized(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(haystack, needle)
}

func normalizePeriod(p PayPeriod) PayPeriod {
	return PayPeriod(normalizeText(string(p)))
}
