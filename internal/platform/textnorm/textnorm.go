// Package textnorm folds display text into the ASCII form used for matching.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// đ has no canonical decomposition, so NFKD alone leaves it in place.
var preFold = strings.NewReplacer("đ", "d", "Đ", "d")

// Fold lowercases s, strips diacritics, turns every character outside [a-z0-9]
// and whitespace into a space and collapses runs of whitespace.
//
//	Fold("  Pečena  PILETINA, sa krompirom! ") == "pecena piletina sa krompirom"
func Fold(s string) string {
	s = preFold.Replace(strings.ToLower(strings.TrimSpace(s)))
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Name normalizes an identity key such as an ingredient name, username or unit:
// trimmed and lowercased, nothing else.
func Name(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Names normalizes, drops blanks and deduplicates while keeping first-seen order.
func Names(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		v := Name(it)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
