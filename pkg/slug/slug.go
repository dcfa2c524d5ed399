// Package slug derives URL-safe identifiers from display names and titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accent folding: decompose, drop combining marks, recompose
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts s into a lowercase, hyphen-separated, ASCII slug.
// Accented letters are folded to their base form; any remaining character
// that is not a letter or digit becomes a separator. The transform is
// deterministic: Make(Make(s)) == Make(s).
func Make(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Derive returns the supplied slug unchanged when it is non-empty, otherwise
// a slug made from fallback. A caller-provided slug is never overwritten.
func Derive(supplied, fallback string) string {
	if supplied != "" {
		return supplied
	}
	return Make(fallback)
}
