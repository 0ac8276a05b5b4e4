// Package hebrew produces the canonical comparable form of Hebrew text.
//
// All query/field comparisons in the search core run on normalized text;
// raw text is never compared directly.
package hebrew

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// directionalMarks covers the left-to-right and right-to-left marks plus the
// directional embedding/override control block. These are invisible and show
// up routinely in copy-pasted Hebrew text.
var directionalMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200e, Hi: 0x200f, Stride: 1}, // LRM, RLM
		{Lo: 0x202a, Hi: 0x202e, Stride: 1}, // LRE, RLE, PDF, LRO, RLO
	},
}

// dashVariants are replaced with a single space so hyphenated names compare
// token-wise.
var dashVariants = map[rune]bool{
	'-':      true, // hyphen-minus
	'–': true, // en dash
	'—': true, // em dash
}

// strippedPunctuation is the fixed punctuation set removed before comparison:
// straight and curly quotation marks, the Hebrew geresh and gershayim
// punctuation marks, apostrophe, backtick and common separators.
var strippedPunctuation = map[rune]bool{
	'"':      true,
	'\'':     true,
	'`':      true,
	'‘': true, // left single quotation mark
	'’': true, // right single quotation mark
	'“': true, // left double quotation mark
	'”': true, // right double quotation mark
	'׳': true, // hebrew punctuation geresh
	'״': true, // hebrew punctuation gershayim
	'.':      true,
	',':      true,
	';':      true,
	':':      true,
	'!':      true,
	'?':      true,
	'(':      true,
	')':      true,
	'[':      true,
	']':      true,
	'{':      true,
	'}':      true,
	'<':      true,
	'>':      true,
	'\\':     true,
	'/':      true,
	'|':      true,
}

// cleaner builds the character-level transform: strip directional marks, map
// dash variants to spaces, strip the fixed punctuation set. A fresh
// transformer is built per call; chained transformers carry state and must
// not be shared between concurrent callers.
func cleaner() transform.Transformer {
	return transform.Chain(
		runes.Remove(runes.In(directionalMarks)),
		runes.Map(func(r rune) rune {
			if dashVariants[r] {
				return ' '
			}
			return r
		}),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return strippedPunctuation[r]
		})),
	)
}

// Normalize returns the canonical comparable form of text.
//
// It is total over any input: lowercases (Hebrew has no case, but mixed-in
// Latin text folds correctly), strips directional marks, replaces dash
// variants with spaces, strips the fixed punctuation set, collapses
// whitespace runs to single spaces and trims. Normalize never fails and is
// idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)
	cleaned, _, err := transform.String(cleaner(), lowered)
	if err != nil {
		cleaned = lowered
	}

	return strings.Join(strings.Fields(cleaned), " ")
}
