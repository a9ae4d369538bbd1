package search

import (
	"strings"
	"unicode/utf8"

	"github.com/calyptra/pdfscan/core"
)

// contextRunes is the number of runes of surrounding text kept on each
// side of a match.
const contextRunes = 40

// FindMatches returns all non-overlapping occurrences of phrase in text,
// scanning left to right. Each match consumes the phrase length before
// the next scan begins. Offsets are byte positions into the original
// text, always on rune boundaries.
//
// Callers must not pass an empty phrase; the empty-phrase match-all
// policy is handled by the coordinator, which reports every candidate
// file with a single placeholder span instead.
func FindMatches(text, phrase string, caseSensitive bool) []core.MatchSpan {
	if phrase == "" {
		return nil
	}

	var spans []core.MatchSpan
	n := len(phrase)
	for i := 0; i+n <= len(text); {
		if phraseAt(text[i:i+n], phrase, caseSensitive) {
			spans = append(spans, core.MatchSpan{
				Context: contextWindow(text, i, n),
				Start:   i,
			})
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return spans
}

// phraseAt reports whether candidate equals phrase under the case rule.
// Case-insensitive comparison uses simple Unicode case folding, so case
// pairs that change byte length (e.g. İ) are not matched.
func phraseAt(candidate, phrase string, caseSensitive bool) bool {
	if caseSensitive {
		return candidate == phrase
	}
	return strings.EqualFold(candidate, phrase)
}

// contextWindow returns up to contextRunes runes before and after the
// match at [start, start+matchLen), clamped to the text bounds. The
// window never splits a multi-byte rune.
func contextWindow(text string, start, matchLen int) string {
	lo := start
	for i := 0; i < contextRunes && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}

	hi := start + matchLen
	for i := 0; i < contextRunes && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}

	return text[lo:hi]
}
