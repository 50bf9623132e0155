package pageprofile

import (
	"regexp"
	"strings"
)

// PrefixResult is the outcome of DetectAndStrip.
type PrefixResult struct {
	// Prefix is the detected self-repeating leading phrase, or "".
	Prefix string `json:"prefix"`

	// Cleaned is the text with all leading repetitions of Prefix removed.
	Cleaned string `json:"cleaned"`
}

// DetectAndStrip finds a leading phrase of up to DefaultMaxPrefixWords words
// that is immediately repeated ("Plumbing Plumbing We fix pipes") and strips
// every consecutive leading occurrence of it.
func DetectAndStrip(text string, logf LogFunc) PrefixResult {
	return DetectAndStripN(text, DefaultMaxPrefixWords, logf)
}

// DetectAndStripN is DetectAndStrip with a configurable maximum chunk size.
//
// Chunk sizes are tried from maxWords down to 1 and the first (largest)
// match wins. Words are compared case-insensitively. When no chunk repeats,
// Prefix is empty and Cleaned is the trimmed input. Repetitions are
// stripped as text, not whole words: "Art Art Articles" leaves "icles".
func DetectAndStripN(text string, maxWords int, logf LogFunc) PrefixResult {
	text = strings.TrimSpace(text)
	prefix := repeatingPrefix(strings.Fields(text), maxWords)
	logf.Printf("repeating prefix %q", prefix)
	if prefix == "" {
		return PrefixResult{Cleaned: text}
	}
	return PrefixResult{
		Prefix:  prefix,
		Cleaned: strings.TrimSpace(prefixPattern(prefix).ReplaceAllString(text, "")),
	}
}

// repeatingPrefix returns the largest leading chunk of words that is
// immediately followed by itself.
func repeatingPrefix(words []string, maxWords int) string {
	for size := maxWords; size > 0; size-- {
		if len(words) < size*2 {
			continue
		}
		chunk := strings.Join(words[:size], " ")
		next := strings.Join(words[size:size*2], " ")
		if strings.ToLower(chunk) == strings.ToLower(next) {
			return chunk
		}
	}
	return ""
}

// prefixPattern matches one or more leading repetitions of prefix.
// Words of the prefix may be separated by any whitespace in the text.
func prefixPattern(prefix string) *regexp.Regexp {
	words := strings.Fields(prefix)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)^(?:` + strings.Join(words, `\s+`) + `\s*)+`)
}

// SplitReadMore splits a caption blob on the "Read More" call-to-action
// that separates cards when their text is scraped as one string.
// Parts are trimmed and empty parts dropped.
func SplitReadMore(desc string) []string {
	var parts []string
	for _, block := range strings.Split(desc, "Read More") {
		if block = strings.TrimSpace(block); block != "" {
			parts = append(parts, block)
		}
	}
	return parts
}
