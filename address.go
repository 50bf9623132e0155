package pageprofile

import (
	"regexp"
	"strings"
)

// AddressComponents is a US-style postal address split into parts.
// Full always holds the matched text; the other fields are nil when the
// text could not be decomposed.
type AddressComponents struct {
	Full   *string `json:"full"`
	Street *string `json:"street"`
	City   *string `json:"city"`
	State  *string `json:"state"`
	Zip    *string `json:"zip"`
}

// usStates lists the full names accepted in place of a two-letter code.
var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming",
}

// stateAlternation is `[A-Z]{2}|(?i:Alabama|...)`. Longer names come first
// so "West Virginia" wins over "Virginia".
var stateAlternation = func() string {
	names := make([]string, len(usStates))
	copy(names, usStates)
	// Stable insertion sort by descending length keeps the list readable above.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && len(names[j]) > len(names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return `[A-Z]{2}|(?i:` + strings.Join(names, "|") + `)`
}()

var (
	// addressFindRe locates candidate addresses inside free text:
	// number + street, comma, city, comma, state, optional ZIP.
	addressFindRe = regexp.MustCompile(
		`\b\d{1,6}\s+[\w .#'-]+?,\s*[A-Za-z][\w .'-]*?,\s*(?:` + stateAlternation + `)\b(?:\s+\d{5}\b)?`,
	)

	// addressParseRe decomposes a single address; anchored at both ends.
	// The street is a number plus street text and must be closed by a
	// comma, otherwise street and city cannot be told apart.
	addressParseRe = regexp.MustCompile(
		`^(\d+\s+[^,]+?),\s*([^,]+?),?\s*(` + stateAlternation + `)\s*(\d{5})?$`,
	)
)

// FindAddresses returns every non-overlapping address candidate in text,
// in order of appearance. Matches are not deduplicated.
func FindAddresses(text string) []string {
	return addressFindRe.FindAllString(text, -1)
}

// ParseAddress decomposes a single address string. Decomposition is
// all-or-nothing: when the anchored pattern does not match, only Full is set.
func ParseAddress(address string) *AddressComponents {
	full := address
	components := &AddressComponents{Full: &full}

	m := addressParseRe.FindStringSubmatch(strings.TrimSpace(address))
	if m == nil {
		return components
	}

	street := strings.TrimSpace(m[1])
	city := strings.TrimSpace(m[2])
	state := m[3]
	components.Street = &street
	components.City = &city
	components.State = &state
	if m[4] != "" {
		zip := m[4]
		components.Zip = &zip
	}
	return components
}
