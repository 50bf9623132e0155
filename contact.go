package pageprofile

import "regexp"

var (
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
)

// ContactCandidates holds every contact entity found in a page region,
// in order of appearance.
type ContactCandidates struct {
	// Region names the fallback tier the text came from:
	// "footer", "footer-class", "tail", or "" when nothing was found.
	Region string `json:"region"`

	Emails    []string `json:"emails"`
	Phones    []string `json:"phones"`
	Addresses []string `json:"addresses"`
}

// Region tiers, richest signal first.
const (
	RegionFooter      = "footer"
	RegionFooterClass = "footer-class"
	RegionTail        = "tail"
)

// ExtractContacts runs the email, phone and address patterns over text.
// The text is whitespace-collapsed first. Emails and phones are
// deduplicated keeping first-seen order; addresses are not deduplicated.
// The returned slices are never nil.
func ExtractContacts(text string) ContactCandidates {
	text = CollapseWhitespace(text)
	addresses := FindAddresses(text)
	if addresses == nil {
		addresses = []string{}
	}
	return ContactCandidates{
		Emails:    DedupeStrings(emailRe.FindAllString(text, -1)),
		Phones:    DedupeStrings(phoneRe.FindAllString(text, -1)),
		Addresses: addresses,
	}
}

// FirstEmail returns the first email candidate, or "".
func (c ContactCandidates) FirstEmail() string {
	return first(c.Emails)
}

// FirstPhone returns the first phone candidate, or "".
func (c ContactCandidates) FirstPhone() string {
	return first(c.Phones)
}

// FirstAddress returns the first address candidate, or "".
func (c ContactCandidates) FirstAddress() string {
	return first(c.Addresses)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// ContactLocator finds the contact-bearing region of a document and
// extracts contact candidates from it.
type ContactLocator interface {
	// Locate parses html and returns the contact candidates of the first
	// region tier that yields text. A page without any region returns
	// empty candidates, not an error.
	Locate(html string) (ContactCandidates, error)
}
