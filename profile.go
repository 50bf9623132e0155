package pageprofile

// PageProfile is the aggregate description of one page.
// Every field degrades independently: a missing signal is nil or empty,
// never an error.
type PageProfile struct {
	Name    string             `json:"name"`
	Email   *string            `json:"email"`
	Phone   *string            `json:"phone"`
	Address *AddressComponents `json:"address"`
	Logo    *string            `json:"logo"`
	Fonts   []string           `json:"fonts"`
	Colors  []string           `json:"colors"`

	// Metadata is filled only when a MetadataExtractor is configured.
	Metadata *PageMetadata `json:"metadata,omitempty"`
}

// ProfileInput is everything the aggregator needs for one page.
type ProfileInput struct {
	// HTML is the rendered document.
	HTML string

	// Console holds the captured browser console lines, possibly empty.
	Console []ConsoleLine

	// Entities is the optional JSON-encoded array of ExtractedEntity
	// produced by an external extraction strategy. Nil means absent.
	Entities []byte
}

// Profiler composes contact, address, logo and telemetry signals into a
// PageProfile.
type Profiler interface {
	// Profile builds the profile of a single page.
	// Returns EINVALID if the entity payload is malformed JSON.
	Profile(input *ProfileInput) (*PageProfile, error)
}
