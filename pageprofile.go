// Package pageprofile turns the rendered HTML and browser telemetry of a web
// page into a structured page profile: contact details, repeating content
// blocks, image captions and brand attributes (fonts, colors).
//
// This package contains domain types, interfaces and the dependency-free
// text heuristics, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, rod/, sqlite/).
package pageprofile

// LogFunc is an optional diagnostic sink. Functions accepting a LogFunc
// treat nil as "discard".
type LogFunc func(format string, args ...any)

// Printf calls f if it is not nil.
func (f LogFunc) Printf(format string, args ...any) {
	if f != nil {
		f(format, args...)
	}
}
