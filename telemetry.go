package pageprofile

import (
	"regexp"
	"strings"
)

// Console line kinds as reported by the browser.
const (
	ConsoleInfo    = "info"
	ConsoleLog     = "log"
	ConsoleWarning = "warning"
	ConsoleError   = "error"
)

// Labels the brand script prefixes its console lines with.
const (
	TelemetryFonts  = "fonts"
	TelemetryColors = "colors"
)

// ConsoleLine is one captured browser console entry.
type ConsoleLine struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// FontColorSet holds the fonts and colors computed in the browser,
// deduplicated in order of first appearance.
type FontColorSet struct {
	Fonts  []string `json:"fonts"`
	Colors []string `json:"colors"`
}

var bracketListRe = regexp.MustCompile(`\[(.*)\]`)

// MergeTelemetry parses the brand script's console output.
//
// Only "info" lines of the form `fonts [a, b]` or `colors [#fff000, ...]`
// contribute; every other line is ignored. Values are trimmed and stripped
// of surrounding quotes. The returned slices are never nil.
func MergeTelemetry(lines []ConsoleLine) FontColorSet {
	var fonts, colors []string
	for _, line := range lines {
		if line.Kind != ConsoleInfo {
			continue
		}
		m := bracketListRe.FindStringSubmatch(line.Text)
		if m == nil {
			continue
		}

		var target *[]string
		switch {
		case strings.HasPrefix(line.Text, TelemetryFonts):
			target = &fonts
		case strings.HasPrefix(line.Text, TelemetryColors):
			target = &colors
		default:
			continue
		}

		for _, v := range strings.Split(m[1], ",") {
			if v = TrimQuotes(strings.TrimSpace(v)); v != "" {
				*target = append(*target, v)
			}
		}
	}

	return FontColorSet{
		Fonts:  DedupeStrings(fonts),
		Colors: DedupeStrings(colors),
	}
}
