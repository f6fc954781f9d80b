package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// ColorMode controls whether ANSI escapes are emitted.
type ColorMode int

const (
	// ColorAuto enables color only for terminals.
	ColorAuto ColorMode = iota
	// ColorAlways emits color unconditionally.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

var colorMode = ColorAuto

// SetColorMode overrides the automatic terminal detection.
func SetColorMode(mode ColorMode) {
	colorMode = mode
}

// ParseColorMode parses a config value into a ColorMode.
func ParseColorMode(value string) (ColorMode, bool) {
	switch value {
	case "", "auto":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	}
	return ColorAuto, false
}

// HighlightID returns an ID with its unique prefix highlighted.
func HighlightID(id string, prefixLen int) string {
	if id == "" {
		return id
	}

	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}

	if !ansiEnabled() {
		return id
	}

	prefix := id[:prefixLen]
	suffix := id[prefixLen:]
	return ansiBold + ansiCyan + prefix + ansiReset + suffix
}

func ansiEnabled() bool {
	switch colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrefixLength looks up the unique prefix length for an ID,
// case-insensitively. Returns 0 when unknown.
func PrefixLength(lengths map[string]int, id string) int {
	if lengths == nil || id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}
