package config

import (
	"os"
	"strings"
)

// ColorMode is the color depth the terminal is believed to handle.
type ColorMode int

const (
	Color16 ColorMode = iota
	Color256
	ColorTrueColor
)

func (c ColorMode) String() string {
	switch c {
	case Color16:
		return "16 colors"
	case Color256:
		return "256 colors"
	case ColorTrueColor:
		return "TrueColor (24-bit)"
	}
	return "unknown"
}

// TermCapabilities is what the environment tells us about the terminal
// before the first byte is drawn: whether multibyte glyphs will render
// at all, and how many colors are safe to emit.
type TermCapabilities struct {
	UTF8Support bool
	ColorMode   ColorMode
}

// DetectCapabilities probes the environment variables. It never talks
// to the terminal itself.
func DetectCapabilities() *TermCapabilities {
	return &TermCapabilities{
		UTF8Support: utf8Locale(),
		ColorMode:   colorMode(),
	}
}

// utf8Locale reports whether the locale advertises UTF-8 output.
// LC_ALL outranks LC_CTYPE outranks LANG; the first one set decides.
func utf8Locale() bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToUpper(os.Getenv(name))
		if v == "" {
			continue
		}
		return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
	}
	return false
}

// colorMode reads COLORTERM and TERM. Unknown terminals get 16 colors;
// wrong-but-conservative beats a screen full of garbage escapes.
func colorMode() ColorMode {
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return ColorTrueColor
	}
	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case strings.Contains(term, "truecolor"),
		strings.Contains(term, "24bit"),
		strings.Contains(term, "direct"):
		return ColorTrueColor
	case strings.Contains(term, "256color"):
		return Color256
	}
	return Color16
}

// ShouldUseASCII reports whether drawing should stick to ASCII cells.
// A non-nil override from the config wins over detection.
func (c *TermCapabilities) ShouldUseASCII(override *bool) bool {
	if override != nil {
		return *override
	}
	return !c.UTF8Support
}

// ShouldUseTrueColor reports whether 24-bit escapes are safe. A
// non-nil override from the config wins over detection.
func (c *TermCapabilities) ShouldUseTrueColor(override *bool) bool {
	if override != nil {
		return *override
	}
	return c.ColorMode == ColorTrueColor
}

// GlobalCapabilities caches the probe result for the process.
var GlobalCapabilities *TermCapabilities

// InitCapabilities runs the probe and stores the result.
func InitCapabilities() {
	GlobalCapabilities = DetectCapabilities()
}

// GetCapabilities returns the cached capabilities, probing on first
// use.
func GetCapabilities() *TermCapabilities {
	if GlobalCapabilities == nil {
		InitCapabilities()
	}
	return GlobalCapabilities
}
