// Package syntax colors buffer lines using chroma lexers. The view asks
// for per-line color spans and paints them; plain text files simply get
// no lexer and render uncolored.
package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Colors holds the color settings for syntax highlighting. Values are
// theme color strings: "0"-"255" or "#RRGGBB".
type Colors struct {
	Keyword  string
	String   string
	Comment  string
	Number   string
	Operator string
	Function string
	Type     string
	Error    string
}

// DefaultColors returns the default syntax color settings
func DefaultColors() Colors {
	return Colors{
		Keyword:  "14", // Bright cyan
		String:   "10", // Bright green
		Comment:  "8",  // Gray
		Number:   "11", // Bright yellow
		Operator: "13", // Bright magenta
		Function: "12", // Bright blue
		Type:     "11", // Bright yellow
		Error:    "9",  // Bright red
	}
}

// Span is a colored region of one line, in rune columns.
type Span struct {
	Start int
	End   int // exclusive
	Color string
}

// Highlighter provides syntax highlighting for one buffer.
type Highlighter struct {
	lexer     chroma.Lexer
	enabled   bool
	trueColor bool
	colors    Colors
}

// New creates a Highlighter for the given filename. A scratch buffer
// has no filename and gets no lexer.
func New(filename string) *Highlighter {
	h := &Highlighter{
		enabled:   true,
		trueColor: true,
		colors:    DefaultColors(),
	}
	h.SetFile(filename)
	return h
}

// SetFile updates the lexer based on the filename
func (h *Highlighter) SetFile(filename string) {
	if filename == "" {
		h.lexer = nil
		return
	}
	h.lexer = lexers.Match(filename)
	if h.lexer != nil {
		h.lexer = chroma.Coalesce(h.lexer)
	}
}

// SetEnabled enables or disables syntax highlighting
func (h *Highlighter) SetEnabled(enabled bool) {
	h.enabled = enabled
}

// SetTrueColor selects between 24-bit escapes and the nearest
// 256-color approximation for hex theme colors.
func (h *Highlighter) SetTrueColor(enabled bool) {
	h.trueColor = enabled
}

// HasLexer returns true if a lexer is available for the current file
func (h *Highlighter) HasLexer() bool {
	return h.lexer != nil
}

// SetColors sets the syntax highlighting colors
func (h *Highlighter) SetColors(colors Colors) {
	h.colors = colors
}

// LineSpans returns the color spans for one line of text.
// Returns nil if highlighting is disabled or no lexer is available.
func (h *Highlighter) LineSpans(line string) []Span {
	if !h.enabled || h.lexer == nil {
		return nil
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return nil
	}

	var spans []Span
	pos := 0
	for _, token := range iterator.Tokens() {
		color := h.tokenColor(token.Type)
		tokenLen := utf8.RuneCountInString(token.Value)
		if color != "" && tokenLen > 0 {
			spans = append(spans, Span{
				Start: pos,
				End:   pos + tokenLen,
				Color: color,
			})
		}
		pos += tokenLen
	}

	return spans
}

// ColorAt returns the color covering a rune column, or "" if none does.
func ColorAt(spans []Span, col int) string {
	for _, span := range spans {
		if col >= span.Start && col < span.End {
			return span.Color
		}
	}
	return ""
}

// colorToANSI converts a theme color string to an ANSI foreground
// escape sequence. Hex colors emit 24-bit escapes when the terminal
// handles them and degrade to the nearest 256-color index otherwise.
func (h *Highlighter) colorToANSI(color string) string {
	if strings.HasPrefix(color, "#") {
		r, g, b := parseHexColor(color)
		if h.trueColor {
			return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
		}
		return fmt.Sprintf("\033[38;5;%dm", rgbTo256Color(r, g, b))
	}
	n, err := strconv.Atoi(color)
	if err != nil {
		return "\033[37m" // Default to white on error
	}
	if n < 16 {
		if n < 8 {
			return fmt.Sprintf("\033[%dm", 30+n)
		}
		return fmt.Sprintf("\033[%dm", 90+(n-8))
	}
	return fmt.Sprintf("\033[38;5;%dm", n)
}

// rgbTo256Color converts RGB values to the nearest 256-color palette index
func rgbTo256Color(r, g, b int) int {
	if isGrayscale(r, g, b) {
		return rgbToGrayscale(r, g, b)
	}
	// 6x6x6 color cube (colors 16-231)
	return 16 + 36*rgbTo6(r) + 6*rgbTo6(g) + rgbTo6(b)
}

// rgbTo6 converts an 8-bit color value to a 6-level value (0-5)
// The 6x6x6 cube uses values: 0, 95, 135, 175, 215, 255
func rgbTo6(v int) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	case v < 155:
		return 2
	case v < 195:
		return 3
	case v < 235:
		return 4
	}
	return 5
}

// isGrayscale checks if RGB values are close enough to be grayscale
func isGrayscale(r, g, b int) bool {
	max := r
	min := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	return (max - min) < 20
}

// rgbToGrayscale converts RGB to nearest grayscale in 232-255 range
func rgbToGrayscale(r, g, b int) int {
	gray := (r + g + b) / 3
	if gray < 4 {
		return 16 // Use black from color cube
	}
	if gray > 243 {
		return 231 // Use white from color cube
	}
	return 232 + (gray-8)/10
}

// parseHexColor parses #RGB or #RRGGBB to r, g, b values
func parseHexColor(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		r, _ := strconv.ParseInt(string(hex[0])+string(hex[0]), 16, 32)
		g, _ := strconv.ParseInt(string(hex[1])+string(hex[1]), 16, 32)
		b, _ := strconv.ParseInt(string(hex[2])+string(hex[2]), 16, 32)
		return int(r), int(g), int(b)
	}
	if len(hex) == 6 {
		r, _ := strconv.ParseInt(hex[0:2], 16, 32)
		g, _ := strconv.ParseInt(hex[2:4], 16, 32)
		b, _ := strconv.ParseInt(hex[4:6], 16, 32)
		return int(r), int(g), int(b)
	}
	return 255, 255, 255 // Default to white on error
}

// tokenColor returns the ANSI color code for a token type
func (h *Highlighter) tokenColor(t chroma.TokenType) string {
	switch {
	case t == chroma.Keyword,
		t == chroma.KeywordConstant,
		t == chroma.KeywordDeclaration,
		t == chroma.KeywordNamespace,
		t == chroma.KeywordPseudo,
		t == chroma.KeywordReserved,
		t == chroma.KeywordType:
		return h.colorToANSI(h.colors.Keyword)

	case t == chroma.String,
		t == chroma.StringAffix,
		t == chroma.StringBacktick,
		t == chroma.StringChar,
		t == chroma.StringDelimiter,
		t == chroma.StringDoc,
		t == chroma.StringDouble,
		t == chroma.StringEscape,
		t == chroma.StringHeredoc,
		t == chroma.StringInterpol,
		t == chroma.StringOther,
		t == chroma.StringRegex,
		t == chroma.StringSingle,
		t == chroma.StringSymbol:
		return h.colorToANSI(h.colors.String)

	case t == chroma.Comment,
		t == chroma.CommentHashbang,
		t == chroma.CommentMultiline,
		t == chroma.CommentPreproc,
		t == chroma.CommentPreprocFile,
		t == chroma.CommentSingle,
		t == chroma.CommentSpecial:
		return h.colorToANSI(h.colors.Comment)

	case t == chroma.Number,
		t == chroma.NumberBin,
		t == chroma.NumberFloat,
		t == chroma.NumberHex,
		t == chroma.NumberInteger,
		t == chroma.NumberIntegerLong,
		t == chroma.NumberOct:
		return h.colorToANSI(h.colors.Number)

	case t == chroma.Operator,
		t == chroma.OperatorWord:
		return h.colorToANSI(h.colors.Operator)

	case t == chroma.NameFunction,
		t == chroma.NameFunctionMagic:
		return h.colorToANSI(h.colors.Function)

	case t == chroma.NameClass,
		t == chroma.NameBuiltin,
		t == chroma.NameBuiltinPseudo:
		return h.colorToANSI(h.colors.Type)

	case t == chroma.NameConstant:
		return h.colorToANSI(h.colors.Number)

	case t == chroma.Error,
		t == chroma.GenericError:
		return h.colorToANSI(h.colors.Error)

	default:
		return "" // Default terminal color
	}
}
