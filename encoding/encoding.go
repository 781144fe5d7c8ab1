// Package encoding figures out what charset a loaded file is in and
// converts between it and the UTF-8 the editing core works on, so a
// legacy-encoded file can be opened, edited and written back in its
// own encoding.
package encoding

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names a supported file encoding. Coder is nil for the UTF-8
// variants, where the bytes pass through untouched. BOM, when set, is
// stripped on decode and written back on encode; the coders themselves
// never emit one, so the BOM appears exactly once.
type Charset struct {
	Name    string
	Coder   encoding.Encoding
	BOM     []byte
	aliases []string
}

func (c *Charset) String() string { return c.Name }

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// UTF8 is the charset of a file that needs no conversion, and the
// default for anything newly created.
var UTF8 = &Charset{Name: "UTF-8", aliases: []string{"utf-8", "utf8"}}

// Latin1 maps every byte to a character, so it is the fallback when
// detection gives up on non-UTF-8 data.
var Latin1 = &Charset{
	Name:    "ISO-8859-1",
	Coder:   charmap.ISO8859_1,
	aliases: []string{"iso-8859-1", "latin1", "latin-1"},
}

var charsets = []*Charset{
	UTF8,
	{Name: "UTF-8 BOM", BOM: utf8BOM, aliases: []string{"utf-8-bom"}},
	{
		Name:    "UTF-16 LE",
		Coder:   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		BOM:     utf16LEBOM,
		aliases: []string{"utf-16le", "utf-16-le"},
	},
	{
		Name:    "UTF-16 BE",
		Coder:   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		BOM:     utf16BEBOM,
		aliases: []string{"utf-16be", "utf-16-be"},
	},
	Latin1,
	{
		Name:    "Windows-1252",
		Coder:   charmap.Windows1252,
		aliases: []string{"windows-1252", "cp1252"},
	},
	{
		Name:    "ISO-8859-15",
		Coder:   charmap.ISO8859_15,
		aliases: []string{"iso-8859-15", "latin9", "latin-9"},
	},
	{
		Name:    "Shift-JIS",
		Coder:   japanese.ShiftJIS,
		aliases: []string{"shift_jis", "shift-jis", "sjis", "ms_kanji"},
	},
	{Name: "EUC-JP", Coder: japanese.EUCJP, aliases: []string{"euc-jp"}},
	{
		Name:    "GBK",
		Coder:   simplifiedchinese.GBK,
		aliases: []string{"gbk", "gb2312", "gb-2312"},
	},
	{Name: "GB18030", Coder: simplifiedchinese.GB18030, aliases: []string{"gb18030"}},
	{Name: "EUC-KR", Coder: korean.EUCKR, aliases: []string{"euc-kr"}},
}

// Lookup resolves a charset by name or alias, case-insensitively. It
// returns nil for a name nothing here answers to.
func Lookup(name string) *Charset {
	name = strings.ToLower(name)
	for _, cs := range charsets {
		if strings.ToLower(cs.Name) == name {
			return cs
		}
		for _, alias := range cs.aliases {
			if alias == name {
				return cs
			}
		}
	}
	return nil
}

// Detect guesses the charset of raw file bytes. A BOM wins outright,
// then valid UTF-8; only then is the statistical detector consulted,
// and anything it cannot place falls back to Latin-1, which decodes
// every byte sequence.
func Detect(data []byte) *Charset {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return Lookup("utf-8-bom")
	case bytes.HasPrefix(data, utf16BEBOM):
		return Lookup("utf-16be")
	case bytes.HasPrefix(data, utf16LEBOM):
		return Lookup("utf-16le")
	}
	if utf8.Valid(data) {
		return UTF8
	}
	detected, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || detected == nil {
		return Latin1
	}
	if cs := Lookup(detected.Charset); cs != nil {
		return cs
	}
	return Latin1
}

// DecodeToUTF8 converts file bytes in cs to UTF-8, stripping the BOM
// if the charset carries one.
func DecodeToUTF8(data []byte, cs *Charset) ([]byte, error) {
	if cs == nil {
		return data, nil
	}
	if cs.BOM != nil {
		data = bytes.TrimPrefix(data, cs.BOM)
	}
	if cs.Coder == nil {
		return data, nil
	}
	r := transform.NewReader(bytes.NewReader(data), cs.Coder.NewDecoder())
	return io.ReadAll(r)
}

// EncodeFromUTF8 converts UTF-8 bytes back to cs, reinstating the BOM
// the file was loaded with. Text the target charset cannot represent
// makes the encoder fail rather than silently mangle the file.
func EncodeFromUTF8(data []byte, cs *Charset) ([]byte, error) {
	if cs == nil {
		return data, nil
	}
	if cs.Coder == nil {
		if cs.BOM == nil {
			return data, nil
		}
		return append(append([]byte{}, cs.BOM...), data...), nil
	}
	var buf bytes.Buffer
	buf.Write(cs.BOM)
	w := transform.NewWriter(&buf, cs.Coder.NewEncoder())
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
