package text

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode/utf32"
)

// utf32LE converts UTF-8 to little-endian UTF-32 without a byte order mark.
var utf32LE = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)

// CodePoints decodes s into Unicode code points. Malformed UTF-8 decodes to
// U+FFFD. The sequence ends at the first zero code point, so an embedded NUL
// terminates the text.
func CodePoints(s string) []rune {
	if s == "" {
		return nil
	}
	b, err := utf32LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// UTF-32 can encode every rune; only a broken transformer gets here.
		slogger().Debug("text: utf-32 conversion failed", "err", err)
		return nil
	}

	out := make([]rune, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		r := rune(binary.LittleEndian.Uint32(b[i:]))
		if r == 0 {
			break
		}
		out = append(out, r)
	}
	return out
}
