package jvm

import "unicode/utf16"

// encodeModifiedUTF8 converts s to the modified UTF-8 JNI expects: NUL is
// written as C0 80 and supplementary characters as two three-byte
// surrogates. The result carries no terminator.
func encodeModifiedUTF8(s string) []byte {
	buf := make([]byte, 0, len(s)+2)
	for _, r := range s {
		switch {
		case r == 0:
			buf = append(buf, 0xC0, 0x80)
		case r < 0x80:
			buf = append(buf, byte(r))
		case r < 0x800:
			buf = append(buf, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			buf = appendUnit(buf, uint16(r))
		default:
			hi, lo := utf16.EncodeRune(r)
			buf = appendUnit(buf, uint16(hi))
			buf = appendUnit(buf, uint16(lo))
		}
	}
	return buf
}

func appendUnit(buf []byte, u uint16) []byte {
	return append(buf, 0xE0|byte(u>>12), 0x80|byte(u>>6&0x3F), 0x80|byte(u&0x3F))
}

// decodeModifiedUTF8 is the inverse of encodeModifiedUTF8. Malformed bytes
// and unpaired surrogates decode to U+FFFD.
func decodeModifiedUTF8(b []byte) string {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b) && cont(b[i+1]):
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b) && cont(b[i+1]) && cont(b[i+2]):
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, 0xFFFD)
			i++
		}
	}
	return string(utf16.Decode(units))
}

func cont(b byte) bool { return b&0xC0 == 0x80 }
