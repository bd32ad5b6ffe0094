package cstr

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/syskit/internal/buf"
)

// ErrOddLength indicates UTF-16 input whose byte length is not a multiple
// of two.
var ErrOddLength = errors.New("cstr: utf-16 data has odd length")

// DecodeANSI converts the zero-trimmed content of b from Windows-1252 to
// UTF-8. Pure-ASCII content is returned directly, since ASCII is identical
// in Windows-1252 and UTF-8; the decoder only runs for the extended range
// (0x80-0xFF).
func DecodeANSI(b []byte) (string, error) {
	data := b[:Length(b)]
	if isASCII(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("cstr: decode windows-1252: %w", err)
	}
	return string(decoded), nil
}

// DecodeUTF16LE converts little-endian UTF-16 to UTF-8. A trailing zero code
// unit is trimmed; surrogate pairs are combined. Input of odd byte length
// fails with ErrOddLength.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	if len(b) >= 2 && b[len(b)-2] == 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-2]
	}
	if len(b) == 0 {
		return "", nil
	}

	// Fast path: ASCII code units map one byte each.
	ascii := true
	for i := 0; i < len(b); i += 2 {
		if b[i+1] != 0 || b[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		var sb strings.Builder
		sb.Grow(len(b) / 2)
		for i := 0; i < len(b); i += 2 {
			sb.WriteByte(b[i])
		}
		return sb.String(), nil
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = buf.U16LE(b[2*i:])
	}
	return string(utf16.Decode(units)), nil
}

func isASCII(data []byte) bool {
	for _, c := range data {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
