package data

import (
	"golang.org/x/text/encoding/charmap"
)

// EncodeString obfuscates bytes in place the way the client sends
// "encoded" strings: printable bytes are inverted, then the run is reversed.
func EncodeString(bytes []byte) {
	invertCharacters(bytes)
	reverseBytes(bytes)
}

// DecodeString undoes EncodeString in place.
func DecodeString(bytes []byte) {
	reverseBytes(bytes)
	invertCharacters(bytes)
}

func invertCharacters(bytes []byte) {
	flippy := len(bytes)%2 == 1
	for i, c := range bytes {
		if c >= 0x22 && c <= 0x7E {
			switch {
			case !flippy:
				bytes[i] = 0x9F - c
			case c < 0x50:
				bytes[i] = 0x71 - c
			default:
				bytes[i] = 0xCD - c
			}
		}
		flippy = !flippy
	}
}

func reverseBytes(bytes []byte) {
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}
}

// stringToBytes converts s to Windows-1252.
func stringToBytes(s string) ([]byte, error) {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, NewSerializationError("string %q is not representable in windows-1252: %v", s, err)
	}
	return b, nil
}

// StringLength returns the number of bytes s takes on the wire.
func StringLength(s string) (int, error) {
	b, err := stringToBytes(s)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// bytesToString converts Windows-1252 bytes to a Go string. Every byte maps
// to a rune, so decoding cannot fail.
func bytesToString(b []byte) string {
	s, _ := charmap.Windows1252.NewDecoder().Bytes(b)
	return string(s)
}
