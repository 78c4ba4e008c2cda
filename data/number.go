package data

// Numbers are stored as little-endian base-253 digits, each digit biased by
// one so that 0x00 never appears. 0xFE marks an unused high digit.
const (
	CharMax  = 253
	ShortMax = CharMax * CharMax
	ThreeMax = CharMax * CharMax * CharMax
	IntMax   = CharMax * CharMax * CharMax * CharMax
)

const (
	// BreakByte separates chunks in chunked structures.
	BreakByte = 0xFF
	// unusedDigit fills the high digits of small numbers.
	unusedDigit = 0xFE
)

var digitWeights = [4]int{1, CharMax, ShortMax, ThreeMax}

// EncodeNumber encodes number as four EO digits. Callers keep as many
// leading bytes as the field width needs.
func EncodeNumber(number int) [4]byte {
	value := number

	d := byte(unusedDigit)
	if number >= ThreeMax {
		d = byte(value/ThreeMax + 1)
		value = value % ThreeMax
	}

	c := byte(unusedDigit)
	if number >= ShortMax {
		c = byte(value/ShortMax + 1)
		value = value % ShortMax
	}

	b := byte(unusedDigit)
	if number >= CharMax {
		b = byte(value/CharMax + 1)
		value = value % CharMax
	}

	a := byte(value + 1)

	return [4]byte{a, b, c, d}
}

// DecodeNumber is the inverse of EncodeNumber for up to four bytes.
func DecodeNumber(bytes []byte) int {
	result := 0
	length := len(bytes)
	if length > 4 {
		length = 4
	}
	for i := 0; i < length; i++ {
		value := int(bytes[i])
		if value == unusedDigit {
			break
		}
		value--
		result += value * digitWeights[i]
	}
	return result
}
