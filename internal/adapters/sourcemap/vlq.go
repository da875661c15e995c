package sourcemap

import (
	"go.trai.ch/zerr"
)

const (
	vlqShift        = 5
	vlqContinuation = 1 << vlqShift
	vlqMask         = vlqContinuation - 1
	// Values are 32-bit signed integers, so at most 7 digits are needed.
	vlqMaxShift = 31
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Values = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := range len(base64Alphabet) {
		table[base64Alphabet[i]] = int8(i)
	}
	return table
}()

// decodeVLQ decodes one base64 VLQ value of s starting at pos and returns it together
// with the position right after it.
func decodeVLQ(s string, pos int) (int, int, error) {
	var (
		result int
		shift  int
	)
	for {
		if pos >= len(s) {
			return 0, pos, zerr.With(zerr.New("truncated VLQ value"), "offset", pos)
		}
		digit := base64Values[s[pos]]
		if digit < 0 {
			return 0, pos, zerr.With(zerr.With(zerr.New("invalid base64 digit"), "offset", pos), "char", string(s[pos]))
		}
		pos++

		result += int(digit&vlqMask) << shift
		if digit&vlqContinuation == 0 {
			break
		}
		shift += vlqShift
		if shift > vlqMaxShift {
			return 0, pos, zerr.With(zerr.New("VLQ value overflows 32 bits"), "offset", pos)
		}
	}

	// The lowest bit carries the sign.
	value := result >> 1
	if result&1 == 1 {
		value = -value
	}
	return value, pos, nil
}
