package vtt

import (
	"fmt"
	"strings"
)

// flagBits maps VTT flag letters to binary digits. Each axis of the
// TrueType instruction flags has a letter for set and one for unset;
// the distance type needs two bits.
var flagBits = map[string]string{
	"X": "1", "Y": "0", // direction
	"O": "1", "N": "0", // original or current outline
	"R": "1", "r": "0", // round, or line relation
	"M": "1", "m": "0", // set rp0
	"1": "1", "2": "0", // use rp1 or rp2
	">": "1", "<": "0", // obey minimum distance
	"Gr": "00", "Bl": "01", "Wh": "10", // distance type
}

// EncodeFlags translates a string of VTT flag letters into a string of
// binary digits. Two-letter codes take precedence over single letters.
// It returns the index of the first unknown letter together with an error.
func EncodeFlags(letters string) (string, int, error) {
	var b strings.Builder
	for i := 0; i < len(letters); {
		if i+1 < len(letters) {
			if bits, ok := flagBits[letters[i:i+2]]; ok {
				b.WriteString(bits)
				i += 2
				continue
			}
		}
		bits, ok := flagBits[letters[i:i+1]]
		if !ok {
			return "", i, fmt.Errorf("unknown flag letter %q", letters[i])
		}
		b.WriteString(bits)
		i++
	}
	return b.String(), -1, nil
}
