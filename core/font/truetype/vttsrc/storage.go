package vttsrc

import (
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/vttc/core"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode reads a stored VTT program. A byte order mark is skipped, and
// CR and CR/LF line endings are converted to LF.
func Decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, transform.Chain(dec, LineEnds())))
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot decode VTT source")
	}
	return string(b), nil
}

// DecodeBytes is like Decode for a byte slice.
func DecodeBytes(data []byte) (string, error) {
	return Decode(bytes.NewReader(data))
}

// Encode converts a program to the form VTT stores: lines are separated by
// CR, trailing white space is removed and a final CR is appended.
// An empty program stays empty.
func Encode(program string) []byte {
	program = strings.TrimRight(joinLines(program, "\r"), " \t\r\n")
	if program == "" {
		return nil
	}
	return []byte(program + "\r")
}

// joinLines splits text at any line ending and joins the lines with sep.
func joinLines(text, sep string) string {
	s, _, _ := transform.String(LineEnds(), text)
	if sep == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", sep)
}

// LineEnds returns a transformer converting CR and CR/LF line endings
// to LF.
func LineEnds() transform.Transformer {
	return lineEnds{}
}

type lineEnds struct {
	transform.NopResetter
}

func (lineEnds) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' {
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
			nSrc++
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
