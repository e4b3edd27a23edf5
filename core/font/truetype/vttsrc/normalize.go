package vttsrc

import (
	"regexp"
	"strings"
)

var (
	guiGenerated = regexp.MustCompile(`/\* GUI generated .*?\*/[\r\n]*`)
	vttCompiler  = regexp.MustCompile(`/\* (VTT [0-9]+\.[0-9][0-9A-Z]* compiler) .*?\*/[\r\n]*`)
	glyphIndex   = regexp.MustCompile(`/\* (?:TT|VTTTalk) glyph [0-9]+.*?\*/[\r\n]*`)
	trailing     = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Normalize removes volatile comments from a VTT program: comments with
// timestamps of GUI-generated code and glyph index comments are removed,
// and compiler banners are reduced to the compiler version. Line endings
// are normalized to LF and trailing white space is removed from lines.
//
// Set glyph to false for font-wide programs, which keep glyph comments.
func Normalize(program string, glyph bool) string {
	program = joinLines(program, "\n")
	if glyph {
		program = guiGenerated.ReplaceAllString(program, "")
	}
	program = vttCompiler.ReplaceAllString(program, "/* $1 */\n")
	if glyph {
		program = glyphIndex.ReplaceAllString(program, "")
	}
	program = trailing.ReplaceAllString(program, "")
	program = strings.TrimRight(program, "\n")
	if program == "" {
		return ""
	}
	return program + "\n"
}
