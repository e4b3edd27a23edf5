/*
Package vttbuild compiles the VTT sources of a whole font.

A font hinted with VTT carries its sources in private tables: the control
program listing the control values, the pre-program ("ppgm"), the font
program ("fpgm") and one program per glyph. Compile translates all of
them to canonical TrueType assembly. Glyph programs are independent of
each other and are compiled in parallel; an error in one glyph program
is recorded for that glyph and does not stop the batch.

Composite info found in glyph programs is checked against the composite
glyphs of the font. Optionally, composite info that does not match is
regenerated from the font and the glyph is compiled again.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package vttbuild

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vttc/core"
)

// tracer traces with key 'vttc.hinting'.
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}

// GlyphError is an error in compiling a single program.
type GlyphError struct {
	Glyph string // name of the glyph, or tag of an extra program
	Extra bool   // is this an extra program, i.e., not a glyph program?
	Err   error
}

func (e *GlyphError) Error() string {
	if e.Extra {
		return fmt.Sprintf("program %s: %v", e.Glyph, e.Err)
	}
	return fmt.Sprintf("glyph '%s': %v", e.Glyph, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code of the underlying error.
func (e *GlyphError) ErrorCode() int {
	return core.Code(e.Err)
}

// UserMessage returns the user message of the underlying error, prefixed
// with the program name.
func (e *GlyphError) UserMessage() string {
	if e.Extra {
		return fmt.Sprintf("program %s: %s", e.Glyph, core.UserMessage(e.Err))
	}
	return fmt.Sprintf("glyph '%s': %s", e.Glyph, core.UserMessage(e.Err))
}

// EmptyProgramError flags a program which must not be empty but compiled
// to no instructions.
type EmptyProgramError struct {
	Program string
}

func (e *EmptyProgramError) Error() string {
	return fmt.Sprintf("program %s compiled to nothing", e.Program)
}

// ErrorCode returns EEMPTY.
func (e *EmptyProgramError) ErrorCode() int {
	return core.EEMPTY
}

func (e *EmptyProgramError) UserMessage() string {
	return e.Error()
}

var _ core.AppError = &GlyphError{}
var _ core.AppError = &EmptyProgramError{}
