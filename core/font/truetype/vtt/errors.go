package vtt

import (
	"fmt"
	"strings"

	"github.com/npillmayer/vttc/core"
)

// ParseError is returned for malformed VTT source. It carries the position
// of the offending input and the source line containing it.
type ParseError struct {
	Pos  Position
	Msg  string
	Text string // source line containing the error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vtt: line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// ErrorCode is part of interface core.AppError.
func (e *ParseError) ErrorCode() int {
	return core.ESYNTAX
}

// UserMessage is part of interface core.AppError.
// It includes a pointer to the error location.
func (e *ParseError) UserMessage() string {
	return e.Error() + "\n" + e.Pointer()
}

// Pointer returns the offending source line, with a second line marking the
// error column with a caret.
func (e *ParseError) Pointer() string {
	var b strings.Builder
	b.WriteString(e.Text)
	b.WriteByte('\n')
	for i, r := range []rune(e.Text) {
		if i >= e.Pos.Column-1 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}

var _ core.AppError = &ParseError{}

func (s *scanner) errorf(format string, v ...interface{}) error {
	return s.errorAt(s.position(), fmt.Sprintf(format, v...))
}

func (s *scanner) errorAt(pos Position, msg string) error {
	return &ParseError{Pos: pos, Msg: msg, Text: s.sourceLine(pos.Line)}
}

// sourceLine returns line n of the source, without line terminator.
func (s *scanner) sourceLine(n int) string {
	line := 1
	start := 0
	for i := 0; i < len(s.src) && line < n; i++ {
		if s.src[i] == '\n' || (s.src[i] == '\r' && (i+1 == len(s.src) || s.src[i+1] != '\n')) {
			line++
			start = i + 1
		}
	}
	end := start
	for end < len(s.src) && s.src[end] != '\n' && s.src[end] != '\r' {
		end++
	}
	return string(s.src[start:end])
}
