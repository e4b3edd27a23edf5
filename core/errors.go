package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Error codes used throughout the hinting compiler. Codes below 130 are
// general purpose. Codes from 130 on each belong to one error type of
// the truetype packages:
//
//	ESYNTAX     vtt.ParseError, malformed source with line and column
//	ESTRUCTURE  vttxform.StructuralError, e.g. unbalanced #BEGIN/#END
//	ECOMPOSITE  vttcomp.ValidationError, composite info vs. 'glyf' data
//	EEMPTY      vttbuild.EmptyProgramError, required program without code
//
// Batch compilation reports per-glyph failures as vttbuild.GlyphError,
// which carries the code of its cause.
const (
	NOERROR    int = 0
	EMISSING   int = 122 // resource or program does not exist
	EINVALID   int = 123 // invalid argument or data
	EINTERNAL  int = 125 // internal error
	ESYNTAX    int = 130 // malformed VTT source
	ESTRUCTURE int = 131 // structural violation in a token stream
	ECOMPOSITE int = 132 // composite info disagrees with glyph geometry
	EEMPTY     int = 133 // required program compiled to nothing
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	case ESYNTAX:
		return "syntax error"
	case ESTRUCTURE:
		return "structural error"
	case ECOMPOSITE:
		return "composite mismatch"
	case EEMPTY:
		return "empty program"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
// All error types of the compiler packages implement it, so clients may
// either switch on the concrete type (with errors.As) or on the code.
// For syntax errors the user message includes the offending source line
// with a caret under the error column.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == e.error.Error() {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// A nil error is replaced by the standard text for code.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the error code of the first AppError in err's chain,
// e.g. ECOMPOSITE for a glyph whose composite info does not match the
// font. Errors without a code count as EINTERNAL, nil as NOERROR.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the message to show to users of the command line
// tool. Errors without an AppError in their chain get the text of their
// code. For nil it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// CodeText returns a short description for an error code, e.g. "syntax
// error" for ESYNTAX.
func CodeText(code int) string {
	return errorText(code)
}

// UserError prints err to stderr as "[code] message", see FprintError.
func UserError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes err to w, preferring its user message.
func FprintError(w io.Writer, err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(w, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}
