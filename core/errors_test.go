package core

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(ESYNTAX, "unexpected %q", "]")
	assert.Equal(t, ESYNTAX, Code(err))
	assert.Equal(t, `unexpected "]"`, UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestWrappedErrors(t *testing.T) {
	inner := errors.New("disk on fire")
	err := WrapError(inner, EMISSING, "cannot read %s", "font.ttf")
	assert.True(t, errors.Is(err, inner))
	outer := fmt.Errorf("glyph A: %w", err)
	assert.Equal(t, EMISSING, Code(outer))
	assert.Equal(t, "cannot read font.ttf", UserMessage(outer))
	err = ErrorWithCode(nil, EEMPTY)
	assert.Equal(t, EEMPTY, Code(err))
	assert.Equal(t, "empty program", CodeText(EEMPTY))
}

func TestFprintError(t *testing.T) {
	var buf bytes.Buffer
	FprintError(&buf, Error(ESTRUCTURE, "unbalanced #BEGIN"))
	assert.Equal(t, "[131] unbalanced #BEGIN\n", buf.String())
	buf.Reset()
	FprintError(&buf, errors.New("oops"))
	assert.Equal(t, "Error: oops\n", buf.String())
}

func TestHintingCodes(t *testing.T) {
	texts := map[int]string{
		ESYNTAX:    "syntax error",
		ESTRUCTURE: "structural error",
		ECOMPOSITE: "composite mismatch",
		EEMPTY:     "empty program",
	}
	for code, text := range texts {
		assert.Equal(t, text, CodeText(code))
		err := fmt.Errorf("glyph Aacute: %w", ErrorWithCode(nil, code))
		assert.Equal(t, code, Code(err))
		assert.Equal(t, text, UserMessage(err))
	}
	assert.Equal(t, "undefined error", CodeText(999))
}
