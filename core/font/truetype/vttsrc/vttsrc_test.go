package vttsrc

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vttc/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	s, err := Decode(strings.NewReader("\ufeffSVTCA[Y]\rMDAP[R], 1\r\nIUP[Y]\r"))
	require.NoError(t, err)
	assert.Equal(t, "SVTCA[Y]\nMDAP[R], 1\nIUP[Y]\n", s)
	s, err = DecodeBytes([]byte("a\r\r\nb"))
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb", s)
}

func TestLineEndsAcrossBuffers(t *testing.T) {
	// a CR at the end of a buffer must wait for the next one
	src := strings.Repeat("x\r\n", 3000)
	s, _, err := transform.String(LineEnds(), src)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x\n", 3000), s)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, []byte("SVTCA[Y]\rIUP[Y]\r"), Encode("SVTCA[Y]\nIUP[Y]\n\n  "))
	assert.Equal(t, []byte("a\r\rb\r"), Encode("a\r\n\nb"))
	assert.Nil(t, Encode(" \n"))
	s, err := DecodeBytes(Encode("SVTCA[X]\nDUP[]"))
	require.NoError(t, err)
	assert.Equal(t, "SVTCA[X]\nDUP[]\n", s)
}

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	program := "/* TT glyph 36, char 0x41 (A) */\r" +
		"/* VTT 6.35 compiler Wed Oct 10 11:12:13 2024 */\r" +
		"SVTCA[Y]\r" +
		"/* GUI generated Wed Oct 10 11:12:13 2024 */\r\r" +
		"MDAP[R], 1  \r\r"
	assert.Equal(t, "/* VTT 6.35 compiler */\nSVTCA[Y]\nMDAP[R], 1\n", Normalize(program, true))
	assert.Equal(t, "/* TT glyph 36, char 0x41 (A) */\n/* VTT 6.35 compiler */\nSVTCA[Y]\n"+
		"/* GUI generated Wed Oct 10 11:12:13 2024 */\n\nMDAP[R], 1\n", Normalize(program, false))
	assert.Equal(t, "", Normalize("\r\r", true))
	assert.Equal(t, "SVTCA[X]\nDUP[]\n", Normalize("SVTCA[X] \t\rDUP[]", false))
}

func TestControlValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	program := `/* Control values */
Group Uppercase
  0:   1456 /* cap height */
  1:    -20
/* 2: 99 is commented out */
  4: 32767
ASM("SVTCA[Y]")`
	values, err := ControlValues(program)
	require.NoError(t, err)
	assert.Equal(t, []int16{1456, -20, 0, 0, 32767}, values)
	values, err = ControlValues("")
	require.NoError(t, err)
	assert.Empty(t, values)
	_, err = ControlValues("3: 40000")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ControlValues("70000: 1")
	assert.Error(t, err)
}
