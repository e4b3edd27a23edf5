package ttasm

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	tests := []struct {
		values []int
		runs   []string // mnemonic:count
		size   int
	}{
		{[]int{1}, []string{"PUSHB:1"}, 2},
		{[]int{1, 2}, []string{"PUSHB:2"}, 3},
		{[]int{-1}, []string{"PUSHW:1"}, 3},
		{[]int{300, 1, 2}, []string{"PUSHW:1", "PUSHB:2"}, 6},
		{[]int{300, 1, 300}, []string{"PUSHW:3"}, 7},
		{[]int{300, 1}, []string{"PUSHW:1", "PUSHB:1"}, 5},
		{[]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, []string{"NPUSHB:9"}, 11},
		{[]int{-1, -2, -3, -4, -5, -6, -7, -8, -9}, []string{"NPUSHW:9"}, 20},
	}
	for _, tt := range tests {
		runs, err := EncodePush(tt.values)
		require.NoError(t, err)
		var got []string
		size := 0
		for _, r := range runs {
			got = append(got, fmt.Sprintf("%s:%d", r.Mnemonic(), len(r.Values)))
			size += r.Size()
		}
		assert.Equal(t, tt.runs, got, "%v", tt.values)
		assert.Equal(t, tt.size, size, "%v", tt.values)
	}
	_, err := EncodePush([]int{40000})
	assert.Error(t, err)
}

func TestLongRuns(t *testing.T) {
	values := make([]int, 300)
	for i := range values {
		values[i] = i % 200
	}
	runs, err := EncodePush(values)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 255, len(runs[0].Values))
	assert.Equal(t, 45, len(runs[1].Values))
	assert.Equal(t, "NPUSHB", runs[1].Mnemonic())
	runs, err = WordRuns(values)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Words)
	_, err = ByteRuns([]int{1, 256})
	assert.Error(t, err)
}

func TestSize(t *testing.T) {
	tests := []struct {
		line string
		size int
	}{
		{"DUP[]", 1},
		{"MIRP[10100]", 1},
		{"PUSH[] 1", 2},
		{"PUSH[] 1 2", 3},
		{"PUSH[] -1", 3},
		{"PUSHW[] -6", 3},
		{"PUSHW[] 3 3", 5},
		{"PUSHB[] 7 8 9", 4},
	}
	for _, tt := range tests {
		size, err := Size(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.size, size, tt.line)
	}
	_, err := Size("DUP")
	assert.Error(t, err)
	_, err = Size("DUP[] 3")
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	list, err := Flatten("PUSH[] 300 1 2\r\nSVTCA[0]\n\nMIRP[10100]\n")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PUSHW[000]\t/* 1 values pushed */", "300",
		"PUSHB[001]\t/* 2 values pushed */", "1", "2",
		"SVTCA[0]",
		"MIRP[10100]",
	}, list)
}

func TestFormatWrapsValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	list := []string{"NPUSHB[ ]  /* 30 values pushed */"}
	for i := 1; i <= 30; i++ {
		list = append(list, strconv.Itoa(i))
	}
	list = append(list, "SVTCA[0]", "PUSHB[000]  /* 1 values pushed */", "7", "CALL[ ]")
	out := Format(list)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "NPUSHB[ ]  /* 30 values pushed */", lines[0])
	assert.Equal(t, 25, len(strings.Fields(lines[1])))
	assert.Equal(t, "26 27 28 29 30", lines[2])
	assert.Equal(t, "SVTCA[0]", lines[3])
	assert.Equal(t, "7", lines[5])
	assert.Equal(t, "CALL[ ]", lines[6])
}

func TestFormatIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	values := make([]int, 61)
	for i := range values {
		values[i] = i * 7
	}
	canon := "PUSH[] " + strings.Trim(fmt.Sprint(values), "[]") + "\nMDAP[1]\nPUSH[] 1 2\nIUP[0]"
	list, err := Flatten(canon)
	require.NoError(t, err)
	once := Format(list)
	twice := FormatText(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, twice, FormatText(strings.ReplaceAll(twice, "\n", "\r\n")))
}

func TestFormatShortPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vttc.hinting")
	defer teardown()
	//
	list := []string{"PUSHB[002]  /* 3 values pushed */", "1", "2", "SVTCA[0]", "MDAP[1]"}
	assert.Equal(t, "PUSHB[002]  /* 3 values pushed */\n1 2\nSVTCA[0]\nMDAP[1]\n", Format(list))
}

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "", FormatText("\n\n"))
}

type listDisassembler []string

func (l listDisassembler) Disassemble(p Program, preserve bool) ([]string, error) {
	return l, nil
}

func TestPrettyPrint(t *testing.T) {
	d := listDisassembler{"PUSHB[001]  /* 2 values pushed */", "4", "5", "SHP[0]"}
	out, err := PrettyPrint(d, Program{0xb1, 4, 5, 0x33})
	require.NoError(t, err)
	assert.Equal(t, "PUSHB[001]  /* 2 values pushed */\n4 5\nSHP[0]\n", out)
}
