package ttasm

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRun is the maximum number of values a single NPUSHB/NPUSHW may carry.
const maxRun = 255

// Run is a sequence of values pushed by a single push instruction.
type Run struct {
	Words  bool // push 16-bit words instead of bytes
	Values []int
}

// Mnemonic returns the push instruction used for the run.
func (r Run) Mnemonic() string {
	switch {
	case r.Words && len(r.Values) <= 8:
		return "PUSHW"
	case r.Words:
		return "NPUSHW"
	case len(r.Values) <= 8:
		return "PUSHB"
	}
	return "NPUSHB"
}

// Size returns the number of bytes the run occupies in bytecode.
func (r Run) Size() int {
	n := len(r.Values)
	size := 1 + n
	if r.Words {
		size = 1 + 2*n
	}
	if n > 8 {
		size++ // count byte of NPUSHx
	}
	return size
}

// Header returns the run's push instruction as a disassembler prints it,
// including the count of values pushed.
func (r Run) Header() string {
	n := len(r.Values)
	if n > 8 {
		return fmt.Sprintf("%s[ ]\t/* %d values pushed */", r.Mnemonic(), n)
	}
	return fmt.Sprintf("%s[%03b]\t/* %d values pushed */", r.Mnemonic(), n-1, n)
}

func isByte(v int) bool {
	return v >= 0 && v <= 255
}

func checkRange(values []int) error {
	for _, v := range values {
		if v < -32768 || v > 32767 {
			return errAssembly(fmt.Sprintf("push value out of range: %d", v))
		}
	}
	return nil
}

// EncodePush splits values into push runs the way a TrueType assembler
// does: values in 0…255 are pushed as bytes, others as words, short byte
// runs between words are pushed as words, and no run is longer than 255.
// Order of values is preserved.
func EncodePush(values []int) ([]Run, error) {
	if err := checkRange(values); err != nil {
		return nil, err
	}
	var runs []Run
	args := values
	nWords := 0
	for len(args) > 0 {
		for nWords < len(args) && nWords < maxRun && !isByte(args[nWords]) {
			nWords++
		}
		nBytes := 0
		for nWords+nBytes < len(args) && nBytes < maxRun && isByte(args[nWords+nBytes]) {
			nBytes++
		}
		if nBytes < 2 && nWords+nBytes < maxRun && nWords+nBytes != len(args) {
			nWords += nBytes // single byte value between words
			continue
		}
		if nWords > 0 {
			runs = append(runs, Run{Words: true, Values: args[:nWords:nWords]})
		}
		if nBytes > 0 {
			runs = append(runs, Run{Values: args[nWords : nWords+nBytes : nWords+nBytes]})
		}
		args = args[nWords+nBytes:]
		nWords = 0
	}
	return runs, nil
}

// WordRuns splits values into runs of words, for explicit PUSHW.
func WordRuns(values []int) ([]Run, error) {
	return chunked(values, true)
}

// ByteRuns splits values into runs of bytes, for explicit PUSHB.
func ByteRuns(values []int) ([]Run, error) {
	for _, v := range values {
		if !isByte(v) {
			return nil, errAssembly(fmt.Sprintf("byte push value out of range: %d", v))
		}
	}
	return chunked(values, false)
}

func chunked(values []int, words bool) ([]Run, error) {
	if err := checkRange(values); err != nil {
		return nil, err
	}
	var runs []Run
	for len(values) > 0 {
		n := len(values)
		if n > maxRun {
			n = maxRun
		}
		runs = append(runs, Run{Words: words, Values: values[:n:n]})
		values = values[n:]
	}
	return runs, nil
}

// PushRuns returns the push runs of a canonical push instruction, i.e.
// one of PUSH, PUSHB, PUSHW, NPUSHB or NPUSHW followed by values.
// For other mnemonics it returns false.
func PushRuns(mnemonic string, values []int) ([]Run, bool, error) {
	var runs []Run
	var err error
	switch mnemonic {
	case "PUSH":
		runs, err = EncodePush(values)
	case "PUSHB", "NPUSHB":
		runs, err = ByteRuns(values)
	case "PUSHW", "NPUSHW":
		runs, err = WordRuns(values)
	default:
		return nil, false, nil
	}
	return runs, true, err
}

// Instruction is a line of canonical assembly, split into parts.
type Instruction struct {
	Mnemonic string
	Flags    string
	Values   []int
}

// ParseInstruction splits a canonical assembly line "MNEMONIC[flags] v…".
func ParseInstruction(line string) (Instruction, error) {
	var ins Instruction
	line = strings.TrimSpace(line)
	open := strings.IndexByte(line, '[')
	end := strings.IndexByte(line, ']')
	if open <= 0 || end < open {
		return ins, errAssembly(fmt.Sprintf("malformed instruction %q", line))
	}
	ins.Mnemonic = line[:open]
	ins.Flags = strings.TrimSpace(line[open+1 : end])
	for _, f := range strings.Fields(line[end+1:]) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return ins, errAssembly(fmt.Sprintf("malformed operand %q in %q", f, line))
		}
		ins.Values = append(ins.Values, v)
	}
	return ins, nil
}

// Size returns the number of bytes a canonical instruction line occupies
// in bytecode. Instructions other than pushes occupy a single byte.
func Size(line string) (int, error) {
	ins, err := ParseInstruction(line)
	if err != nil {
		return 0, err
	}
	runs, isPush, err := PushRuns(ins.Mnemonic, ins.Values)
	if err != nil {
		return 0, err
	}
	if !isPush {
		if len(ins.Values) > 0 {
			return 0, errAssembly(fmt.Sprintf("unexpected operands in %q", line))
		}
		return 1, nil
	}
	size := 0
	for _, r := range runs {
		size += r.Size()
	}
	return size, nil
}
