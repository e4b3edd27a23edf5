package ttasm

import (
	"regexp"
	"strconv"
	"strings"
)

// valuesPerLine is the maximum number of push values on an output line.
const valuesPerLine = 25

// pushCountPattern recognizes push instructions in disassembled form,
// capturing the number of values pushed.
var pushCountPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*\s*\[.*?\]\s*/\* ([0-9]+).*?\*/`)

// Flatten converts canonical assembly text into a list of instructions
// in the form a disassembler produces: each push instruction is split
// into push runs, every run is followed by one entry per value.
func Flatten(canonical string) ([]string, error) {
	var list []string
	for _, line := range splitLines(canonical) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, err
		}
		runs, isPush, err := PushRuns(ins.Mnemonic, ins.Values)
		if err != nil {
			return nil, err
		}
		if !isPush {
			list = append(list, ins.Mnemonic+"["+ins.Flags+"]")
			continue
		}
		for _, r := range runs {
			list = append(list, r.Header())
			for _, v := range r.Values {
				list = append(list, strconv.Itoa(v))
			}
		}
	}
	return list, nil
}

// Format lays out a list of disassembled instructions as text, one
// instruction per line. The values following a push instruction are
// wrapped into lines of at most 25 values.
//
// Values are counted by fields, not by list entries, so an entry may
// already hold several values. This makes Format idempotent on the lines
// of its own output.
func Format(instructions []string) string {
	var b strings.Builder
	for i := 0; i < len(instructions); i++ {
		instr := instructions[i]
		b.WriteString(instr)
		b.WriteByte('\n')
		m := pushCountPattern.FindStringSubmatch(instr)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		var values []string
		j := i + 1
		for ; j < len(instructions) && len(values) < n; j++ {
			fields := strings.Fields(instructions[j])
			if !allIntegers(fields) {
				break
			}
			values = append(values, fields...)
		}
		if len(values) < n {
			tracer().Errorf("push instruction %q is short of values: %d", instr, len(values))
		}
		for k := 0; k < len(values); k += valuesPerLine {
			end := k + valuesPerLine
			if end > len(values) {
				end = len(values)
			}
			b.WriteString(strings.Join(values[k:end], " "))
			b.WriteByte('\n')
		}
		i = j - 1
	}
	return b.String()
}

// FormatText re-formats disassembled text, see Format.
// Both LF and CR/LF line endings are accepted.
func FormatText(text string) string {
	var list []string
	for _, line := range splitLines(text) {
		if line = strings.TrimSpace(line); line != "" {
			list = append(list, line)
		}
	}
	return Format(list)
}

func allIntegers(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
