package vttsrc

import (
	"regexp"
	"strconv"

	"github.com/npillmayer/vttc/core"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	controlValue = regexp.MustCompile(`(?m)^\s*([0-9]+):\s*(-?[0-9]+)`)
)

// maxControlValues limits the size of a control value table, which is
// addressed by 16-bit indices.
const maxControlValues = 1 << 16

// ControlValues reads the control value table from VTT's control program,
// which lists values as lines of "INDEX: VALUE". Anything else, including
// comments, is ignored. Indices not mentioned get value 0.
func ControlValues(program string) ([]int16, error) {
	program = blockComment.ReplaceAllString(program, "")
	var values []int16
	for _, m := range controlValue.FindAllStringSubmatch(program, -1) {
		index, err := strconv.Atoi(m[1])
		if err != nil || index >= maxControlValues {
			return nil, core.Error(core.EINVALID, "control value index out of range: %s", m[1])
		}
		value, err := strconv.ParseInt(m[2], 10, 16)
		if err != nil {
			return nil, core.Error(core.EINVALID, "control value %d out of range: %s", index, m[2])
		}
		for len(values) <= index {
			values = append(values, 0)
		}
		values[index] = int16(value)
	}
	tracer().Debugf("control program defines %d control values", len(values))
	return values, nil
}
