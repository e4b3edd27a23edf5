package vttxform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/vttc/core/font/truetype/vtt"
)

// deltaBase is the default delta base of TrueType interpreters. VTT's
// DELTAP/DELTAC spellings take absolute ppem sizes, which have to be
// made relative to it.
const deltaBase = 9

// shiftedBase is a predicate: does a delta mnemonic take absolute ppems?
func shiftedBase(mnemonic string) bool {
	return strings.HasPrefix(mnemonic, "DELTAP") || strings.HasPrefix(mnemonic, "DELTAC")
}

// canonicalDelta returns the canonical spelling of a delta mnemonic.
func canonicalDelta(mnemonic string) string {
	if strings.HasPrefix(mnemonic, "DLT") {
		return "DELTA" + mnemonic[3:]
	}
	return mnemonic
}

type ppemStep struct {
	ppem, step int
}

// packDeltas encodes the deltas of a delta instruction into push values,
// in the order they have to be pushed: pairs of (packed value, point)
// followed by the number of deltas.
//
// Deltas are grouped by point, with points ordered by first appearance
// when reading the deltas from last to first. Within a point, deltas are
// sorted by ppem and step, descending.
func packDeltas(mnemonic string, deltas []vtt.Delta) ([]int, error) {
	shift := 0
	if shiftedBase(mnemonic) {
		shift = deltaBase
	}
	groups := linkedhashmap.New()
	for i := len(deltas) - 1; i >= 0; i-- {
		d := deltas[i]
		if d.Step == 0 || d.Step < -8 || d.Step > 8 {
			return nil, fmt.Errorf("delta step out of range: %v", d)
		}
		if ppem := d.PPEM - shift; ppem < 0 || ppem > 15 {
			return nil, fmt.Errorf("delta ppem out of range: %v", d)
		}
		var entries []ppemStep
		if v, found := groups.Get(d.Point); found {
			entries = v.([]ppemStep)
		}
		groups.Put(d.Point, append(entries, ppemStep{d.PPEM, d.Step}))
	}
	// VTT appends to the front of the push buffer, starting with the count
	front := []int{len(deltas)}
	it := groups.Iterator()
	for it.Next() {
		point := it.Key().(int)
		entries := it.Value().([]ppemStep)
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].ppem != entries[j].ppem {
				return entries[i].ppem > entries[j].ppem
			}
			return entries[i].step > entries[j].step
		})
		for _, e := range entries {
			front = append(front, point, (e.ppem-shift)<<4|selector(e.step))
		}
	}
	values := make([]int, len(front))
	for i, v := range front {
		values[len(front)-1-i] = v
	}
	return values, nil
}

// selector maps steps -8…-1 to 0…7 and 1…8 to 8…15.
func selector(step int) int {
	if step > 0 {
		return step + 7
	}
	return step + 8
}

// DecodeDeltas reverses the packing of the push values of a delta
// instruction, i.e. pairs of (packed value, point) followed by the count.
func DecodeDeltas(mnemonic string, values []int) ([]vtt.Delta, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no delta values")
	}
	n := values[len(values)-1]
	pairs := values[:len(values)-1]
	if len(pairs) != 2*n {
		return nil, fmt.Errorf("delta count %d does not match %d values", n, len(pairs))
	}
	shift := 0
	if shiftedBase(mnemonic) {
		shift = deltaBase
	}
	deltas := make([]vtt.Delta, 0, n)
	for i := 0; i < len(pairs); i += 2 {
		packed, point := pairs[i], pairs[i+1]
		sel := packed & 0x0f
		step := sel - 8
		if sel >= 8 {
			step = sel - 7
		}
		deltas = append(deltas, vtt.Delta{Point: point, PPEM: packed>>4 + shift, Step: step})
	}
	return deltas, nil
}
