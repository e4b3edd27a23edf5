package vttxform

import (
	"strconv"
	"strings"

	"github.com/npillmayer/vttc/core/font/truetype/ttasm"
	"github.com/npillmayer/vttc/core/font/truetype/vtt"
)

// binding is a jump variable bound to a label at a stream position.
type binding struct {
	label string
	at    int
	token vtt.Token
}

// resolve produces the output lines, replacing jump variables by offsets.
func (e *engine) resolve() ([]string, error) {
	vars := make(map[string]binding)
	for i, en := range e.stream {
		for _, b := range en.bindings {
			if _, dup := vars[b.Var]; dup {
				return nil, errStructure(en.token, "variable %s bound twice", b.Var)
			}
			if _, ok := e.labels[b.Label]; !ok {
				return nil, errStructure(en.token, "undefined label #%s", b.Label)
			}
			vars[b.Var] = binding{label: b.Label, at: i, token: en.token}
		}
	}
	// measure the stream with variables set to 0; variables are pushed as
	// words, so sizes do not depend on their values
	zero := func(string) int { return 0 }
	addr := make([]int, len(e.stream)+1)
	for i, en := range e.stream {
		lines, err := en.lines(zero, vars)
		if err != nil {
			return nil, err
		}
		size := 0
		for _, l := range lines {
			n, err := ttasm.Size(l)
			if err != nil {
				return nil, errStructure(en.token, "%v", err)
			}
			size += n
		}
		addr[i+1] = addr[i] + size
	}
	offsets := make(map[string]int, len(vars))
	for v, b := range vars {
		offset := addr[e.labels[b.label]] - addr[b.at]
		if offset < -32768 || offset > 32767 {
			return nil, errStructure(b.token, "jump to #%s too far", b.label)
		}
		offsets[v] = offset
		tracer().Debugf("jump variable %s = %d", v, offset)
	}
	value := func(name string) int { return offsets[name] }
	var out []string
	for _, en := range e.stream {
		lines, err := en.lines(value, vars)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

// lines renders an entry. An explicit push is split into runs of literals,
// pushed with PUSH[], and runs of variables, pushed with PUSHW[].
func (en *entry) lines(value func(string) int, vars map[string]binding) ([]string, error) {
	if en.push == nil {
		if en.text == "" {
			return nil, nil
		}
		return []string{en.text}, nil
	}
	var lines []string
	var run []string
	words := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		mnemonic := "PUSH[] "
		if words {
			mnemonic = "PUSHW[] "
		}
		lines = append(lines, mnemonic+strings.Join(run, " "))
		run = run[:0]
	}
	for _, item := range en.push {
		isVar := item.Kind == vtt.Variable
		if isVar != words {
			flush()
			words = isVar
		}
		if !isVar {
			run = append(run, strconv.Itoa(item.Value))
			continue
		}
		if _, ok := vars[item.Name]; !ok {
			return nil, errStructure(en.token, "variable %s is not bound to a label", item.Name)
		}
		run = append(run, strconv.Itoa(value(item.Name)))
	}
	flush()
	return lines, nil
}
