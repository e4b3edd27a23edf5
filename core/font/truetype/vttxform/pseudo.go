package vttxform

import (
	"github.com/derekparker/trie"
)

// opKind tells how the transformation treats a mnemonic.
type opKind int8

const (
	opInstruction opKind = iota // anything not listed below
	opOverlap
	opUseMyMetrics
	opScaledOffset
	opUnscaledOffset
	opOffset
	opAnchor
	opPushOn
	opPushOff
	opBegin
	opEnd
	opPush
	opDelta // matched by prefix
)

// pseudoOps holds mnemonics with special treatment. Delta instructions
// are entered with the prefix of their family.
var pseudoOps = func() *trie.Trie {
	t := trie.New()
	t.Add("OVERLAP", opOverlap)
	t.Add("USEMYMETRICS", opUseMyMetrics)
	t.Add("SCALEDCOMPONENTOFFSET", opScaledOffset)
	t.Add("UNSCALEDCOMPONENTOFFSET", opUnscaledOffset)
	t.Add("OFFSET", opOffset)
	t.Add("ANCHOR", opAnchor)
	t.Add("#PUSHON", opPushOn)
	t.Add("#PUSHOFF", opPushOff)
	t.Add("#BEGIN", opBegin)
	t.Add("#END", opEnd)
	t.Add("#PUSH", opPush)
	t.Add("DLTP", opDelta)
	t.Add("DLTC", opDelta)
	t.Add("DELTAP", opDelta)
	t.Add("DELTAC", opDelta)
	return t
}()

// classify finds the kind of a mnemonic. Pseudo-ops have to match
// completely, delta instructions by family prefix.
func classify(mnemonic string) opKind {
	for n := len(mnemonic); n > 0; n-- {
		node, ok := pseudoOps.Find(mnemonic[:n])
		if !ok {
			continue
		}
		if k := node.Meta().(opKind); n == len(mnemonic) || k == opDelta {
			return k
		}
	}
	return opInstruction
}
