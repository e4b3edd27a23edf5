package vttxform

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/vttc/core/font/truetype/vtt"
	"github.com/npillmayer/vttc/core/font/truetype/vttcomp"
)

// Result is the outcome of transforming a VTT program.
type Result struct {
	Text       string              // canonical assembly, one instruction per line
	Components []vttcomp.Component // composite info, in source order
}

// Empty is a predicate: did the program transform to nothing?
func (r *Result) Empty() bool {
	return r.Text == ""
}

// Lines returns the canonical instructions.
func (r *Result) Lines() []string {
	if r.Text == "" {
		return nil
	}
	return strings.Split(r.Text, "\n")
}

// Transform parses a VTT program and transforms it into canonical assembly.
// Syntax errors are reported as *vtt.ParseError, violations of structural
// rules as *StructuralError.
func Transform(src string) (*Result, error) {
	tokens, err := vtt.Parse(src)
	if err != nil {
		return nil, err
	}
	return TransformTokens(tokens)
}

// TransformTokens transforms a sequence of VTT tokens into canonical assembly.
func TransformTokens(tokens []vtt.Token) (*Result, error) {
	e := newEngine()
	for _, t := range tokens {
		if err := e.step(t); err != nil {
			return nil, err
		}
	}
	lines, err := e.finish()
	if err != nil {
		return nil, err
	}
	return &Result{Text: strings.Join(lines, "\n"), Components: e.components}, nil
}

// Components extracts the composite info of a VTT glyph program.
func Components(src string) ([]vttcomp.Component, error) {
	r, err := Transform(src)
	if err != nil {
		return nil, err
	}
	return r.Components, nil
}

// --- Engine ----------------------------------------------------------------

// entry is an element of the output stream. It is either a canonical
// instruction, a push scope not yet closed, or an explicit push referring
// to jump variables.
type entry struct {
	text     string
	scope    *doublylinkedlist.List // pending push values, front first
	push     []vtt.StackItem        // explicit push with variables
	bindings []vtt.Binding
	token    vtt.Token
}

// pendingFlags are the flags collected for the next component.
type pendingFlags struct {
	useMyMetrics bool
	scaling      vttcomp.Scaling
}

// engine holds the state of one transformation.
type engine struct {
	pushOn     bool
	scopes     *arraystack.Stack // stream positions of open scopes
	stream     []*entry
	labels     map[string]int // label → stream position
	pending    pendingFlags
	components []vttcomp.Component
}

func newEngine() *engine {
	e := &engine{
		pushOn: true,
		scopes: arraystack.New(),
		labels: make(map[string]int),
	}
	e.openScope(vtt.Token{})
	return e
}

func (e *engine) step(t vtt.Token) error {
	if t.Kind == vtt.LabelDef {
		return e.defineLabel(t)
	}
	kind := classify(t.Mnemonic)
	if len(t.Bindings) > 0 && kind != opInstruction && kind != opAnchor && kind != opDelta {
		return errStructure(t, "jump variables may be bound to instructions only")
	}
	switch kind {
	case opOverlap:
		return nil
	case opUseMyMetrics:
		e.pending.useMyMetrics = true
		return nil
	case opScaledOffset:
		e.pending.scaling = vttcomp.Scaled
		return nil
	case opUnscaledOffset:
		e.pending.scaling = vttcomp.Unscaled
		return nil
	case opOffset:
		args, err := componentArgs(t)
		if err != nil {
			return err
		}
		e.components = append(e.components, vttcomp.OffsetComponent{
			Index:        args[0],
			X:            args[1],
			Y:            args[2],
			RoundToGrid:  t.Flags == "1",
			UseMyMetrics: e.pending.useMyMetrics,
			Scaling:      e.pending.scaling,
		})
		e.pending = pendingFlags{}
		return nil
	case opAnchor:
		args, err := componentArgs(t)
		if err != nil {
			return err
		}
		e.components = append(e.components, vttcomp.AnchorComponent{
			Index:        args[0],
			First:        args[1],
			Second:       args[2],
			UseMyMetrics: e.pending.useMyMetrics,
			Scaling:      e.pending.scaling,
		})
		e.pending = pendingFlags{}
		// operands are composite info, not stack values
		e.stream = append(e.stream, &entry{text: t.Canonical(), bindings: t.Bindings, token: t})
		return nil
	case opPushOn:
		e.pushOn = true
		return nil
	case opPushOff:
		e.pushOn = false
		return nil
	case opBegin:
		e.openScope(t)
		return nil
	case opEnd:
		if e.scopes.Size() <= 1 {
			return errStructure(t, "#END without #BEGIN")
		}
		e.closeScope()
		return nil
	case opPush:
		return e.explicitPush(t)
	case opDelta:
		return e.delta(t)
	}
	return e.emit(t)
}

// componentArgs returns the three integer operands of OFFSET and ANCHOR.
func componentArgs(t vtt.Token) ([]int, error) {
	if len(t.Stack) != 3 {
		return nil, errStructure(t, "expected 3 operands, have %d", len(t.Stack))
	}
	args := make([]int, 3)
	for i, item := range t.Stack {
		if item.Kind != vtt.Literal {
			return nil, errStructure(t, "operand %q must be an integer", item)
		}
		args[i] = item.Value
	}
	return args, nil
}

func (e *engine) defineLabel(t vtt.Token) error {
	name := strings.TrimPrefix(t.Mnemonic, "#")
	if _, dup := e.labels[name]; dup {
		return errStructure(t, "label defined twice")
	}
	e.labels[name] = len(e.stream)
	return nil
}

// --- Push scopes -----------------------------------------------------------

func (e *engine) openScope(t vtt.Token) {
	e.scopes.Push(len(e.stream))
	e.stream = append(e.stream, &entry{scope: doublylinkedlist.New(), token: t})
	tracer().Debugf("open push scope #%d at %d", e.scopes.Size()-1, len(e.stream)-1)
}

// closeScope pops the innermost scope and flattens its pending values into
// a single PUSH at the position the scope was opened.
func (e *engine) closeScope() {
	top, _ := e.scopes.Pop()
	en := e.stream[top.(int)]
	if en.scope.Size() > 0 {
		values := make([]string, 0, en.scope.Size())
		for _, v := range en.scope.Values() {
			values = append(values, strconv.Itoa(v.(int)))
		}
		en.text = "PUSH[] " + strings.Join(values, " ")
	}
	tracer().Debugf("close push scope at %d with %d values", top.(int), en.scope.Size())
	en.scope = nil
}

// pushFront prepends values to the pending values of the innermost scope.
func (e *engine) pushFront(values []int) {
	if len(values) == 0 {
		return
	}
	top, _ := e.scopes.Peek()
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	e.stream[top.(int)].scope.Prepend(vals...)
}

// --- Instructions ----------------------------------------------------------

// emit appends an instruction to the output stream. If operand collection
// is on, its operands go to the innermost scope; wildcard operands are
// already on the stack and are skipped.
func (e *engine) emit(t vtt.Token) error {
	if len(t.Stack) > 0 {
		if !e.pushOn {
			return errStructure(t, "operands not allowed with #PUSHOFF")
		}
		values := make([]int, 0, len(t.Stack))
		for _, item := range t.Stack {
			switch item.Kind {
			case vtt.Wildcard:
				continue
			case vtt.Variable:
				return errStructure(t, "jump variable %s may only be used with #PUSH", item.Name)
			}
			values = append(values, item.Value)
		}
		e.pushFront(values)
	}
	e.stream = append(e.stream, &entry{text: t.Canonical(), bindings: t.Bindings, token: t})
	return nil
}

// explicitPush handles #PUSH, which pushes in place, regardless of #PUSHOFF.
func (e *engine) explicitPush(t vtt.Token) error {
	if len(t.Stack) == 0 {
		return errStructure(t, "no values to push")
	}
	symbolic := false
	values := make([]string, 0, len(t.Stack))
	for _, item := range t.Stack {
		switch item.Kind {
		case vtt.Wildcard:
			return errStructure(t, "cannot push wildcard")
		case vtt.Variable:
			symbolic = true
		}
		values = append(values, item.String())
	}
	en := &entry{token: t}
	if symbolic {
		en.push = t.Stack
	} else {
		en.text = "PUSH[] " + strings.Join(values, " ")
	}
	e.stream = append(e.stream, en)
	return nil
}

// delta packs the deltas of a delta instruction into the innermost scope
// and emits the instruction in canonical spelling.
func (e *engine) delta(t vtt.Token) error {
	if !e.pushOn {
		return errStructure(t, "delta instructions require #PUSHON")
	}
	if len(t.Deltas) == 0 {
		return errStructure(t, "delta instruction without deltas")
	}
	if len(t.Stack) > 0 {
		return errStructure(t, "delta instruction with operands")
	}
	values, err := packDeltas(t.Mnemonic, t.Deltas)
	if err != nil {
		return errStructure(t, "%v", err)
	}
	tracer().Debugf("%s: packed %d deltas", t.Mnemonic, len(t.Deltas))
	e.pushFront(values)
	e.stream = append(e.stream, &entry{
		text:     canonicalDelta(t.Mnemonic) + "[" + t.Flags + "]",
		bindings: t.Bindings,
		token:    t,
	})
	return nil
}

// finish checks scope balance, flattens the root scope and resolves jump
// variables.
func (e *engine) finish() ([]string, error) {
	if e.scopes.Size() != 1 {
		top, _ := e.scopes.Peek()
		return nil, errStructure(e.stream[top.(int)].token, "#BEGIN without #END")
	}
	e.closeScope()
	return e.resolve()
}
