package ttasm

// Program is a TrueType bytecode program.
type Program []byte

// Assembler translates canonical assembly text into bytecode.
// Unknown mnemonics are reported as errors.
type Assembler interface {
	Assemble(canonical string) (Program, error)
}

// Disassembler translates bytecode into a list of instructions. Push
// instructions are followed by one entry per value pushed. If preserve
// is set, push instructions are not re-coalesced.
type Disassembler interface {
	Disassemble(program Program, preserve bool) ([]string, error)
}

// PrettyPrint disassembles a program and formats it for humans.
func PrettyPrint(d Disassembler, program Program) (string, error) {
	list, err := d.Disassemble(program, true)
	if err != nil {
		return "", err
	}
	return Format(list), nil
}
