package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/vttc/core/font/truetype/tt"
	"github.com/npillmayer/vttc/core/font/truetype/ttasm"
	"github.com/npillmayer/vttc/core/font/truetype/vtt"
	"github.com/npillmayer/vttc/core/font/truetype/vttcomp"
	"github.com/npillmayer/vttc/core/font/truetype/vttxform"
	"github.com/pterm/pterm"
)

// ReplCmd starts interactive mode.
type ReplCmd struct {
	Font string `help:"TrueType font file or name of an installed font."`
}

func (c *ReplCmd) Run(g *Globals) error {
	repl, err := readline.New("vtt > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{repl: repl}
	if c.Font != "" {
		if intp.geom, err = loadGeometry(c.Font); err != nil {
			return err
		}
		pterm.Info.Printf("font has %d glyphs\n", intp.geom.GlyphOrder().Len())
	}
	pterm.Info.Println("Welcome to VTT CLI")
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// Intp is our interpreter object. It collects VTT instructions, line by
// line, and shows the translation of the program collected so far.
type Intp struct {
	repl   *readline.Instance
	geom   *tt.Geometry // optional, for checking composite info
	lines  []string
	pretty bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute handles one line of input. Lines starting with a colon are
// commands, all other lines are appended to the program. The program may
// be incomplete, e.g., have an open #BEGIN, in which case the error is
// shown instead of the translation.
func (intp *Intp) execute(line string) (quit bool) {
	switch line {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		help()
		return false
	case ":reset":
		intp.lines = intp.lines[:0]
		return false
	case ":pretty":
		intp.pretty = !intp.pretty
	case ":undo":
		if len(intp.lines) > 0 {
			intp.lines = intp.lines[:len(intp.lines)-1]
		}
	case ":show":
	default:
		if glyph := strings.TrimPrefix(line, ":check "); glyph != line {
			intp.check(strings.TrimSpace(glyph))
			return false
		}
		if strings.HasPrefix(line, ":") {
			pterm.Error.Printf("unknown command %s\n", line)
			return false
		}
		if _, err := vtt.Parse(line); err != nil { // syntax errors are not accepted
			printError(err)
			return false
		}
		intp.lines = append(intp.lines, line)
	}
	out, err := intp.translate()
	if err != nil {
		printError(err)
		return false
	}
	fmt.Fprintln(stdout, out)
	return false
}

func (intp *Intp) program() string {
	return strings.Join(intp.lines, "\n")
}

// translate translates the program collected so far.
func (intp *Intp) translate() (string, error) {
	r, err := vttxform.Transform(intp.program())
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(r.Text)
	if intp.pretty && r.Text != "" {
		instrs, err := ttasm.Flatten(r.Text)
		if err != nil {
			return "", err
		}
		b.Reset()
		b.WriteString(strings.TrimSuffix(ttasm.Format(instrs), "\n"))
	}
	for _, comp := range r.Components {
		fmt.Fprintf(&b, "\n%s", comp)
	}
	return b.String(), nil
}

// check validates the composite info of the program against a glyph.
func (intp *Intp) check(glyph string) {
	if intp.geom == nil {
		pterm.Error.Println("no font loaded; use flag --font")
		return
	}
	comps, err := vttxform.Components(intp.program())
	if err != nil {
		printError(err)
		return
	}
	glyf, err := intp.geom.Components(glyph)
	if err == nil {
		err = vttcomp.Validate(glyph, glyf, comps, intp.geom.GlyphOrder())
	}
	if err != nil {
		printError(err)
		return
	}
	pterm.Info.Printf("composite info matches glyph '%s'\n", glyph)
}

func help() {
	pterm.Info.Println(`Enter VTT instructions, one per line. The translation
of the program entered so far is shown after each line.

:show     show the translation again
:pretty   toggle disassembly layout
:undo     remove the last line
:reset    start a new program
:check G  check composite info against glyph G of the font
:quit     leave interactive mode`)
}
