package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/vttc/core"
	"github.com/npillmayer/vttc/core/font/truetype/ttasm"
	"github.com/npillmayer/vttc/core/font/truetype/vttbuild"
	"github.com/npillmayer/vttc/core/font/truetype/vttcomp"
	"github.com/npillmayer/vttc/core/font/truetype/vttsrc"
	"github.com/npillmayer/vttc/core/font/truetype/vttxform"
	"github.com/pterm/pterm"
)

// CompileCmd translates a VTT program.
type CompileCmd struct {
	Pretty     bool   `help:"Print in disassembly layout, wrapping pushed values."`
	Components bool   `help:"List the composite info of the program."`
	File       string `arg:"" type:"existingfile" help:"VTT program."`
}

func (c *CompileCmd) Run(g *Globals) error {
	program, err := readProgram(c.File)
	if err != nil {
		return err
	}
	r, err := vttxform.Transform(program)
	if err != nil {
		return err
	}
	text := r.Text
	if c.Pretty {
		instrs, err := ttasm.Flatten(text)
		if err != nil {
			return err
		}
		text = strings.TrimSuffix(ttasm.Format(instrs), "\n")
	}
	if text != "" {
		fmt.Fprintln(stdout, text)
	}
	if c.Components {
		for _, comp := range r.Components {
			fmt.Fprintln(stdout, comp)
		}
	}
	return nil
}

// FormatCmd re-formats disassembled TrueType instructions.
type FormatCmd struct {
	File string `arg:"" type:"existingfile" help:"TrueType assembly in disassembly layout."`
}

func (c *FormatCmd) Run(g *Globals) error {
	text, err := readProgram(c.File)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, ttasm.FormatText(text))
	return nil
}

// CheckCmd checks the composite info of a glyph program.
type CheckCmd struct {
	Font  string `required:"" help:"TrueType font file or name of an installed font."`
	Glyph string `required:"" help:"Name of the glyph."`
	File  string `arg:"" type:"existingfile" help:"VTT glyph program."`
}

func (c *CheckCmd) Run(g *Globals) error {
	geom, err := loadGeometry(c.Font)
	if err != nil {
		return err
	}
	program, err := readProgram(c.File)
	if err != nil {
		return err
	}
	comps, err := vttxform.Components(program)
	if err != nil {
		return err
	}
	glyf, err := geom.Components(c.Glyph)
	if err != nil {
		return err
	}
	if err = vttcomp.Validate(c.Glyph, glyf, comps, geom.GlyphOrder()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "glyph '%s': %d components ok\n", c.Glyph, len(comps))
	return nil
}

// CompositesCmd regenerates the composite info of a glyph program.
type CompositesCmd struct {
	Font       string `required:"" help:"TrueType font file or name of an installed font."`
	Glyph      string `required:"" help:"Name of the glyph."`
	VttVersion int    `default:"6" help:"VTT version to write composite info for."`
	Write      bool   `help:"Write the program back to FILE."`
	File       string `arg:"" type:"existingfile" help:"VTT glyph program."`
}

func (c *CompositesCmd) Run(g *Globals) error {
	geom, err := loadGeometry(c.Font)
	if err != nil {
		return err
	}
	program, err := readProgram(c.File)
	if err != nil {
		return err
	}
	glyf, err := geom.Components(c.Glyph)
	if err != nil {
		return err
	}
	if len(glyf) == 0 {
		return core.Error(core.EINVALID, "glyph '%s' is not a composite glyph", c.Glyph)
	}
	program, err = vttcomp.Regenerate(glyf, geom.GlyphOrder(), program, c.VttVersion)
	if err != nil {
		return err
	}
	if !c.Write {
		fmt.Fprint(stdout, program)
		return nil
	}
	if err = os.WriteFile(c.File, []byte(program), 0644); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot write %s", c.File)
	}
	pterm.Info.Printf("updated composite info in %s\n", c.File)
	return nil
}

// CvtCmd lists control values.
type CvtCmd struct {
	File string `arg:"" type:"existingfile" help:"VTT control program."`
}

func (c *CvtCmd) Run(g *Globals) error {
	program, err := readProgram(c.File)
	if err != nil {
		return err
	}
	values, err := vttsrc.ControlValues(program)
	if err != nil {
		return err
	}
	for i, v := range values {
		fmt.Fprintf(stdout, "%d: %d\n", i, v)
	}
	return nil
}

// NormalizeCmd strips generated comments from a VTT program.
type NormalizeCmd struct {
	Glyph   bool   `help:"Glyph program: also strip GUI generated and glyph index comments."`
	Storage bool   `help:"Write in storage form, with CR line ends."`
	File    string `arg:"" type:"existingfile" help:"VTT program."`
}

func (c *NormalizeCmd) Run(g *Globals) error {
	program, err := readProgram(c.File)
	if err != nil {
		return err
	}
	program = vttsrc.Normalize(program, c.Glyph)
	if c.Storage {
		_, err = stdout.Write(vttsrc.Encode(program))
		return err
	}
	fmt.Fprint(stdout, program)
	return nil
}

// BuildCmd compiles the VTT sources of a font.
type BuildCmd struct {
	Font       string `required:"" help:"TrueType font file or name of an installed font."`
	Out        string `type:"path" help:"Directory to write compiled programs to."`
	Workers    int    `default:"4" help:"Number of glyph programs compiled in parallel."`
	Regenerate bool   `help:"Regenerate composite info which does not match the font."`
	VttVersion int    `default:"6" help:"VTT version to write regenerated composite info for."`
	Require    string `default:"fpgm" help:"Comma separated list of programs which must not be empty."`
	Dir        string `arg:"" type:"existingdir" help:"Directory with cvt.vtt, ppgm.vtt, fpgm.vtt and glyphs/*.vtt."`
}

func (c *BuildCmd) Run(g *Globals) error {
	geom, err := loadGeometry(c.Font)
	if err != nil {
		return err
	}
	src, err := vttbuild.LoadSources(os.DirFS(c.Dir))
	if err != nil {
		return err
	}
	conf := testconfig.Conf{
		"vtt.workers":    c.Workers,
		"vtt.version":    c.VttVersion,
		"vtt.regenerate": c.Regenerate,
		"vtt.require":    c.Require,
	}
	out, err := vttbuild.Compile(context.Background(), src, geom, vttbuild.OptionsFromConfig(conf))
	if err != nil {
		return err
	}
	for _, f := range out.Failures {
		printError(f)
	}
	for name := range out.Regenerated {
		pterm.Info.Printf("regenerated composite info of glyph '%s'\n", name)
	}
	pterm.Info.Printf("%d control values, %d programs, %d glyph programs, %d failures\n",
		len(out.ControlValues), len(out.Programs), len(out.Glyphs), len(out.Failures))
	if c.Out == "" {
		return nil
	}
	return writeOutput(c.Out, out)
}

// writeOutput writes compiled programs as text files: "prep.tt", "fpgm.tt"
// and "glyphs/NAME.tt".
func writeOutput(dir string, out *vttbuild.Output) error {
	if err := os.MkdirAll(filepath.Join(dir, "glyphs"), 0755); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", dir)
	}
	write := func(name, text string) error {
		if text != "" {
			text += "\n"
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0644); err != nil {
			return core.WrapError(err, core.EINVALID, "cannot write %s", name)
		}
		return nil
	}
	for tag, text := range out.Programs {
		if err := write(tag+".tt", text); err != nil {
			return err
		}
	}
	for name, r := range out.Glyphs {
		if err := write(filepath.Join("glyphs", name+".tt"), r.Text); err != nil {
			return err
		}
	}
	return nil
}
