/*
Command vttcli is the command line tool for translating VTT hinting sources.

Usage:

	vttcli compile [--pretty] [--components] FILE
	vttcli format FILE
	vttcli check --font FONT --glyph NAME FILE
	vttcli composites --font FONT --glyph NAME [--vtt-version N] [--write] FILE
	vttcli cvt FILE
	vttcli normalize [--glyph] [--storage] FILE
	vttcli build --font FONT [--out DIR] [--workers N] [--regenerate] DIR
	vttcli repl [--font FONT]

FONT is either a path to a TrueType font file or the name of an installed
font. Use flag --trace to set the trace level.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/vttc/core"
	"github.com/pterm/pterm"
)

// tracer traces with key 'vttc.hinting'
func tracer() tracing.Trace {
	return tracing.Select("vttc.hinting")
}

// stdout receives the output of commands.
var stdout io.Writer = os.Stdout

// Globals are flags common to all commands.
type Globals struct {
	Trace string `help:"Trace level [Debug|Info|Error]" enum:"Debug,Info,Error" default:"Error"`
}

var cli struct {
	Globals

	Compile    CompileCmd    `cmd:"" help:"Translate a VTT program to TrueType assembly."`
	Format     FormatCmd     `cmd:"" help:"Pretty-print TrueType assembly."`
	Check      CheckCmd      `cmd:"" help:"Check the composite info of a glyph program against a font."`
	Composites CompositesCmd `cmd:"" help:"Regenerate the composite info of a glyph program from a font."`
	Cvt        CvtCmd        `cmd:"" help:"List the control values of a control program."`
	Normalize  NormalizeCmd  `cmd:"" help:"Strip generated comments from a VTT program."`
	Build      BuildCmd      `cmd:"" help:"Compile the VTT sources of a font."`
	Repl       ReplCmd       `cmd:"" help:"Translate VTT instructions interactively."`
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.vttc.hinting": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	ctx := kong.Parse(&cli,
		kong.Name("vttcli"),
		kong.Description("Translate VTT hinting sources to TrueType assembly."),
		kong.UsageOnError(),
	)
	tracer().SetTraceLevel(tracing.TraceLevelFromString(cli.Trace))
	if err := ctx.Run(&cli.Globals); err != nil {
		printError(err)
		os.Exit(2)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printError displays an error together with its error code. Syntax errors
// come with a pointer to the error position.
func printError(err error) {
	pterm.Error.Printf("[%d] %s\n", core.Code(err), core.UserMessage(err))
}
