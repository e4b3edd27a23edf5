package vttbuild

import (
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/vttc/core/font/truetype/vttcomp"
)

// Options control a batch compilation.
type Options struct {
	Workers    int      // number of glyph programs compiled in parallel
	Version    int      // VTT version to write regenerated composite info for
	Regenerate bool     // regenerate composite info which does not match the font
	Require    []string // programs which must not compile to nothing
}

// Option is a type to influence a batch compilation.
// Multiple options may be passed to Compile(…).
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Workers: 4,
		Version: vttcomp.ScaledOffsetVersion,
		Require: []string{"fpgm"},
	}
}

// Workers sets the number of glyph programs compiled in parallel.
// Values smaller than 1 are ignored.
func Workers(n int) Option {
	return func(opts *Options) {
		if n > 0 {
			opts.Workers = n
		}
	}
}

// DialectVersion sets the VTT version regenerated composite info is written for.
func DialectVersion(v int) Option {
	return func(opts *Options) {
		opts.Version = v
	}
}

// Regenerate enables regenerating composite info which does not match
// the font, followed by a second compilation of the glyph.
func Regenerate(regenerate bool) Option {
	return func(opts *Options) {
		opts.Regenerate = regenerate
	}
}

// Require sets the programs which must not compile to nothing. Names are
// tags of extra programs ("prep", "fpgm") or glyph names.
func Require(names ...string) Option {
	return func(opts *Options) {
		opts.Require = names
	}
}

// OptionsFromConfig reads options from an application configuration.
// Keys are
//
//	vtt.workers     number of parallel glyph compilations
//	vtt.version     VTT version for regenerated composite info
//	vtt.regenerate  regenerate mismatching composite info (bool)
//	vtt.require     comma separated list of programs which must not be empty
//
// Keys not set leave the default untouched.
func OptionsFromConfig(conf schuko.Configuration) Option {
	return func(opts *Options) {
		if conf.IsSet("vtt.workers") {
			Workers(conf.GetInt("vtt.workers"))(opts)
		}
		if conf.IsSet("vtt.version") {
			opts.Version = conf.GetInt("vtt.version")
		}
		if conf.IsSet("vtt.regenerate") {
			opts.Regenerate = conf.GetBool("vtt.regenerate")
		}
		if conf.IsSet("vtt.require") {
			opts.Require = nil
			for _, name := range strings.Split(conf.GetString("vtt.require"), ",") {
				if name = strings.TrimSpace(name); name != "" {
					opts.Require = append(opts.Require, name)
				}
			}
		}
	}
}

func (opts *Options) required(name string) bool {
	for _, r := range opts.Require {
		if r == name {
			return true
		}
	}
	return false
}
