package main

import (
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/cmark"
	"github.com/rgonek/cmark-writer/internal/config"
)

const (
	presetCommonMark = "commonmark"
	presetGFM        = "gfm"
	presetLenient    = "lenient"
	presetStrict     = "strict"
)

func presetOptions(preset string) (cmark.Options, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetCommonMark:
		return cmark.Options{}, nil
	case presetGFM:
		return cmark.EnableGFM(cmark.Options{}), nil
	case presetLenient:
		opts := cmark.EnableGFM(cmark.Options{Mode: cmark.ModeLenient})
		opts.TrimParagraphTrailingHardBreaks = true
		return opts, nil
	case presetStrict:
		opts := cmark.EnableGFM(cmark.Options{Mode: cmark.ModeStrict})
		opts.TablePadding = true
		return opts, nil
	default:
		return cmark.Options{}, fmt.Errorf("unknown preset %q (allowed: commonmark, gfm, lenient, strict)", preset)
	}
}

// resolveOptions applies the preset, then the options file, then the flags.
func resolveOptions(f rootFlags) (cmark.Options, error) {
	if f.strict && f.lenient {
		return cmark.Options{}, fmt.Errorf("--strict and --lenient are mutually exclusive")
	}

	opts, err := presetOptions(f.preset)
	if err != nil {
		return cmark.Options{}, err
	}
	if f.config != "" {
		if opts, err = config.Load(f.config, opts); err != nil {
			return cmark.Options{}, err
		}
	}

	if f.gfm {
		opts = cmark.EnableGFM(opts)
	}
	if f.strict {
		opts.Mode = cmark.ModeStrict
	}
	if f.lenient {
		opts.Mode = cmark.ModeLenient
	}
	return opts, nil
}
