// Package config loads writer options from TOML, YAML or JSON files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/rgonek/cmark-writer/cmark"
	"github.com/rgonek/cmark-writer/htmlrender"
	"gopkg.in/yaml.v3"
)

// Format identifies an options file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File mirrors cmark.Options with file-friendly types. Unset fields leave the
// base options untouched when applied.
type File struct {
	Mode                            string    `toml:"mode" yaml:"mode"`
	HardBreakStyle                  string    `toml:"hard_break_style" yaml:"hard_break_style"`
	IndentSpaces                    int       `toml:"indent_spaces" yaml:"indent_spaces"`
	BulletMarker                    string    `toml:"bullet_marker" yaml:"bullet_marker"`
	ThematicBreakChar               string    `toml:"thematic_break_char" yaml:"thematic_break_char"`
	EmphasisChar                    string    `toml:"emphasis_char" yaml:"emphasis_char"`
	StrongChar                      string    `toml:"strong_char" yaml:"strong_char"`
	Escaping                        string    `toml:"escaping" yaml:"escaping"`
	TrimParagraphTrailingHardBreaks *bool     `toml:"trim_paragraph_trailing_hard_breaks" yaml:"trim_paragraph_trailing_hard_breaks"`
	TablePadding                    *bool     `toml:"table_padding" yaml:"table_padding"`
	MaxDepth                        int       `toml:"max_depth" yaml:"max_depth"`
	GFM                             GFMFile   `toml:"gfm" yaml:"gfm"`
	HTML                            *HTMLFile `toml:"html" yaml:"html"`
}

// GFMFile holds the extension toggles.
type GFMFile struct {
	Enabled            *bool    `toml:"enabled" yaml:"enabled"`
	Strikethrough      *bool    `toml:"strikethrough" yaml:"strikethrough"`
	TaskLists          *bool    `toml:"task_lists" yaml:"task_lists"`
	Tables             *bool    `toml:"tables" yaml:"tables"`
	Autolinks          *bool    `toml:"autolinks" yaml:"autolinks"`
	DisallowedHTMLTags []string `toml:"disallowed_html_tags" yaml:"disallowed_html_tags"`
}

// HTMLFile overrides the HTML fallback renderer configuration.
type HTMLFile struct {
	Mode                         string   `toml:"mode" yaml:"mode"`
	CodeBlockLanguageClassPrefix string   `toml:"code_block_language_class_prefix" yaml:"code_block_language_class_prefix"`
	GFM                          bool     `toml:"gfm" yaml:"gfm"`
	DisallowedTags               []string `toml:"disallowed_tags" yaml:"disallowed_tags"`
	MaxDepth                     int      `toml:"max_depth" yaml:"max_depth"`
}

// FormatFromPath picks the file format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported options file extension %q (allowed: .toml, .yaml, .yml, .json)", filepath.Ext(path))
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return File{}, fmt.Errorf("failed to parse TOML options: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return File{}, fmt.Errorf("unknown option %q", undecoded[0].String())
		}
	case FormatYAML, FormatJSON:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("failed to parse %s options: %w", strings.ToUpper(string(format)), err)
		}
	default:
		return File{}, fmt.Errorf("unsupported options format %q", format)
	}
	return f, nil
}

// Load reads the options file at path and applies it to base.
func Load(path string, base cmark.Options) (cmark.Options, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return cmark.Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cmark.Options{}, fmt.Errorf("failed to read options file: %w", err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return cmark.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return f.Apply(base)
}

// Apply overlays the fields set in f onto base.
func (f File) Apply(base cmark.Options) (cmark.Options, error) {
	opts := base
	if f.Mode != "" {
		opts.Mode = cmark.Mode(f.Mode)
	}
	if f.HardBreakStyle != "" {
		opts.HardBreakStyle = cmark.HardBreakStyle(f.HardBreakStyle)
	}
	if f.IndentSpaces != 0 {
		opts.IndentSpaces = f.IndentSpaces
	}
	if f.Escaping != "" {
		opts.Escaping = cmark.EscapeMode(f.Escaping)
	}
	if f.MaxDepth != 0 {
		opts.MaxDepth = f.MaxDepth
	}
	setBool(&opts.TrimParagraphTrailingHardBreaks, f.TrimParagraphTrailingHardBreaks)
	setBool(&opts.TablePadding, f.TablePadding)

	chars := []struct {
		name  string
		value string
		dst   *rune
	}{
		{"bullet_marker", f.BulletMarker, &opts.BulletMarker},
		{"thematic_break_char", f.ThematicBreakChar, &opts.ThematicBreakChar},
		{"emphasis_char", f.EmphasisChar, &opts.EmphasisChar},
		{"strong_char", f.StrongChar, &opts.StrongChar},
	}
	for _, c := range chars {
		if c.value == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(c.value)
		if size != len(c.value) {
			return cmark.Options{}, fmt.Errorf("%s must be a single character, got %q", c.name, c.value)
		}
		*c.dst = r
	}

	setBool(&opts.GFM.Enabled, f.GFM.Enabled)
	setBool(&opts.GFM.Strikethrough, f.GFM.Strikethrough)
	setBool(&opts.GFM.TaskLists, f.GFM.TaskLists)
	setBool(&opts.GFM.Tables, f.GFM.Tables)
	setBool(&opts.GFM.Autolinks, f.GFM.Autolinks)
	if f.GFM.DisallowedHTMLTags != nil {
		opts.GFM.DisallowedHTMLTags = append([]string(nil), f.GFM.DisallowedHTMLTags...)
	}

	if f.HTML != nil {
		opts.HTML = &htmlrender.Options{
			Mode:                         htmlrender.Mode(f.HTML.Mode),
			CodeBlockLanguageClassPrefix: f.HTML.CodeBlockLanguageClassPrefix,
			GFM:                          f.HTML.GFM,
			DisallowedTags:               f.HTML.DisallowedTags,
			MaxDepth:                     f.HTML.MaxDepth,
		}
	}

	if _, err := cmark.New(opts); err != nil {
		return cmark.Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
