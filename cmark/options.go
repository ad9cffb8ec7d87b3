package cmark

import (
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/htmlrender"
	"go.uber.org/zap"
)

// Mode controls how structural violations are handled.
type Mode string

const (
	// ModeStrict aborts rendering on the first violation.
	ModeStrict Mode = "strict"
	// ModeLenient recovers locally and records a Warning.
	ModeLenient Mode = "lenient"
)

// HardBreakStyle controls how hard line breaks are rendered.
type HardBreakStyle string

const (
	HardBreakBackslash HardBreakStyle = "backslash"
	HardBreakSpaces    HardBreakStyle = "spaces"
)

// EscapeMode controls escaping of reserved punctuation in text.
type EscapeMode string

const (
	EscapeSpecial EscapeMode = "special"
	EscapeNone    EscapeMode = "none"
)

const (
	defaultIndentSpaces = 4
	defaultMaxDepth     = 256
)

// GFMOptions toggles GitHub-flavored extensions. Any enabled feature implies
// Enabled.
type GFMOptions struct {
	Enabled            bool     `json:"enabled,omitempty"`
	Strikethrough      bool     `json:"strikethrough,omitempty"`
	TaskLists          bool     `json:"taskLists,omitempty"`
	Tables             bool     `json:"tables,omitempty"`
	Autolinks          bool     `json:"autolinks,omitempty"`
	DisallowedHTMLTags []string `json:"disallowedHTMLTags,omitempty"`
}

// Options holds all writer configuration. The zero value renders strict
// CommonMark.
type Options struct {
	Mode                            Mode                `json:"mode,omitempty"`
	HardBreakStyle                  HardBreakStyle      `json:"hardBreakStyle,omitempty"`
	IndentSpaces                    int                 `json:"indentSpaces,omitempty"`
	BulletMarker                    rune                `json:"bulletMarker,omitempty"`
	ThematicBreakChar               rune                `json:"thematicBreakChar,omitempty"`
	EmphasisChar                    rune                `json:"emphasisChar,omitempty"`
	StrongChar                      rune                `json:"strongChar,omitempty"`
	Escaping                        EscapeMode          `json:"escaping,omitempty"`
	TrimParagraphTrailingHardBreaks bool                `json:"trimParagraphTrailingHardBreaks,omitempty"`
	TablePadding                    bool                `json:"tablePadding,omitempty"`
	GFM                             GFMOptions          `json:"gfm,omitempty"`
	HTML                            *htmlrender.Options `json:"html,omitempty"`
	MaxDepth                        int                 `json:"maxDepth,omitempty"`
	Logger                          *zap.Logger         `json:"-"`
}

// EnableGFM returns opts with every GFM extension switched on.
func EnableGFM(opts Options) Options {
	opts.GFM.Enabled = true
	opts.GFM.Strikethrough = true
	opts.GFM.TaskLists = true
	opts.GFM.Tables = true
	opts.GFM.Autolinks = true
	return opts
}

// Strict reports whether violations abort rendering.
func (o Options) Strict() bool {
	return o.Mode != ModeLenient
}

func (o Options) applyDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeStrict
	}
	if o.HardBreakStyle == "" {
		o.HardBreakStyle = HardBreakBackslash
	}
	if o.IndentSpaces == 0 {
		o.IndentSpaces = defaultIndentSpaces
	}
	if o.BulletMarker == 0 {
		o.BulletMarker = '-'
	}
	if o.ThematicBreakChar == 0 {
		o.ThematicBreakChar = '-'
	}
	if o.EmphasisChar == 0 {
		o.EmphasisChar = '*'
	}
	if o.StrongChar == 0 {
		o.StrongChar = '*'
	}
	if o.Escaping == "" {
		o.Escaping = EscapeSpecial
	}
	if o.GFM.Strikethrough || o.GFM.TaskLists || o.GFM.Tables || o.GFM.Autolinks {
		o.GFM.Enabled = true
	}
	if o.GFM.DisallowedHTMLTags == nil {
		o.GFM.DisallowedHTMLTags = htmlrender.DefaultDisallowedTags()
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = defaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// clone returns a deep copy of Options for slice and pointer fields.
func (o Options) clone() Options {
	cloned := o
	if o.GFM.DisallowedHTMLTags != nil {
		cloned.GFM.DisallowedHTMLTags = append([]string(nil), o.GFM.DisallowedHTMLTags...)
	}
	if o.HTML != nil {
		h := *o.HTML
		if h.DisallowedTags != nil {
			h.DisallowedTags = append([]string(nil), h.DisallowedTags...)
		}
		cloned.HTML = &h
	}
	return cloned
}

// Validate checks that option values are valid.
func (o Options) Validate() error {
	if o.Mode != ModeStrict && o.Mode != ModeLenient {
		return fmt.Errorf("invalid mode %q", o.Mode)
	}
	if o.HardBreakStyle != HardBreakBackslash && o.HardBreakStyle != HardBreakSpaces {
		return fmt.Errorf("invalid hardBreakStyle %q", o.HardBreakStyle)
	}
	if o.IndentSpaces < 1 || o.IndentSpaces > 8 {
		return fmt.Errorf("indentSpaces must be between 1 and 8, got %d", o.IndentSpaces)
	}
	if o.BulletMarker != '-' && o.BulletMarker != '*' && o.BulletMarker != '+' {
		return fmt.Errorf("invalid bulletMarker %q: must be one of -, *, +", o.BulletMarker)
	}
	if o.ThematicBreakChar != '-' && o.ThematicBreakChar != '*' && o.ThematicBreakChar != '_' {
		return fmt.Errorf("invalid thematicBreakChar %q: must be one of -, *, _", o.ThematicBreakChar)
	}
	if o.EmphasisChar != '*' && o.EmphasisChar != '_' {
		return fmt.Errorf("invalid emphasisChar %q: must be one of *, _", o.EmphasisChar)
	}
	if o.StrongChar != '*' && o.StrongChar != '_' {
		return fmt.Errorf("invalid strongChar %q: must be one of *, _", o.StrongChar)
	}
	if o.Escaping != EscapeSpecial && o.Escaping != EscapeNone {
		return fmt.Errorf("invalid escaping %q", o.Escaping)
	}
	for _, tag := range o.GFM.DisallowedHTMLTags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("gfm.disallowedHTMLTags contains empty tag")
		}
	}
	if o.MaxDepth < 1 {
		return fmt.Errorf("maxDepth must be positive, got %d", o.MaxDepth)
	}
	if o.HTML != nil {
		if _, err := htmlrender.New(*o.HTML); err != nil {
			return fmt.Errorf("invalid html options: %w", err)
		}
	}
	return nil
}

// HTMLOptions derives the fallback renderer configuration, preferring the
// explicit override.
func (o Options) HTMLOptions() htmlrender.Options {
	if o.HTML != nil {
		return *o.HTML
	}
	mode := htmlrender.ModeStrict
	if !o.Strict() {
		mode = htmlrender.ModeLenient
	}
	return htmlrender.Options{
		Mode:           mode,
		GFM:            o.GFM.Enabled,
		DisallowedTags: o.GFM.DisallowedHTMLTags,
		MaxDepth:       o.MaxDepth,
	}
}
