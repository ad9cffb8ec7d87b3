package htmlrender

import (
	"fmt"
	"strings"
)

// Mode controls how invalid tag and attribute names are handled.
type Mode string

const (
	// ModeStrict fails rendering on invalid names.
	ModeStrict Mode = "strict"
	// ModeLenient writes offending elements as escaped text.
	ModeLenient Mode = "lenient"
)

const defaultLanguageClassPrefix = "language-"

const defaultMaxDepth = 256

var defaultDisallowedTags = []string{
	"title", "textarea", "style", "xmp", "iframe",
	"noembed", "noframes", "script", "plaintext",
}

// DefaultDisallowedTags returns the tags GFM filters from raw HTML.
func DefaultDisallowedTags() []string {
	return append([]string(nil), defaultDisallowedTags...)
}

// Options configures the HTML renderer.
type Options struct {
	Mode                         Mode     `json:"mode,omitempty"`
	CodeBlockLanguageClassPrefix string   `json:"codeBlockLanguageClassPrefix,omitempty"`
	GFM                          bool     `json:"gfm,omitempty"`
	DisallowedTags               []string `json:"disallowedTags,omitempty"`
	MaxDepth                     int      `json:"maxDepth,omitempty"`
}

// Strict reports whether invalid names fail rendering.
func (o Options) Strict() bool {
	return o.Mode != ModeLenient
}

func (o Options) applyDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeStrict
	}
	if o.CodeBlockLanguageClassPrefix == "" {
		o.CodeBlockLanguageClassPrefix = defaultLanguageClassPrefix
	}
	if o.DisallowedTags == nil {
		o.DisallowedTags = DefaultDisallowedTags()
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = defaultMaxDepth
	}
	return o
}

func (o Options) clone() Options {
	cloned := o
	if o.DisallowedTags != nil {
		cloned.DisallowedTags = append([]string(nil), o.DisallowedTags...)
	}
	return cloned
}

// Validate checks that option values are valid.
func (o Options) Validate() error {
	if o.Mode != ModeStrict && o.Mode != ModeLenient {
		return fmt.Errorf("invalid mode %q", o.Mode)
	}
	if strings.ContainsAny(o.CodeBlockLanguageClassPrefix, " \t\n\"'<>") {
		return fmt.Errorf("invalid codeBlockLanguageClassPrefix %q", o.CodeBlockLanguageClassPrefix)
	}
	for _, tag := range o.DisallowedTags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("disallowedTags contains empty tag")
		}
	}
	if o.MaxDepth < 1 {
		return fmt.Errorf("maxDepth must be positive, got %d", o.MaxDepth)
	}
	return nil
}

func (o Options) disallowed(tag string) bool {
	if !o.GFM {
		return false
	}
	for _, t := range o.DisallowedTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
