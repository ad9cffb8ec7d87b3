package cmark

// Result holds the output of a render.
type Result struct {
	Markdown string    `json:"markdown"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes lenient-mode recoveries.
type WarningType string

const (
	WarningHeadingClamped    WarningType = "heading_level_clamped"
	WarningInlineNewline     WarningType = "inline_newline"
	WarningTableHTMLFallback WarningType = "table_html_fallback"
	WarningInvalidHTML       WarningType = "invalid_html"
	WarningUnsupportedNode   WarningType = "unsupported_node"
	WarningCustomNode        WarningType = "custom_node"
)

// Warning represents a non-fatal issue encountered while rendering.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}
