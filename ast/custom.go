package ast

// Capabilities a custom node may report through CapabilityReporter.
const (
	CapabilityCommonMark = "commonmark"
	CapabilityHTML       = "html"
)

// CustomNode is implemented by caller-defined node kinds. Values are owned by
// the tree and reached only through Custom.
//
// EqualNode receives values of unknown concrete type and must report false
// when other is not the same kind. Tree equality is therefore only as strong
// as the EqualNode implementations it contains.
type CustomNode interface {
	TypeName() string
	IsBlock() bool
	WriteCommonMark(w MarkdownWriter) error
	CloneNode() CustomNode
	EqualNode(other CustomNode) bool
}

// MarkdownWriter is the engine handle handed to CustomNode.WriteCommonMark.
type MarkdownWriter interface {
	// WriteString appends s verbatim.
	WriteString(s string)
	// WriteEscaped appends s with reserved punctuation escaped according to
	// the active options.
	WriteEscaped(s string)
	// WriteNode renders n with context validation and trailing newline
	// handling.
	WriteNode(n Node) error
	// WriteContent renders n without a trailing newline.
	WriteContent(n Node) error
	// Indent prefixes every non-empty line of content with the configured
	// indentation.
	Indent(content string) string
	Strict() bool
	// Warn records a non-fatal diagnostic for the current render.
	Warn(message string)
}

// HTMLWriter is the renderer handle handed to HTMLNode.WriteHTML.
type HTMLWriter interface {
	WriteRaw(s string)
	WriteText(s string)
	WriteElement(tag string, attrs []HTMLAttribute, children ...Node) error
	WriteNode(n Node) error
}

// HTMLNode is implemented by custom nodes that render themselves as HTML.
type HTMLNode interface {
	WriteHTML(w HTMLWriter) error
}

// Attributed exposes an optional attribute map.
type Attributed interface {
	Attributes() map[string]string
}

// CapabilityReporter overrides the default capability answers of Supports.
type CapabilityReporter interface {
	Supports(capability string) bool
}

// Supports reports whether c can render itself for the named capability.
func Supports(c CustomNode, capability string) bool {
	if c == nil {
		return false
	}
	if r, ok := c.(CapabilityReporter); ok {
		return r.Supports(capability)
	}
	switch capability {
	case CapabilityCommonMark:
		return true
	case CapabilityHTML:
		_, ok := c.(HTMLNode)
		return ok
	default:
		return false
	}
}

// AttributesOf returns c's attributes, or nil when it has none.
func AttributesOf(c CustomNode) map[string]string {
	if a, ok := c.(Attributed); ok {
		return a.Attributes()
	}
	return nil
}
