// Package ast defines the document tree rendered by the cmark and htmlrender
// packages.
package ast

// Kind names a node variant.
type Kind string

const (
	KindDocument                Kind = "Document"
	KindThematicBreak           Kind = "ThematicBreak"
	KindHeading                 Kind = "Heading"
	KindCodeBlock               Kind = "CodeBlock"
	KindHTMLBlock               Kind = "HtmlBlock"
	KindLinkReferenceDefinition Kind = "LinkReferenceDefinition"
	KindParagraph               Kind = "Paragraph"
	KindBlockQuote              Kind = "BlockQuote"
	KindOrderedList             Kind = "OrderedList"
	KindUnorderedList           Kind = "UnorderedList"
	KindTable                   Kind = "Table"
	KindInlineCode              Kind = "InlineCode"
	KindEmphasis                Kind = "Emphasis"
	KindStrong                  Kind = "Strong"
	KindStrikethrough           Kind = "Strikethrough"
	KindLink                    Kind = "Link"
	KindReferenceLink           Kind = "ReferenceLink"
	KindImage                   Kind = "Image"
	KindAutolink                Kind = "Autolink"
	KindExtendedAutolink        Kind = "ExtendedAutolink"
	KindHTMLElement             Kind = "HtmlElement"
	KindHardBreak               Kind = "HardBreak"
	KindSoftBreak               Kind = "SoftBreak"
	KindText                    Kind = "Text"
	KindCustom                  Kind = "Custom"
)

func (k Kind) String() string { return string(k) }

// Node is a document tree element. The set of implementations is closed;
// caller-defined kinds are carried by Custom.
type Node interface {
	Kind() Kind
	node()
}

// HeadingStyle selects the heading notation.
type HeadingStyle int

const (
	HeadingATX HeadingStyle = iota
	HeadingSetext
)

// CodeBlockStyle selects the code block notation.
type CodeBlockStyle int

const (
	CodeBlockFenced CodeBlockStyle = iota
	CodeBlockIndented
)

// Alignment is a table column alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// Document is the root container.
type Document []Node

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// Heading is an ATX or Setext heading. Level is expected in 1..6.
type Heading struct {
	Level   int
	Content []Node
	Style   HeadingStyle
}

// CodeBlock holds verbatim code. An empty Language means no info string.
type CodeBlock struct {
	Language string
	Content  string
	Style    CodeBlockStyle
}

// HTMLBlock is raw block-level HTML.
type HTMLBlock string

// LinkReferenceDefinition is a `[label]: destination "title"` line.
type LinkReferenceDefinition struct {
	Label       string
	Destination string
	Title       string
}

type Paragraph []Node

type BlockQuote []Node

// OrderedList numbers its items from Start.
type OrderedList struct {
	Start int
	Items []ListItem
}

type UnorderedList []ListItem

// Table is a pipe table. Alignments may be shorter than Headers.
type Table struct {
	Headers    []Node
	Alignments []Alignment
	Rows       [][]Node
}

type InlineCode string

type Emphasis []Node

type Strong []Node

// Strikethrough is a GFM extension.
type Strikethrough []Node

type Link struct {
	URL     string
	Title   string
	Content []Node
}

// ReferenceLink refers to a LinkReferenceDefinition by label.
type ReferenceLink struct {
	Label   string
	Content []Node
}

type Image struct {
	URL   string
	Title string
	Alt   []Node
}

// Autolink is a `<url>` or `<email>` link.
type Autolink struct {
	URL     string
	IsEmail bool
}

// ExtendedAutolink is a bare URL recognized by the GFM autolink extension.
type ExtendedAutolink string

type HardBreak struct{}

type SoftBreak struct{}

type Text string

// Custom carries a caller-defined node.
type Custom struct {
	Value CustomNode
}

func (Document) Kind() Kind                { return KindDocument }
func (ThematicBreak) Kind() Kind           { return KindThematicBreak }
func (Heading) Kind() Kind                 { return KindHeading }
func (CodeBlock) Kind() Kind               { return KindCodeBlock }
func (HTMLBlock) Kind() Kind               { return KindHTMLBlock }
func (LinkReferenceDefinition) Kind() Kind { return KindLinkReferenceDefinition }
func (Paragraph) Kind() Kind               { return KindParagraph }
func (BlockQuote) Kind() Kind              { return KindBlockQuote }
func (OrderedList) Kind() Kind             { return KindOrderedList }
func (UnorderedList) Kind() Kind           { return KindUnorderedList }
func (Table) Kind() Kind                   { return KindTable }
func (InlineCode) Kind() Kind              { return KindInlineCode }
func (Emphasis) Kind() Kind                { return KindEmphasis }
func (Strong) Kind() Kind                  { return KindStrong }
func (Strikethrough) Kind() Kind           { return KindStrikethrough }
func (Link) Kind() Kind                    { return KindLink }
func (ReferenceLink) Kind() Kind           { return KindReferenceLink }
func (Image) Kind() Kind                   { return KindImage }
func (Autolink) Kind() Kind                { return KindAutolink }
func (ExtendedAutolink) Kind() Kind        { return KindExtendedAutolink }
func (HTMLElement) Kind() Kind             { return KindHTMLElement }
func (HardBreak) Kind() Kind               { return KindHardBreak }
func (SoftBreak) Kind() Kind               { return KindSoftBreak }
func (Text) Kind() Kind                    { return KindText }
func (Custom) Kind() Kind                  { return KindCustom }

func (Document) node()                {}
func (ThematicBreak) node()           {}
func (Heading) node()                 {}
func (CodeBlock) node()               {}
func (HTMLBlock) node()               {}
func (LinkReferenceDefinition) node() {}
func (Paragraph) node()               {}
func (BlockQuote) node()              {}
func (OrderedList) node()             {}
func (UnorderedList) node()           {}
func (Table) node()                   {}
func (InlineCode) node()              {}
func (Emphasis) node()                {}
func (Strong) node()                  {}
func (Strikethrough) node()           {}
func (Link) node()                    {}
func (ReferenceLink) node()           {}
func (Image) node()                   {}
func (Autolink) node()                {}
func (ExtendedAutolink) node()        {}
func (HTMLElement) node()             {}
func (HardBreak) node()               {}
func (SoftBreak) node()               {}
func (Text) node()                    {}
func (Custom) node()                  {}

// TypeName returns the kind for built-in nodes and the custom type name for
// Custom nodes.
func TypeName(n Node) string {
	if c, ok := n.(Custom); ok && c.Value != nil {
		return c.Value.TypeName()
	}
	if n == nil {
		return "<nil>"
	}
	return n.Kind().String()
}
