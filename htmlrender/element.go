package htmlrender

import (
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Keygen: true, atom.Link: true, atom.Meta: true, atom.Param: true,
	atom.Source: true, atom.Track: true, atom.Wbr: true,
}

// IsVoidElement reports whether tag names an HTML element that has no
// content or end tag.
func IsVoidElement(tag string) bool {
	return voidElements[atom.Lookup([]byte(tag))]
}

// IsSafeTagName reports whether name can be written as a tag name: an ASCII
// letter followed by letters, digits or '-'.
func IsSafeTagName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// IsSafeAttributeName reports whether name can be written as an attribute
// name.
func IsSafeAttributeName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\n\r\f\"'<>/=\x00")
}

func (b *builder) appendElement(parent *html.Node, el ast.HTMLElement) error {
	if b.opts.disallowed(el.Tag) {
		return b.appendElementAsText(parent, el)
	}

	if !IsSafeTagName(el.Tag) {
		if b.opts.Strict() {
			return fmt.Errorf("%w: %q", ErrInvalidTag, el.Tag)
		}
		return b.appendElementAsText(parent, el)
	}
	for _, attr := range el.Attributes {
		if !IsSafeAttributeName(attr.Name) {
			if b.opts.Strict() {
				return fmt.Errorf("%w: %q", ErrInvalidAttribute, attr.Name)
			}
			return b.appendElementAsText(parent, el)
		}
	}

	node := element(el.Tag, convertAttributes(el.Attributes)...)
	if el.SelfClosing && !voidElements[node.DataAtom] {
		parent.AppendChild(raw(selfClosingTag(el)))
		return nil
	}
	if el.SelfClosing {
		parent.AppendChild(node)
		return nil
	}
	if voidElements[node.DataAtom] && len(el.Children) > 0 {
		if b.opts.Strict() {
			return fmt.Errorf("%w: <%s>", ErrVoidElementChildren, el.Tag)
		}
		// Children follow the element as siblings.
		parent.AppendChild(node)
		return b.appendNodes(parent, el.Children)
	}
	return b.appendInline(parent, node, el.Children)
}

// appendElementAsText writes the element's markup as escaped text. Children
// are still rendered as HTML between the literal tags.
func (b *builder) appendElementAsText(parent *html.Node, el ast.HTMLElement) error {
	var open strings.Builder
	open.WriteString("<")
	open.WriteString(el.Tag)
	for _, attr := range el.Attributes {
		fmt.Fprintf(&open, " %s=\"%s\"", attr.Name, attr.Value)
	}
	if el.SelfClosing {
		open.WriteString(" />")
		parent.AppendChild(text(open.String()))
		return nil
	}
	open.WriteString(">")
	parent.AppendChild(text(open.String()))
	if err := b.appendNodes(parent, el.Children); err != nil {
		return err
	}
	parent.AppendChild(text("</" + el.Tag + ">"))
	return nil
}

func convertAttributes(attrs []ast.HTMLAttribute) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]html.Attribute, len(attrs))
	for i, attr := range attrs {
		out[i] = html.Attribute{Key: attr.Name, Val: attr.Value}
	}
	return out
}

func selfClosingTag(el ast.HTMLElement) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(el.Tag)
	for _, attr := range el.Attributes {
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attr.Value))
		sb.WriteString(`"`)
	}
	sb.WriteString(" />")
	return sb.String()
}

// nodeWriter lets custom nodes append to the tree being built.
type nodeWriter struct {
	b      *builder
	parent *html.Node
}

func (w *nodeWriter) WriteRaw(s string) {
	w.parent.AppendChild(raw(s))
}

func (w *nodeWriter) WriteText(s string) {
	w.parent.AppendChild(text(s))
}

func (w *nodeWriter) WriteElement(tag string, attrs []ast.HTMLAttribute, children ...ast.Node) error {
	return w.b.appendElement(w.parent, ast.HTMLElement{Tag: tag, Attributes: attrs, Children: children})
}

func (w *nodeWriter) WriteNode(n ast.Node) error {
	return w.b.appendNode(w.parent, n)
}
