// Package htmlrender renders ast trees as HTML. It backs the cmark fallback
// path for content the markdown writer cannot express.
package htmlrender

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrInvalidTag reports a tag name that cannot be emitted safely.
	ErrInvalidTag = errors.New("invalid HTML tag")
	// ErrInvalidAttribute reports an attribute name that cannot be emitted safely.
	ErrInvalidAttribute = errors.New("invalid HTML attribute")
	// ErrDepthExceeded reports a tree nested deeper than Options.MaxDepth.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrVoidElementChildren reports children on an element that cannot have
	// content, such as br or img.
	ErrVoidElementChildren = errors.New("void element with children")
)

// Renderer converts ast nodes to HTML.
type Renderer struct {
	opts Options
}

// New creates a Renderer with the given options.
func New(opts Options) (*Renderer, error) {
	cfg := opts.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: cfg}, nil
}

// Render renders n with opts.
func Render(n ast.Node, opts Options) (string, error) {
	r, err := New(opts)
	if err != nil {
		return "", err
	}
	return r.Render(n)
}

// Options returns a copy of the effective options.
func (r *Renderer) Options() Options {
	return r.opts.clone()
}

// Disallowed reports whether tag is written as escaped text under the
// configured GFM tag filter.
func (r *Renderer) Disallowed(tag string) bool {
	return r.opts.disallowed(tag)
}

// Render converts n to an HTML string.
func (r *Renderer) Render(n ast.Node) (string, error) {
	b := &builder{opts: r.opts}
	root := &html.Node{Type: html.DocumentNode}
	if err := b.appendNode(root, n); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("failed to render HTML: %w", err)
		}
	}
	return buf.String(), nil
}

type builder struct {
	opts  Options
	depth int
}

func (b *builder) appendNodes(parent *html.Node, nodes []ast.Node) error {
	for _, n := range nodes {
		if err := b.appendNode(parent, n); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) appendNode(parent *html.Node, n ast.Node) error {
	b.depth++
	defer func() { b.depth-- }()
	if b.depth > b.opts.MaxDepth {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, b.opts.MaxDepth)
	}

	switch v := n.(type) {
	case ast.Document:
		return b.appendNodes(parent, v)
	case ast.Paragraph:
		return b.appendBlock(parent, element("p"), v)
	case ast.Heading:
		level := min(max(v.Level, 1), 6)
		return b.appendBlock(parent, element("h"+strconv.Itoa(level)), v.Content)
	case ast.ThematicBreak:
		appendLine(parent, element("hr"))
		return nil
	case ast.CodeBlock:
		code := element("code")
		if v.Language != "" {
			code.Attr = append(code.Attr, html.Attribute{Key: "class", Val: b.opts.CodeBlockLanguageClassPrefix + v.Language})
		}
		code.AppendChild(text(v.Content))
		pre := element("pre")
		pre.AppendChild(code)
		appendLine(parent, pre)
		return nil
	case ast.HTMLBlock:
		parent.AppendChild(raw(string(v)))
		return nil
	case ast.LinkReferenceDefinition:
		return nil
	case ast.BlockQuote:
		quote := element("blockquote")
		quote.AppendChild(text("\n"))
		return b.appendBlock(parent, quote, v)
	case ast.OrderedList:
		list := element("ol")
		if v.Start != 1 {
			list.Attr = append(list.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(v.Start)})
		}
		return b.appendList(parent, list, v.Items)
	case ast.UnorderedList:
		return b.appendList(parent, element("ul"), v)
	case ast.Table:
		return b.appendTable(parent, v)
	case ast.Emphasis:
		return b.appendInline(parent, element("em"), v)
	case ast.Strong:
		return b.appendInline(parent, element("strong"), v)
	case ast.Strikethrough:
		return b.appendInline(parent, element("del"), v)
	case ast.InlineCode:
		code := element("code")
		code.AppendChild(text(string(v)))
		parent.AppendChild(code)
		return nil
	case ast.Link:
		a := element("a", html.Attribute{Key: "href", Val: v.URL})
		if v.Title != "" {
			a.Attr = append(a.Attr, html.Attribute{Key: "title", Val: v.Title})
		}
		return b.appendInline(parent, a, v.Content)
	case ast.ReferenceLink:
		if len(v.Content) == 0 {
			parent.AppendChild(text(v.Label))
			return nil
		}
		return b.appendNodes(parent, v.Content)
	case ast.Image:
		img := element("img", html.Attribute{Key: "src", Val: v.URL}, html.Attribute{Key: "alt", Val: ast.PlainText(v.Alt)})
		if v.Title != "" {
			img.Attr = append(img.Attr, html.Attribute{Key: "title", Val: v.Title})
		}
		parent.AppendChild(img)
		return nil
	case ast.Autolink:
		href := v.URL
		if v.IsEmail && !strings.HasPrefix(href, "mailto:") {
			href = "mailto:" + href
		}
		a := element("a", html.Attribute{Key: "href", Val: href})
		a.AppendChild(text(v.URL))
		parent.AppendChild(a)
		return nil
	case ast.ExtendedAutolink:
		a := element("a", html.Attribute{Key: "href", Val: string(v)})
		a.AppendChild(text(string(v)))
		parent.AppendChild(a)
		return nil
	case ast.HTMLElement:
		return b.appendElement(parent, v)
	case ast.HardBreak:
		appendLine(parent, element("br"))
		return nil
	case ast.SoftBreak:
		parent.AppendChild(text("\n"))
		return nil
	case ast.Text:
		parent.AppendChild(text(string(v)))
		return nil
	case ast.Custom:
		return b.appendCustom(parent, v)
	default:
		return fmt.Errorf("unsupported node %s", ast.TypeName(n))
	}
}

// appendBlock appends el with children rendered inside it, followed by a newline.
func (b *builder) appendBlock(parent, el *html.Node, children []ast.Node) error {
	if err := b.appendNodes(el, children); err != nil {
		return err
	}
	appendLine(parent, el)
	return nil
}

func (b *builder) appendInline(parent, el *html.Node, children []ast.Node) error {
	if err := b.appendNodes(el, children); err != nil {
		return err
	}
	parent.AppendChild(el)
	return nil
}

func (b *builder) appendList(parent, list *html.Node, items []ast.ListItem) error {
	list.AppendChild(text("\n"))
	for _, item := range items {
		li := element("li")
		if item.Kind == ast.ListItemTask && b.opts.GFM {
			li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "task-list-item"})
			input := element("input", html.Attribute{Key: "type", Val: "checkbox"}, html.Attribute{Key: "disabled"})
			if item.Status == ast.TaskChecked {
				input.Attr = append(input.Attr, html.Attribute{Key: "checked"})
			}
			li.AppendChild(input)
			li.AppendChild(text(" "))
		}
		if err := b.appendNodes(li, item.Content); err != nil {
			return err
		}
		appendLine(list, li)
	}
	appendLine(parent, list)
	return nil
}

func (b *builder) appendTable(parent *html.Node, t ast.Table) error {
	table := element("table")
	table.AppendChild(text("\n"))

	thead := element("thead")
	thead.AppendChild(text("\n"))
	headRow := element("tr")
	headRow.AppendChild(text("\n"))
	for i, header := range t.Headers {
		th := element("th", alignStyle(t.Alignments, i)...)
		if err := b.appendNode(th, header); err != nil {
			return err
		}
		appendLine(headRow, th)
	}
	appendLine(thead, headRow)
	appendLine(table, thead)

	if len(t.Rows) > 0 {
		tbody := element("tbody")
		tbody.AppendChild(text("\n"))
		for _, row := range t.Rows {
			tr := element("tr")
			tr.AppendChild(text("\n"))
			for i, cell := range row {
				td := element("td", alignStyle(t.Alignments, i)...)
				if err := b.appendNode(td, cell); err != nil {
					return err
				}
				appendLine(tr, td)
			}
			appendLine(tbody, tr)
		}
		appendLine(table, tbody)
	}

	appendLine(parent, table)
	return nil
}

func alignStyle(alignments []ast.Alignment, col int) []html.Attribute {
	if col >= len(alignments) || alignments[col] == ast.AlignNone {
		return nil
	}
	return []html.Attribute{{Key: "style", Val: "text-align: " + alignments[col].String() + ";"}}
}

func (b *builder) appendCustom(parent *html.Node, c ast.Custom) error {
	if c.Value == nil {
		return fmt.Errorf("unsupported node %s: nil custom value", ast.KindCustom)
	}
	if hn, ok := c.Value.(ast.HTMLNode); ok && ast.Supports(c.Value, ast.CapabilityHTML) {
		return hn.WriteHTML(&nodeWriter{b: b, parent: parent})
	}
	parent.AppendChild(&html.Node{
		Type: html.CommentNode,
		Data: " HTML rendering not implemented for Custom Node: " + c.Value.TypeName() + " ",
	})
	return nil
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func raw(s string) *html.Node {
	return &html.Node{Type: html.RawNode, Data: s}
}

func appendLine(parent, child *html.Node) {
	parent.AppendChild(child)
	parent.AppendChild(text("\n"))
}
