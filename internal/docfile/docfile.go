// Package docfile decodes document descriptions written in JSON or YAML into
// ast trees.
//
// A description is a tree of nodes shaped like
//
//	{"type": "paragraph", "content": [{"type": "text", "text": "Hi"}]}
//
// A bare string stands for a text node.
package docfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
	"gopkg.in/yaml.v3"
)

// Node is one element of a document description.
type Node struct {
	Type    string         `yaml:"type"`
	Text    string         `yaml:"text,omitempty"`
	Content []Node         `yaml:"content,omitempty"`
	Attrs   map[string]any `yaml:"attrs,omitempty"`
}

// UnmarshalYAML accepts a plain scalar as shorthand for a text node.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.Type = "text"
		return value.Decode(&n.Text)
	}
	type plain Node
	return value.Decode((*plain)(n))
}

// Parse decodes a JSON or YAML description into an ast tree.
func Parse(data []byte) (ast.Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return Convert(root)
}

// ReadFile reads and parses the description stored at path.
func ReadFile(path string) (ast.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Convert maps a decoded description onto ast nodes.
func Convert(n Node) (ast.Node, error) {
	switch normalize(n.Type) {
	case "doc", "document":
		children, err := convertAll(n.Content)
		return ast.Document(children), err
	case "paragraph":
		children, err := convertAll(n.Content)
		return ast.Paragraph(children), err
	case "heading":
		return convertHeading(n)
	case "blockquote":
		children, err := convertAll(n.Content)
		return ast.BlockQuote(children), err
	case "codeblock":
		style := ast.CodeBlockFenced
		if stringAttr(n.Attrs, "style") == "indented" {
			style = ast.CodeBlockIndented
		}
		return ast.CodeBlock{Language: stringAttr(n.Attrs, "language"), Content: n.Text, Style: style}, nil
	case "htmlblock":
		return ast.HTMLBlock(n.Text), nil
	case "linkdefinition", "linkreferencedefinition":
		return ast.LinkReferenceDefinition{
			Label:       stringAttr(n.Attrs, "label"),
			Destination: stringAttr(n.Attrs, "href"),
			Title:       stringAttr(n.Attrs, "title"),
		}, nil
	case "rule", "thematicbreak":
		return ast.ThematicBreak{}, nil
	case "bulletlist", "unorderedlist":
		items, err := convertItems(n.Content, ast.ListItemUnordered)
		return ast.UnorderedList(items), err
	case "orderedlist":
		items, err := convertItems(n.Content, ast.ListItemOrdered)
		return ast.OrderedList{Start: intAttr(n.Attrs, "start", 1), Items: items}, err
	case "table":
		return convertTable(n)
	case "text":
		return ast.Text(n.Text), nil
	case "code", "inlinecode":
		return ast.InlineCode(n.Text), nil
	case "em", "emphasis":
		children, err := convertAll(n.Content)
		return ast.Emphasis(children), err
	case "strong":
		children, err := convertAll(n.Content)
		return ast.Strong(children), err
	case "strike", "strikethrough":
		children, err := convertAll(n.Content)
		return ast.Strikethrough(children), err
	case "link":
		children, err := convertAll(n.Content)
		return ast.Link{URL: stringAttr(n.Attrs, "href"), Title: stringAttr(n.Attrs, "title"), Content: children}, err
	case "referencelink":
		children, err := convertAll(n.Content)
		return ast.ReferenceLink{Label: stringAttr(n.Attrs, "label"), Content: children}, err
	case "image":
		alt, err := convertAll(n.Content)
		if len(alt) == 0 && stringAttr(n.Attrs, "alt") != "" {
			alt = []ast.Node{ast.Text(stringAttr(n.Attrs, "alt"))}
		}
		return ast.Image{URL: stringAttr(n.Attrs, "src"), Title: stringAttr(n.Attrs, "title"), Alt: alt}, err
	case "autolink":
		return ast.Autolink{URL: firstNonEmpty(stringAttr(n.Attrs, "href"), n.Text), IsEmail: boolAttr(n.Attrs, "email")}, nil
	case "extendedautolink":
		return ast.ExtendedAutolink(firstNonEmpty(stringAttr(n.Attrs, "href"), n.Text)), nil
	case "html", "htmlelement":
		return convertElement(n)
	case "hardbreak":
		return ast.HardBreak{}, nil
	case "softbreak":
		return ast.SoftBreak{}, nil
	default:
		return nil, fmt.Errorf("unknown node type: %s", n.Type)
	}
}

func normalize(typ string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(typ))
}

func convertAll(nodes []Node) ([]ast.Node, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		converted, err := Convert(n)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func convertHeading(n Node) (ast.Node, error) {
	children, err := convertAll(n.Content)
	if err != nil {
		return nil, err
	}
	style := ast.HeadingATX
	if stringAttr(n.Attrs, "style") == "setext" {
		style = ast.HeadingSetext
	}
	return ast.Heading{Level: intAttr(n.Attrs, "level", 1), Content: children, Style: style}, nil
}

// convertItems converts listItem and taskItem nodes. kind applies to plain
// list items.
func convertItems(nodes []Node, kind ast.ListItemKind) ([]ast.ListItem, error) {
	items := make([]ast.ListItem, 0, len(nodes))
	for _, n := range nodes {
		content, err := convertAll(n.Content)
		if err != nil {
			return nil, err
		}
		item := ast.ListItem{Kind: kind, Content: content}
		switch normalize(n.Type) {
		case "listitem":
		case "taskitem":
			item.Kind = ast.ListItemTask
			if boolAttr(n.Attrs, "checked") {
				item.Status = ast.TaskChecked
			}
		default:
			return nil, fmt.Errorf("unexpected list child type: %s", n.Type)
		}
		if _, ok := n.Attrs["number"]; ok {
			number := intAttr(n.Attrs, "number", 0)
			item.Number = &number
		}
		items = append(items, item)
	}
	return items, nil
}

// convertTable reads the first tableRow as the header row.
func convertTable(n Node) (ast.Node, error) {
	var t ast.Table
	for _, a := range listAttr(n.Attrs, "alignments") {
		align, err := parseAlignment(fmt.Sprint(a))
		if err != nil {
			return nil, err
		}
		t.Alignments = append(t.Alignments, align)
	}

	for i, row := range n.Content {
		if normalize(row.Type) != "tablerow" {
			return nil, fmt.Errorf("unexpected table child type: %s", row.Type)
		}
		cells := make([]ast.Node, 0, len(row.Content))
		for _, cell := range row.Content {
			converted, err := convertCell(cell)
			if err != nil {
				return nil, err
			}
			cells = append(cells, converted)
		}
		if i == 0 {
			t.Headers = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// convertCell unwraps tableCell and tableHeader wrappers. A cell holds a
// single node; an empty cell becomes empty text.
func convertCell(n Node) (ast.Node, error) {
	switch normalize(n.Type) {
	case "tablecell", "tableheader":
	default:
		return Convert(n)
	}
	switch len(n.Content) {
	case 0:
		return ast.Text(n.Text), nil
	case 1:
		return Convert(n.Content[0])
	default:
		return nil, fmt.Errorf("table cell must hold one node, got %d", len(n.Content))
	}
}

func parseAlignment(s string) (ast.Alignment, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return ast.AlignNone, nil
	case "left":
		return ast.AlignLeft, nil
	case "center":
		return ast.AlignCenter, nil
	case "right":
		return ast.AlignRight, nil
	default:
		return ast.AlignNone, fmt.Errorf("invalid alignment %q", s)
	}
}

func convertElement(n Node) (ast.Node, error) {
	children, err := convertAll(n.Content)
	if err != nil {
		return nil, err
	}
	el := ast.HTMLElement{
		Tag:         stringAttr(n.Attrs, "tag"),
		Children:    children,
		SelfClosing: boolAttr(n.Attrs, "selfClosing"),
	}
	for _, a := range listAttr(n.Attrs, "attributes") {
		m, ok := a.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("html attribute must be a mapping, got %T", a)
		}
		el.Attributes = append(el.Attributes, ast.HTMLAttribute{
			Name:  stringAttr(m, "name"),
			Value: stringAttr(m, "value"),
		})
	}
	return el, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
