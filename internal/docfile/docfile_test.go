package docfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rgonek/cmark-writer/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTree(t *testing.T, want, got ast.Node) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	src := `
type: doc
content:
  - type: heading
    attrs: {level: 2, style: setext}
    content: [Title]
  - type: paragraph
    content:
      - "plain "
      - type: strong
        content: [bold]
      - type: hard_break
      - type: link
        attrs: {href: "https://x.io", title: T}
        content: [x]
  - type: codeBlock
    attrs: {language: go}
    text: "fmt.Println()"
  - type: code-block
    attrs: {style: indented}
    text: "x"
  - type: rule
  - type: htmlBlock
    text: "<div></div>"
  - type: linkDefinition
    attrs: {label: ref, href: /u, title: t}
`
	got, err := Parse([]byte(src))
	require.NoError(t, err)

	assertTree(t, ast.Document{
		ast.Heading{Level: 2, Style: ast.HeadingSetext, Content: []ast.Node{ast.Text("Title")}},
		ast.Paragraph{
			ast.Text("plain "),
			ast.Strong{ast.Text("bold")},
			ast.HardBreak{},
			ast.Link{URL: "https://x.io", Title: "T", Content: []ast.Node{ast.Text("x")}},
		},
		ast.CodeBlock{Language: "go", Content: "fmt.Println()"},
		ast.CodeBlock{Content: "x", Style: ast.CodeBlockIndented},
		ast.ThematicBreak{},
		ast.HTMLBlock("<div></div>"),
		ast.LinkReferenceDefinition{Label: "ref", Destination: "/u", Title: "t"},
	}, got)
}

func TestParseJSON(t *testing.T) {
	src := `{
  "type": "paragraph",
  "content": [
    {"type": "em", "content": ["a"]},
    {"type": "strike", "content": ["b"]},
    {"type": "inlineCode", "text": "c"},
    {"type": "image", "attrs": {"src": "i.png", "alt": "pic"}},
    {"type": "autolink", "text": "me@x.io", "attrs": {"email": true}},
    {"type": "extendedAutolink", "attrs": {"href": "www.x.io"}},
    {"type": "referenceLink", "attrs": {"label": "ref"}},
    {"type": "softBreak"}
  ]
}`
	got, err := Parse([]byte(src))
	require.NoError(t, err)

	assertTree(t, ast.Paragraph{
		ast.Emphasis{ast.Text("a")},
		ast.Strikethrough{ast.Text("b")},
		ast.InlineCode("c"),
		ast.Image{URL: "i.png", Alt: []ast.Node{ast.Text("pic")}},
		ast.Autolink{URL: "me@x.io", IsEmail: true},
		ast.ExtendedAutolink("www.x.io"),
		ast.ReferenceLink{Label: "ref"},
		ast.SoftBreak{},
	}, got)
}

func TestParseLists(t *testing.T) {
	src := `
type: doc
content:
  - type: orderedList
    attrs: {start: 3}
    content:
      - type: listItem
        content: [{type: paragraph, content: [a]}]
      - type: listItem
        attrs: {number: "10"}
        content: [{type: paragraph, content: [b]}]
  - type: bulletList
    content:
      - type: taskItem
        attrs: {checked: true}
        content: [done]
      - type: taskItem
        content: [todo]
  - type: orderedList
    content:
      - type: listItem
`
	got, err := Parse([]byte(src))
	require.NoError(t, err)

	ten := 10
	assertTree(t, ast.Document{
		ast.OrderedList{Start: 3, Items: []ast.ListItem{
			{Kind: ast.ListItemOrdered, Content: []ast.Node{ast.Paragraph{ast.Text("a")}}},
			{Kind: ast.ListItemOrdered, Number: &ten, Content: []ast.Node{ast.Paragraph{ast.Text("b")}}},
		}},
		ast.UnorderedList{
			{Kind: ast.ListItemTask, Status: ast.TaskChecked, Content: []ast.Node{ast.Text("done")}},
			{Kind: ast.ListItemTask, Status: ast.TaskUnchecked, Content: []ast.Node{ast.Text("todo")}},
		},
		ast.OrderedList{Start: 1, Items: []ast.ListItem{{Kind: ast.ListItemOrdered}}},
	}, got)
}

func TestParseTable(t *testing.T) {
	src := `
type: table
attrs: {alignments: [left, none, RIGHT]}
content:
  - type: tableRow
    content:
      - {type: tableHeader, content: [A]}
      - {type: tableHeader, content: [B]}
      - {type: tableHeader, content: [C]}
  - type: tableRow
    content:
      - {type: tableCell, content: [{type: strong, content: [x]}]}
      - {type: tableCell}
      - "bare"
`
	got, err := Parse([]byte(src))
	require.NoError(t, err)

	assertTree(t, ast.Table{
		Headers:    []ast.Node{ast.Text("A"), ast.Text("B"), ast.Text("C")},
		Alignments: []ast.Alignment{ast.AlignLeft, ast.AlignNone, ast.AlignRight},
		Rows:       [][]ast.Node{{ast.Strong{ast.Text("x")}, ast.Text(""), ast.Text("bare")}},
	}, got)
}

func TestParseHTMLElement(t *testing.T) {
	src := `
type: html
attrs:
  tag: span
  attributes:
    - {name: class, value: note}
    - {name: data-id, value: 7}
content: [inside]
`
	got, err := Parse([]byte(src))
	require.NoError(t, err)

	assertTree(t, ast.HTMLElement{
		Tag:        "span",
		Attributes: []ast.HTMLAttribute{{Name: "class", Value: "note"}, {Name: "data-id", Value: "7"}},
		Children:   []ast.Node{ast.Text("inside")},
	}, got)

	got, err = Parse([]byte(`{type: htmlElement, attrs: {tag: br, selfClosing: true}}`))
	require.NoError(t, err)
	assertTree(t, ast.HTMLElement{Tag: "br", SelfClosing: true}, got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown type", `{type: widget}`, "unknown node type: widget"},
		{"nested unknown type", `{type: paragraph, content: [{type: nope}]}`, "unknown node type: nope"},
		{"list child", `{type: bulletList, content: [{type: paragraph}]}`, "unexpected list child type: paragraph"},
		{"table child", `{type: table, content: [{type: paragraph}]}`, "unexpected table child type: paragraph"},
		{"cell content", `{type: table, content: [{type: tableRow, content: [{type: tableCell, content: [a, b]}]}]}`, "table cell must hold one node, got 2"},
		{"alignment", `{type: table, attrs: {alignments: [middle]}}`, `invalid alignment "middle"`},
		{"html attribute", `{type: html, attrs: {tag: a, attributes: [x]}}`, "html attribute must be a mapping, got string"},
		{"syntax", `{type: [`, "failed to parse document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{type: paragraph, content: [hi]}"), 0644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assertTree(t, ast.Paragraph{ast.Text("hi")}, got)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("{type: what}"), 0644))
	_, err = ReadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad+": unknown node type: what")

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}

func TestAttrHelpers(t *testing.T) {
	attrs := map[string]any{
		"s": "x", "i": 3, "i64": int64(4), "u": uint64(5), "f": 6.0, "n": "7", "bad": "x7",
		"t": true, "ts": "true", "list": []any{"a"},
	}

	assert.Equal(t, "x", stringAttr(attrs, "s"))
	assert.Equal(t, "3", stringAttr(attrs, "i"))
	assert.Equal(t, "true", stringAttr(attrs, "t"))
	assert.Equal(t, "", stringAttr(attrs, "missing"))
	assert.Equal(t, "", stringAttr(attrs, "f"))

	assert.Equal(t, 3, intAttr(attrs, "i", 0))
	assert.Equal(t, 4, intAttr(attrs, "i64", 0))
	assert.Equal(t, 5, intAttr(attrs, "u", 0))
	assert.Equal(t, 6, intAttr(attrs, "f", 0))
	assert.Equal(t, 7, intAttr(attrs, "n", 0))
	assert.Equal(t, 9, intAttr(attrs, "bad", 9))
	assert.Equal(t, 9, intAttr(nil, "i", 9))

	assert.True(t, boolAttr(attrs, "t"))
	assert.True(t, boolAttr(attrs, "ts"))
	assert.False(t, boolAttr(attrs, "s"))
	assert.False(t, boolAttr(attrs, "i"))

	assert.Equal(t, []any{"a"}, listAttr(attrs, "list"))
	assert.Nil(t, listAttr(attrs, "s"))
}
