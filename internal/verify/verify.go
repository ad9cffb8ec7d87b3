// Package verify re-parses generated markdown with goldmark to confirm the
// structure a CommonMark reader will see.
package verify

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading is a parsed heading.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Table is a parsed GFM table.
type Table struct {
	Columns    int      `json:"columns"`
	Rows       int      `json:"rows"`
	Alignments []string `json:"alignments"`
}

// Report summarizes a parsed document.
type Report struct {
	// Blocks lists the kinds of the top-level blocks in order.
	Blocks         []string  `json:"blocks"`
	Headings       []Heading `json:"headings,omitempty"`
	Tables         []Table   `json:"tables,omitempty"`
	Links          []string  `json:"links,omitempty"`
	Tasks          int       `json:"tasks,omitempty"`
	Strikethroughs int       `json:"strikethroughs,omitempty"`
	RawHTML        int       `json:"rawHtml,omitempty"`
}

// Verifier parses markdown as CommonMark, or as GFM when enabled.
type Verifier struct {
	md goldmark.Markdown
}

// New creates a Verifier. gfm enables the GitHub extensions.
func New(gfm bool) *Verifier {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	}
	if gfm {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return &Verifier{md: goldmark.New(opts...)}
}

// Check parses markdown and reports what it contains.
func (v *Verifier) Check(markdown string) Report {
	source := []byte(markdown)
	root := v.md.Parser().Parse(text.NewReader(source))

	report := Report{Blocks: []string{}}
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		report.Blocks = append(report.Blocks, c.Kind().String())
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := n.(type) {
		case *ast.Heading:
			report.Headings = append(report.Headings, Heading{Level: typed.Level, Text: plainText(typed, source)})
		case *ast.Link:
			report.Links = append(report.Links, string(typed.Destination))
		case *ast.AutoLink:
			report.Links = append(report.Links, string(typed.URL(source)))
		case *ast.RawHTML, *ast.HTMLBlock:
			report.RawHTML++
		case *extast.Table:
			report.Tables = append(report.Tables, tableShape(typed))
			return ast.WalkSkipChildren, nil
		case *extast.TaskCheckBox:
			report.Tasks++
		case *extast.Strikethrough:
			report.Strikethroughs++
		}
		return ast.WalkContinue, nil
	})
	return report
}

// Preview renders markdown to HTML.
func (v *Verifier) Preview(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := v.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

func tableShape(t *extast.Table) Table {
	shape := Table{Columns: len(t.Alignments)}
	for _, a := range t.Alignments {
		shape.Alignments = append(shape.Alignments, a.String())
	}
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*extast.TableRow); ok {
			shape.Rows++
		}
	}
	return shape
}

func plainText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := c.(type) {
		case *ast.Text:
			buf.Write(typed.Segment.Value(source))
			if typed.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(typed.Value)
		case *ast.CodeSpan:
			for s := typed.FirstChild(); s != nil; s = s.NextSibling() {
				if t, ok := s.(*ast.Text); ok {
					buf.Write(t.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
