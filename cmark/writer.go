// Package cmark serializes ast trees to CommonMark, with optional GFM
// extensions and an HTML fallback for content CommonMark cannot express.
package cmark

import (
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
	"github.com/rgonek/cmark-writer/htmlrender"
	"go.uber.org/zap"
)

// Writer renders ast trees to CommonMark. A Writer is immutable and may be
// shared between goroutines; each Render call owns its buffer and context
// stack.
type Writer struct {
	opts Options
	html *htmlrender.Renderer
}

// New creates a Writer with the given options.
func New(opts Options) (*Writer, error) {
	cfg := opts.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	html, err := htmlrender.New(cfg.HTMLOptions())
	if err != nil {
		return nil, fmt.Errorf("invalid html options: %w", err)
	}

	return &Writer{opts: cfg, html: html}, nil
}

// Options returns a copy of the effective options.
func (w *Writer) Options() Options {
	return w.opts.clone()
}

// Render serializes n. Block nodes end with a line break, inline nodes do not.
func (w *Writer) Render(n ast.Node) (Result, error) {
	s := newState(w.opts, w.html, blockFrame())

	var err error
	if ast.IsInline(n) {
		err = s.writeNodeContent(n)
	} else {
		err = s.writeNode(n)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Markdown: s.buf.String(),
		Warnings: *s.warnings,
	}, nil
}

// Render serializes n with opts.
func Render(n ast.Node, opts Options) (Result, error) {
	w, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	return w.Render(n)
}

// Format serializes n with default options and returns only the markdown.
func Format(n ast.Node) (string, error) {
	res, err := Render(n, Options{})
	if err != nil {
		return "", err
	}
	return res.Markdown, nil
}

// state carries one render. Nested states (quotes, list items) share the
// warning list and depth with their parent but own their buffer and stack.
type state struct {
	opts     Options
	html     *htmlrender.Renderer
	buf      strings.Builder
	ctx      *contextStack
	warnings *[]Warning
	depth    int

	// checked is non-zero while writing inside an inline container whose
	// subtree has already been checked for line breaks.
	checked int
}

func newState(opts Options, html *htmlrender.Renderer, root Frame) *state {
	return &state{
		opts:     opts,
		html:     html,
		ctx:      newContextStack(root),
		warnings: &[]Warning{},
	}
}

func (s *state) nested(root Frame) *state {
	return &state{
		opts:     s.opts,
		html:     s.html,
		ctx:      newContextStack(root),
		warnings: s.warnings,
		depth:    s.depth,
		checked:  s.checked,
	}
}

func (s *state) strict() bool {
	return s.opts.Strict()
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	*s.warnings = append(*s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
	s.opts.Logger.Debug("lenient recovery",
		zap.String("warning", string(warnType)),
		zap.String("node", nodeType),
		zap.String("message", message),
	)
}

func (s *state) write(str string) {
	s.buf.WriteString(str)
}

func (s *state) endsWith(suffix string) bool {
	return strings.HasSuffix(s.buf.String(), suffix)
}

func (s *state) ensureNewline() {
	if s.buf.Len() > 0 && !s.endsWith("\n") {
		s.write("\n")
	}
}

func (s *state) ensureBlankLine() {
	switch {
	case s.buf.Len() == 0, s.endsWith("\n\n"):
	case s.endsWith("\n"):
		s.write("\n")
	default:
		s.write("\n\n")
	}
}

// writeNode renders n under the active frame: the node is validated against
// the frame and a trailing line break is added when the frame asks for one.
func (s *state) writeNode(n ast.Node) error {
	if doc, ok := n.(ast.Document); ok {
		err := s.descend()
		defer s.ascend()
		if err != nil {
			return err
		}
		return s.writeChildren(doc)
	}
	if err := s.ctx.validateNode(n); err != nil {
		return err
	}

	start := s.buf.Len()
	if err := s.writeNodeContent(n); err != nil {
		return err
	}
	if s.ctx.shouldAddTrailingNewline(s.buf.String()[start:], n) {
		s.write("\n")
	}
	return nil
}

// descend enters one nesting level. Every call is paired with ascend, also
// when it fails.
func (s *state) descend() error {
	s.depth++
	if s.depth > s.opts.MaxDepth {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, s.opts.MaxDepth)
	}
	return nil
}

func (s *state) ascend() {
	s.depth--
}

// writeNodeContent renders n without any trailing line break handling.
func (s *state) writeNodeContent(n ast.Node) error {
	err := s.descend()
	defer s.ascend()
	if err != nil {
		return err
	}

	switch v := n.(type) {
	case ast.Document:
		return s.writeChildren(v)
	case ast.Heading:
		return s.writeHeading(v)
	case ast.Paragraph:
		return s.writeParagraph(v)
	case ast.BlockQuote:
		return s.writeBlockQuote(v)
	case ast.CodeBlock:
		return s.writeCodeBlock(v)
	case ast.HTMLBlock:
		s.writeHTMLBlock(v)
		return nil
	case ast.LinkReferenceDefinition:
		s.writeLinkReferenceDefinition(v)
		return nil
	case ast.ThematicBreak:
		s.write(strings.Repeat(string(s.opts.ThematicBreakChar), 3))
		return nil
	case ast.OrderedList:
		return s.writeOrderedList(v)
	case ast.UnorderedList:
		return s.writeUnorderedList(v)
	case ast.Table:
		return s.writeTable(v)
	case ast.Text:
		return s.writeText(v)
	case ast.InlineCode:
		return s.writeInlineCode(v)
	case ast.Emphasis:
		return s.writeDelimited(v, ast.KindEmphasis, string(s.opts.EmphasisChar))
	case ast.Strong:
		return s.writeDelimited(v, ast.KindStrong, strings.Repeat(string(s.opts.StrongChar), 2))
	case ast.Strikethrough:
		return s.writeStrikethrough(v)
	case ast.Link:
		return s.writeLink(v)
	case ast.ReferenceLink:
		return s.writeReferenceLink(v)
	case ast.Image:
		return s.writeImage(v)
	case ast.Autolink:
		return s.writeAutolink(v)
	case ast.ExtendedAutolink:
		return s.writeExtendedAutolink(v)
	case ast.HTMLElement:
		return s.writeHTMLElement(v)
	case ast.HardBreak:
		s.writeHardBreak()
		return nil
	case ast.SoftBreak:
		s.write("\n")
		return nil
	case ast.Custom:
		return s.writeCustom(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedNode, ast.TypeName(n))
	}
}

// writeChildren renders container children, separating siblings according to
// the active frame. Block children get their trailing line break; inline
// children are concatenated.
func (s *state) writeChildren(children []ast.Node) error {
	for i, child := range children {
		if i > 0 {
			s.writeSeparator(children[i-1], child)
		}
		if ast.IsBlock(child) {
			if err := s.writeNode(child); err != nil {
				return err
			}
			continue
		}
		if err := s.ctx.validateNode(child); err != nil {
			return err
		}
		if err := s.writeNodeContent(child); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) writeSeparator(prev, cur ast.Node) {
	prevBlock, curBlock := ast.IsBlock(prev), ast.IsBlock(cur)
	f := s.ctx.current()

	switch f.Mode {
	case RenderBlock:
		if prevBlock && curBlock {
			s.ensureBlankLine()
		} else if prevBlock || curBlock {
			s.ensureNewline()
		}
	case RenderInlineWithBlocks, RenderListItem:
		if prevBlock || curBlock {
			s.ensureNewline()
		}
	case RenderTableCell:
		if s.buf.Len() > 0 && !s.endsWith(" ") {
			s.write(" ")
		}
	case RenderCustom:
		if (prevBlock || curBlock) && f.Strategy != NewlineNone {
			s.ensureNewline()
		}
	}
}
