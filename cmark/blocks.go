package cmark

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rgonek/cmark-writer/ast"
)

// writeHeading writes an ATX or Setext heading. The trailing line break is
// left to the enclosing frame.
func (s *state) writeHeading(h ast.Heading) error {
	level := h.Level
	if level < 1 || level > 6 {
		if s.strict() {
			return fmt.Errorf("%w: %d", ErrInvalidHeadingLevel, level)
		}
		level = min(max(level, 1), 6)
		s.addWarning(WarningHeadingClamped, string(ast.KindHeading),
			fmt.Sprintf("heading level %d clamped to %d", h.Level, level))
	}

	if h.Style == ast.HeadingSetext {
		start := s.buf.Len()
		if err := s.writeInlineRun(h.Content); err != nil {
			return err
		}
		content := s.buf.String()[start:]

		underline := "-"
		if level == 1 {
			underline = "="
		}
		s.write("\n")
		s.write(strings.Repeat(underline, setextWidth(content)))
		return nil
	}

	s.write(strings.Repeat("#", level))
	s.write(" ")
	return s.writeInlineRun(h.Content)
}

// setextWidth is the underline length: the display width of the widest
// content line, never less than 3.
func setextWidth(content string) int {
	width := 3
	for _, line := range strings.Split(content, "\n") {
		width = max(width, runewidth.StringWidth(line))
	}
	return width
}

// writeInlineRun writes nodes in a pure inline frame.
func (s *state) writeInlineRun(nodes []ast.Node) error {
	return s.ctx.withFrame(pureInlineFrame(), func() error {
		return s.writeInlines(nodes)
	})
}

// writeInlines writes nodes without separators after validating each against
// the active frame.
func (s *state) writeInlines(nodes []ast.Node) error {
	for _, n := range nodes {
		if err := s.ctx.validateNode(n); err != nil {
			return err
		}
		if err := s.writeNodeContent(n); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) writeParagraph(p ast.Paragraph) error {
	content := []ast.Node(p)
	if s.opts.TrimParagraphTrailingHardBreaks {
		end := len(content)
		for end > 0 {
			if _, ok := content[end-1].(ast.HardBreak); !ok {
				break
			}
			end--
		}
		content = content[:end]
	}

	return s.ctx.withFrame(inlineWithBlocksFrame(), func() error {
		for i, n := range content {
			if i > 0 && (ast.IsBlock(n) || ast.IsBlock(content[i-1])) {
				s.ensureNewline()
			}
			if ast.IsBlock(n) {
				if err := s.writeNode(n); err != nil {
					return err
				}
				continue
			}
			if err := s.writeNodeContent(n); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeBlockQuote renders children into a nested buffer and prefixes every
// line with "> ".
func (s *state) writeBlockQuote(q ast.BlockQuote) error {
	inner := s.nested(blockFrame())
	for i, child := range q {
		if i > 0 {
			inner.write("\n")
		}
		if err := inner.writeNode(child); err != nil {
			return err
		}
	}

	s.write(blockquoteContent(inner.buf.String()))
	return nil
}

// blockquoteContent prefixes every line of content with a quote marker.
// Lines that already start with '>' get a bare '>'.
func blockquoteContent(content string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return ">"
	}

	lines := strings.Split(content, "\n")
	quoted := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case line == "":
			quoted[i] = ">"
		case strings.HasPrefix(line, ">"):
			quoted[i] = ">" + line
		default:
			quoted[i] = "> " + line
		}
	}
	return strings.Join(quoted, "\n")
}

func (s *state) writeCodeBlock(c ast.CodeBlock) error {
	if c.Style == ast.CodeBlockIndented {
		s.write(strings.TrimSuffix(indentLines(c.Content, "    ", "    "), "\n"))
		return nil
	}

	fence := strings.Repeat("`", fenceLength(c.Content))
	s.write(fence)
	s.write(c.Language)
	s.write("\n")
	s.write(c.Content)
	if !strings.HasSuffix(c.Content, "\n") {
		s.write("\n")
	}
	s.write(fence)
	return nil
}

// fenceLength returns one more than the longest backtick run in content,
// never less than 3.
func fenceLength(content string) int {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return max(3, longest+1)
}

func (s *state) writeHTMLBlock(h ast.HTMLBlock) {
	s.write(strings.TrimSuffix(string(h), "\n"))
}

func (s *state) writeLinkReferenceDefinition(d ast.LinkReferenceDefinition) {
	s.write("[")
	s.write(d.Label)
	s.write("]: ")
	s.write(d.Destination)
	if d.Title != "" {
		s.write(` "`)
		s.write(d.Title)
		s.write(`"`)
	}
}

// indentLines prefixes each line of content. Empty lines stay empty so that
// continuation blocks do not carry trailing whitespace.
func indentLines(content, firstPrefix, prefix string) string {
	if content == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		p := prefix
		if i == 0 {
			p = firstPrefix
		}
		if line == "" && i > 0 {
			continue
		}
		lines[i] = p + line
	}
	return strings.Join(lines, "\n")
}
