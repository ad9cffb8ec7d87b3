package cmark

import (
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
)

// writeCustom hands the node a writer handle under a custom frame that
// inherits its newline strategy from the enclosing frame.
func (s *state) writeCustom(c ast.Custom) error {
	if c.Value == nil {
		return fmt.Errorf("%w: custom node without value", ErrUnsupportedNode)
	}
	name := c.Value.TypeName()
	if !ast.Supports(c.Value, ast.CapabilityCommonMark) {
		if s.strict() {
			return fmt.Errorf("%w: %s cannot be written as CommonMark", ErrUnsupportedNode, name)
		}
		s.addWarning(WarningUnsupportedNode, name, "custom node cannot be written as CommonMark; skipped")
		return nil
	}

	return s.ctx.withFrame(customFrame(NewlineInherit, c.Value.IsBlock()), func() error {
		if err := c.Value.WriteCommonMark(&handle{s: s, typeName: name}); err != nil {
			return fmt.Errorf("custom node %s: %w", name, err)
		}
		return nil
	})
}

// handle is the ast.MarkdownWriter given to custom nodes.
type handle struct {
	s        *state
	typeName string
}

var _ ast.MarkdownWriter = (*handle)(nil)

func (h *handle) WriteString(str string) {
	h.s.write(str)
}

func (h *handle) WriteEscaped(str string) {
	h.s.write(h.s.escape(str))
}

func (h *handle) WriteNode(n ast.Node) error {
	return h.s.writeNode(n)
}

func (h *handle) WriteContent(n ast.Node) error {
	return h.s.writeNodeContent(n)
}

func (h *handle) Indent(content string) string {
	pad := strings.Repeat(" ", h.s.opts.IndentSpaces)
	return indentLines(content, pad, pad)
}

func (h *handle) Strict() bool {
	return h.s.strict()
}

func (h *handle) Warn(message string) {
	h.s.addWarning(WarningCustomNode, h.typeName, message)
}
