package cmark

import (
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
)

// RenderingMode describes the kind of container content is written into.
type RenderingMode int

const (
	RenderBlock RenderingMode = iota
	RenderInlineWithBlocks
	RenderPureInline
	RenderTableCell
	RenderListItem
	RenderCustom
)

func (m RenderingMode) String() string {
	switch m {
	case RenderBlock:
		return "Block"
	case RenderInlineWithBlocks:
		return "InlineWithBlocks"
	case RenderPureInline:
		return "PureInline"
	case RenderTableCell:
		return "TableCell"
	case RenderListItem:
		return "ListItem"
	case RenderCustom:
		return "Custom"
	default:
		return fmt.Sprintf("RenderingMode(%d)", int(m))
	}
}

// NewlineStrategy decides whether written content receives a trailing line
// break.
type NewlineStrategy int

const (
	NewlineNone NewlineStrategy = iota
	NewlineConditional
	NewlineAlways
	NewlineInherit
	NewlineSmart
)

func (s NewlineStrategy) String() string {
	switch s {
	case NewlineNone:
		return "None"
	case NewlineConditional:
		return "Conditional"
	case NewlineAlways:
		return "Always"
	case NewlineInherit:
		return "Inherit"
	case NewlineSmart:
		return "Smart"
	default:
		return fmt.Sprintf("NewlineStrategy(%d)", int(s))
	}
}

// Frame is one level of the rendering context stack.
type Frame struct {
	Mode         RenderingMode
	Strategy     NewlineStrategy
	AllowsBlocks bool
	ContainerEnd bool
}

func blockFrame() Frame {
	return Frame{Mode: RenderBlock, Strategy: NewlineAlways, AllowsBlocks: true}
}

func inlineWithBlocksFrame() Frame {
	return Frame{Mode: RenderInlineWithBlocks, Strategy: NewlineSmart, AllowsBlocks: true}
}

func pureInlineFrame() Frame {
	return Frame{Mode: RenderPureInline, Strategy: NewlineNone}
}

func tableCellFrame() Frame {
	return Frame{Mode: RenderTableCell, Strategy: NewlineSmart}
}

func listItemFrame() Frame {
	return Frame{Mode: RenderListItem, Strategy: NewlineConditional, AllowsBlocks: true}
}

func customFrame(strategy NewlineStrategy, allowsBlocks bool) Frame {
	return Frame{Mode: RenderCustom, Strategy: strategy, AllowsBlocks: allowsBlocks}
}

// contextStack is owned by a single render. It always holds at least the
// root frame.
type contextStack struct {
	frames []Frame
}

func newContextStack(root Frame) *contextStack {
	return &contextStack{frames: []Frame{root}}
}

func (c *contextStack) push(f Frame) {
	c.frames = append(c.frames, f)
}

// pop removes the top frame. The root frame is never removed.
func (c *contextStack) pop() {
	if len(c.frames) > 1 {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

func (c *contextStack) current() Frame {
	return c.frames[len(c.frames)-1]
}

func (c *contextStack) depth() int {
	return len(c.frames)
}

// withFrame runs fn with f pushed and pops it on every exit path.
func (c *contextStack) withFrame(f Frame, fn func() error) error {
	c.push(f)
	defer c.pop()
	return fn()
}

// shouldAddTrailingNewline decides for the top frame whether content, just
// produced for node, needs a trailing line break. node may be nil.
func (c *contextStack) shouldAddTrailingNewline(content string, node ast.Node) bool {
	return c.decide(len(c.frames)-1, content, node)
}

func (c *contextStack) decide(idx int, content string, node ast.Node) bool {
	f := c.frames[idx]
	endsWithBreak := strings.HasSuffix(content, "\n")

	switch f.Strategy {
	case NewlineNone:
		return false
	case NewlineAlways:
		return true
	case NewlineConditional:
		return !endsWithBreak
	case NewlineInherit:
		if idx > 0 {
			return c.decide(idx-1, content, node)
		}
		switch f.Mode {
		case RenderBlock:
			return true
		case RenderInlineWithBlocks:
			return !endsWithBreak
		default:
			return false
		}
	case NewlineSmart:
		return smartDecision(f, endsWithBreak, node)
	default:
		return false
	}
}

func smartDecision(f Frame, endsWithBreak bool, node ast.Node) bool {
	if endsWithBreak && !f.ContainerEnd {
		return false
	}

	switch f.Mode {
	case RenderBlock:
		return true
	case RenderInlineWithBlocks:
		if node != nil && ast.IsBlock(node) {
			return true
		}
		return f.ContainerEnd && !endsWithBreak
	case RenderPureInline:
		return false
	case RenderTableCell:
		return f.ContainerEnd && !endsWithBreak
	case RenderListItem, RenderCustom:
		return !endsWithBreak
	default:
		return false
	}
}

// validateNode rejects block nodes in frames that only accept inline content.
func (c *contextStack) validateNode(node ast.Node) error {
	f := c.current()
	if !f.AllowsBlocks && ast.IsBlock(node) {
		return fmt.Errorf("%w: %s is not allowed in %s context", ErrInvalidStructure, ast.TypeName(node), f.Mode)
	}
	return nil
}
