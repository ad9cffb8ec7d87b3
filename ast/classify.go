package ast

// IsBlock reports whether n is a block-level node.
func IsBlock(n Node) bool {
	switch v := n.(type) {
	case Document, ThematicBreak, Heading, CodeBlock, HTMLBlock, LinkReferenceDefinition,
		Paragraph, BlockQuote, OrderedList, UnorderedList, Table:
		return true
	case Custom:
		return v.Value != nil && v.Value.IsBlock()
	default:
		return false
	}
}

// IsInline reports whether n is an inline node.
func IsInline(n Node) bool {
	switch v := n.(type) {
	case InlineCode, Emphasis, Strong, Strikethrough, Link, ReferenceLink, Image,
		Autolink, ExtendedAutolink, HTMLElement, HardBreak, SoftBreak, Text:
		return true
	case Custom:
		return v.Value != nil && !v.Value.IsBlock()
	default:
		return false
	}
}

// ContainsBlock reports whether any of nodes is block-level.
func ContainsBlock(nodes []Node) bool {
	for _, n := range nodes {
		if IsBlock(n) {
			return true
		}
	}
	return false
}

// PlainText concatenates the text carried by Text, InlineCode and the
// children of inline containers. Other nodes contribute nothing.
func PlainText(nodes []Node) string {
	var out []byte
	var walk func([]Node)
	walk = func(ns []Node) {
		for _, n := range ns {
			switch v := n.(type) {
			case Text:
				out = append(out, v...)
			case InlineCode:
				out = append(out, v...)
			case Emphasis:
				walk(v)
			case Strong:
				walk(v)
			case Strikethrough:
				walk(v)
			case Link:
				walk(v.Content)
			case ReferenceLink:
				walk(v.Content)
			case HTMLElement:
				walk(v.Children)
			}
		}
	}
	walk(nodes)
	return string(out)
}
