package ast

// WalkFunc is called for every node visited by Walk. depth is 1 for the root.
// Returning false skips the node's children.
type WalkFunc func(n Node, depth int) bool

// Walk visits n and its descendants depth-first, parents before children.
// Custom values are opaque and are not descended into.
func Walk(n Node, fn WalkFunc) {
	walk(n, 1, fn)
}

func walk(n Node, depth int, fn WalkFunc) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range Children(n) {
		walk(child, depth+1, fn)
	}
}

// Children returns the direct child nodes of n. List items and table cells
// are flattened in document order.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Document:
		return v
	case Heading:
		return v.Content
	case Paragraph:
		return v
	case BlockQuote:
		return v
	case OrderedList:
		return itemChildren(v.Items)
	case UnorderedList:
		return itemChildren(v)
	case Table:
		out := append([]Node(nil), v.Headers...)
		for _, row := range v.Rows {
			out = append(out, row...)
		}
		return out
	case Emphasis:
		return v
	case Strong:
		return v
	case Strikethrough:
		return v
	case Link:
		return v.Content
	case ReferenceLink:
		return v.Content
	case Image:
		return v.Alt
	case HTMLElement:
		return v.Children
	default:
		return nil
	}
}

func itemChildren(items []ListItem) []Node {
	var out []Node
	for _, item := range items {
		out = append(out, item.Content...)
	}
	return out
}

// Depth returns the number of levels in the tree rooted at n.
func Depth(n Node) int {
	deepest := 0
	Walk(n, func(_ Node, depth int) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}
