package ast

// Clone returns a deep copy of n. Custom values are copied through
// CustomNode.CloneNode.
func Clone(n Node) Node {
	switch v := n.(type) {
	case Document:
		return Document(cloneNodes(v))
	case Heading:
		v.Content = cloneNodes(v.Content)
		return v
	case Paragraph:
		return Paragraph(cloneNodes(v))
	case BlockQuote:
		return BlockQuote(cloneNodes(v))
	case OrderedList:
		v.Items = cloneItems(v.Items)
		return v
	case UnorderedList:
		return UnorderedList(cloneItems(v))
	case Table:
		v.Headers = cloneNodes(v.Headers)
		if v.Alignments != nil {
			v.Alignments = append([]Alignment(nil), v.Alignments...)
		}
		if v.Rows != nil {
			rows := make([][]Node, len(v.Rows))
			for i, row := range v.Rows {
				rows[i] = cloneNodes(row)
			}
			v.Rows = rows
		}
		return v
	case Emphasis:
		return Emphasis(cloneNodes(v))
	case Strong:
		return Strong(cloneNodes(v))
	case Strikethrough:
		return Strikethrough(cloneNodes(v))
	case Link:
		v.Content = cloneNodes(v.Content)
		return v
	case ReferenceLink:
		v.Content = cloneNodes(v.Content)
		return v
	case Image:
		v.Alt = cloneNodes(v.Alt)
		return v
	case HTMLElement:
		if v.Attributes != nil {
			v.Attributes = append([]HTMLAttribute(nil), v.Attributes...)
		}
		v.Children = cloneNodes(v.Children)
		return v
	case Custom:
		if v.Value != nil {
			v.Value = v.Value.CloneNode()
		}
		return v
	default:
		// Remaining variants hold only immutable values.
		return n
	}
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Clone(n)
	}
	return out
}

func cloneItems(items []ListItem) []ListItem {
	if items == nil {
		return nil
	}
	out := make([]ListItem, len(items))
	for i, item := range items {
		if item.Number != nil {
			n := *item.Number
			item.Number = &n
		}
		item.Content = cloneNodes(item.Content)
		out[i] = item
	}
	return out
}

// Equal reports whether a and b are structurally equal. Custom values are
// compared with CustomNode.EqualNode.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Document:
		return equalNodes(x, b.(Document))
	case ThematicBreak, HardBreak, SoftBreak:
		return true
	case Heading:
		y := b.(Heading)
		return x.Level == y.Level && x.Style == y.Style && equalNodes(x.Content, y.Content)
	case CodeBlock:
		return x == b.(CodeBlock)
	case HTMLBlock:
		return x == b.(HTMLBlock)
	case LinkReferenceDefinition:
		return x == b.(LinkReferenceDefinition)
	case Paragraph:
		return equalNodes(x, b.(Paragraph))
	case BlockQuote:
		return equalNodes(x, b.(BlockQuote))
	case OrderedList:
		y := b.(OrderedList)
		return x.Start == y.Start && equalItems(x.Items, y.Items)
	case UnorderedList:
		return equalItems(x, b.(UnorderedList))
	case Table:
		return equalTables(x, b.(Table))
	case InlineCode:
		return x == b.(InlineCode)
	case Emphasis:
		return equalNodes(x, b.(Emphasis))
	case Strong:
		return equalNodes(x, b.(Strong))
	case Strikethrough:
		return equalNodes(x, b.(Strikethrough))
	case Link:
		y := b.(Link)
		return x.URL == y.URL && x.Title == y.Title && equalNodes(x.Content, y.Content)
	case ReferenceLink:
		y := b.(ReferenceLink)
		return x.Label == y.Label && equalNodes(x.Content, y.Content)
	case Image:
		y := b.(Image)
		return x.URL == y.URL && x.Title == y.Title && equalNodes(x.Alt, y.Alt)
	case Autolink:
		return x == b.(Autolink)
	case ExtendedAutolink:
		return x == b.(ExtendedAutolink)
	case HTMLElement:
		return equalElements(x, b.(HTMLElement))
	case Text:
		return x == b.(Text)
	case Custom:
		y := b.(Custom)
		if x.Value == nil || y.Value == nil {
			return x.Value == nil && y.Value == nil
		}
		return x.Value.EqualNode(y.Value)
	default:
		return false
	}
}

func equalNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalItems(a, b []ListItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Kind != y.Kind || x.Status != y.Status {
			return false
		}
		if (x.Number == nil) != (y.Number == nil) {
			return false
		}
		if x.Number != nil && *x.Number != *y.Number {
			return false
		}
		if !equalNodes(x.Content, y.Content) {
			return false
		}
	}
	return true
}

func equalTables(a, b Table) bool {
	if !equalNodes(a.Headers, b.Headers) || len(a.Alignments) != len(b.Alignments) || len(a.Rows) != len(b.Rows) {
		return false
	}
	for i := range a.Alignments {
		if a.Alignments[i] != b.Alignments[i] {
			return false
		}
	}
	for i := range a.Rows {
		if !equalNodes(a.Rows[i], b.Rows[i]) {
			return false
		}
	}
	return true
}

func equalElements(a, b HTMLElement) bool {
	if a.Tag != b.Tag || a.SelfClosing != b.SelfClosing || len(a.Attributes) != len(b.Attributes) {
		return false
	}
	for i := range a.Attributes {
		if a.Attributes[i] != b.Attributes[i] {
			return false
		}
	}
	return equalNodes(a.Children, b.Children)
}
