package ast

// HTMLAttribute is a single name/value pair. Names are not required to be
// unique within an element.
type HTMLAttribute struct {
	Name  string
	Value string
}

// HTMLElement is an inline HTML element with ordered attributes.
type HTMLElement struct {
	Tag         string
	Attributes  []HTMLAttribute
	Children    []Node
	SelfClosing bool
}
