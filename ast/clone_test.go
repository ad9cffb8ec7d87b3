package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() Document {
	return Document{
		Heading{Level: 2, Content: []Node{Text("Title")}},
		Paragraph{Text("a "), Strong{Emphasis{Text("b")}}, Link{URL: "u", Content: []Node{Text("c")}}},
		OrderedList{Start: 3, Items: []ListItem{NumberedItem(7, Paragraph{Text("x")}), OrderedItem(Paragraph{Text("y")})}},
		UnorderedList{Task(TaskChecked, Paragraph{Text("done")})},
		Table{
			Headers:    []Node{Text("h1"), Text("h2")},
			Alignments: []Alignment{AlignLeft, AlignRight},
			Rows:       [][]Node{{Text("a"), InlineCode("b")}},
		},
		HTMLElement{Tag: "span", Attributes: []HTMLAttribute{{Name: "class", Value: "x"}}, Children: []Node{Text("in")}},
		Custom{Value: &note{text: "n", block: true}},
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleTree()
	clone := Clone(orig).(Document)

	if diff := cmp.Diff(orig, clone, cmp.AllowUnexported(note{})); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone[1].(Paragraph)[0] = Text("changed")
	*clone[2].(OrderedList).Items[0].Number = 99
	clone[4].(Table).Rows[0][0] = Text("changed")
	clone[4].(Table).Alignments[0] = AlignCenter
	clone[5].(HTMLElement).Attributes[0].Value = "changed"
	clone[6].(Custom).Value.(*note).text = "changed"

	assert.Equal(t, Text("a "), orig[1].(Paragraph)[0])
	assert.Equal(t, 7, *orig[2].(OrderedList).Items[0].Number)
	assert.Equal(t, Text("a"), orig[4].(Table).Rows[0][0])
	assert.Equal(t, AlignLeft, orig[4].(Table).Alignments[0])
	assert.Equal(t, "x", orig[5].(HTMLElement).Attributes[0].Value)
	assert.Equal(t, "n", orig[6].(Custom).Value.(*note).text)
}

func TestCloneKeepsNil(t *testing.T) {
	assert.Nil(t, Clone(Paragraph(nil)).(Paragraph))
	assert.Nil(t, Clone(nil))
	assert.Equal(t, Custom{}, Clone(Custom{}))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Node
		equal bool
	}{
		{"same tree", sampleTree(), sampleTree(), true},
		{"clone", sampleTree(), Clone(sampleTree()), true},
		{"both nil", nil, nil, true},
		{"one nil", Text("x"), nil, false},
		{"different kinds", Text("x"), InlineCode("x"), false},
		{"text", Text("x"), Text("y"), false},
		{"heading level", Heading{Level: 1}, Heading{Level: 2}, false},
		{"heading style", Heading{Level: 1}, Heading{Level: 1, Style: HeadingSetext}, false},
		{"list numbers", UnorderedList{NumberedItem(1)}, UnorderedList{NumberedItem(2)}, false},
		{"list number presence", UnorderedList{OrderedItem()}, UnorderedList{NumberedItem(1)}, false},
		{"task status", UnorderedList{Task(TaskChecked)}, UnorderedList{Task(TaskUnchecked)}, false},
		{"table alignments", Table{Alignments: []Alignment{AlignLeft}}, Table{Alignments: []Alignment{AlignRight}}, false},
		{"table rows", Table{Rows: [][]Node{{Text("a")}}}, Table{}, false},
		{"element attributes", HTMLElement{Tag: "a", Attributes: []HTMLAttribute{{Name: "x"}}}, HTMLElement{Tag: "a"}, false},
		{"breaks", HardBreak{}, HardBreak{}, true},
		{"custom equal", Custom{Value: &note{text: "a"}}, Custom{Value: &note{text: "a"}}, true},
		{"custom differs", Custom{Value: &note{text: "a"}}, Custom{Value: &note{text: "b"}}, false},
		{"custom nil value", Custom{}, Custom{Value: &note{}}, false},
		{"custom both nil", Custom{}, Custom{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a))
		})
	}
}

type visit struct {
	Kind  Kind
	Depth int
}

func TestWalkOrder(t *testing.T) {
	doc := Document{
		Heading{Level: 1, Content: []Node{Text("h")}},
		UnorderedList{Item(Paragraph{Emphasis{Text("x")}})},
	}

	var got []visit
	Walk(doc, func(n Node, depth int) bool {
		got = append(got, visit{n.Kind(), depth})
		return true
	})

	want := []visit{
		{KindDocument, 1},
		{KindHeading, 2},
		{KindText, 3},
		{KindUnorderedList, 2},
		{KindParagraph, 3},
		{KindEmphasis, 4},
		{KindText, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, Depth(doc))
}

func TestWalkSkipsChildren(t *testing.T) {
	doc := Document{BlockQuote{Paragraph{Text("deep")}}, Paragraph{Text("shallow")}}

	var kinds []Kind
	Walk(doc, func(n Node, _ int) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindBlockQuote
	})
	assert.Equal(t, []Kind{KindDocument, KindBlockQuote, KindParagraph, KindText}, kinds)
}

func TestChildren(t *testing.T) {
	table := Table{Headers: []Node{Text("a"), Text("b")}, Rows: [][]Node{{Text("c"), Text("d")}}}
	require.Len(t, Children(table), 4)
	assert.Equal(t, Text("c"), Children(table)[2])

	list := OrderedList{Items: []ListItem{OrderedItem(Paragraph{}, Paragraph{}), OrderedItem(Paragraph{})}}
	assert.Len(t, Children(list), 3)

	assert.Nil(t, Children(Text("x")))
	assert.Nil(t, Children(Custom{Value: &note{}}))
	assert.Equal(t, 0, Depth(nil))
}
