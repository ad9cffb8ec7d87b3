package htmlrender

import (
	"testing"

	"github.com/rgonek/cmark-writer/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeNames(t *testing.T) {
	for _, name := range []string{"div", "H1", "my-widget", "x2"} {
		assert.True(t, IsSafeTagName(name), name)
	}
	for _, name := range []string{"", "1div", "-x", "a b", "a>", "ü"} {
		assert.False(t, IsSafeTagName(name), name)
	}

	for _, name := range []string{"class", "data-x", "aria-label", "@click", ":href"} {
		assert.True(t, IsSafeAttributeName(name), name)
	}
	for _, name := range []string{"", "a b", "on\"x", "a=b", "x>", "a/b"} {
		assert.False(t, IsSafeAttributeName(name), name)
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "img", "hr", "input", "wbr"} {
		assert.True(t, IsVoidElement(tag), tag)
	}
	for _, tag := range []string{"span", "div", "my-br", ""} {
		assert.False(t, IsVoidElement(tag), tag)
	}
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name     string
		el       ast.HTMLElement
		expected string
	}{
		{
			"with attributes",
			ast.HTMLElement{Tag: "span", Attributes: []ast.HTMLAttribute{{Name: "class", Value: "a\"b"}}, Children: []ast.Node{ast.Text("x")}},
			"<span class=\"a&#34;b\">x</span>",
		},
		{
			"nested markup",
			ast.HTMLElement{Tag: "kbd", Children: []ast.Node{ast.Strong{ast.Text("K")}}},
			"<kbd><strong>K</strong></kbd>",
		},
		{
			"void element",
			ast.HTMLElement{Tag: "br", SelfClosing: true},
			"<br/>",
		},
		{
			"self closing custom element",
			ast.HTMLElement{Tag: "my-widget", Attributes: []ast.HTMLAttribute{{Name: "data-x", Value: "a&b"}}, SelfClosing: true},
			"<my-widget data-x=\"a&amp;b\" />",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderHTML(t, Options{}, tt.el))
		})
	}
}

func TestRenderDisallowedTags(t *testing.T) {
	script := ast.HTMLElement{Tag: "script", Children: []ast.Node{ast.Text("x")}}
	assert.Equal(t, "&lt;script&gt;x&lt;/script&gt;", renderHTML(t, Options{GFM: true}, script))
	assert.Equal(t, "<script>x</script>", renderHTML(t, Options{}, script))

	upper := ast.HTMLElement{Tag: "IFRAME", SelfClosing: true}
	assert.Equal(t, "&lt;IFRAME /&gt;", renderHTML(t, Options{GFM: true}, upper))

	custom := Options{GFM: true, DisallowedTags: []string{"marquee"}}
	assert.Equal(t, "<script>x</script>", renderHTML(t, custom, script))
}

func TestRenderInvalidNames(t *testing.T) {
	badTag := ast.HTMLElement{Tag: "bad tag", Children: []ast.Node{ast.Text("x")}}
	badAttr := ast.HTMLElement{Tag: "span", Attributes: []ast.HTMLAttribute{{Name: "on\"x", Value: "v"}}}

	_, err := newTestRenderer(t, Options{}).Render(badTag)
	require.ErrorIs(t, err, ErrInvalidTag)
	assert.Contains(t, err.Error(), `"bad tag"`)

	_, err = newTestRenderer(t, Options{}).Render(badAttr)
	require.ErrorIs(t, err, ErrInvalidAttribute)

	lenient := Options{Mode: ModeLenient}
	assert.Equal(t, "&lt;bad tag&gt;x&lt;/bad tag&gt;", renderHTML(t, lenient, badTag))
	assert.Equal(t, "&lt;span on&#34;x=&#34;v&#34;&gt;&lt;/span&gt;", renderHTML(t, lenient, badAttr))
}

func TestRenderVoidElementWithChildren(t *testing.T) {
	br := ast.HTMLElement{Tag: "br", Children: []ast.Node{ast.Text("x")}}

	_, err := newTestRenderer(t, Options{}).Render(br)
	require.ErrorIs(t, err, ErrVoidElementChildren)
	assert.Contains(t, err.Error(), "<br>")

	tests := []struct {
		name     string
		el       ast.HTMLElement
		expected string
	}{
		{"children follow element", br, "<br/>x"},
		{"nested markup", ast.HTMLElement{Tag: "img", Attributes: []ast.HTMLAttribute{{Name: "src", Value: "a.png"}}, Children: []ast.Node{ast.Emphasis{ast.Text("e")}}}, "<img src=\"a.png\"/><em>e</em>"},
		{"without children", ast.HTMLElement{Tag: "hr"}, "<hr/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderHTML(t, Options{Mode: ModeLenient}, tt.el))
		})
	}
}

func TestRendererDisallowed(t *testing.T) {
	assert.True(t, newTestRenderer(t, Options{GFM: true}).Disallowed("SCRIPT"))
	assert.False(t, newTestRenderer(t, Options{GFM: true}).Disallowed("span"))
	assert.False(t, newTestRenderer(t, Options{}).Disallowed("script"))
}
