package cmark

import (
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
)

func (s *state) escape(text string) string {
	if s.opts.Escaping == EscapeNone {
		return text
	}
	return Escape(text)
}

func (s *state) writeText(t ast.Text) error {
	if err := s.checkNoNewline(t, "Text"); err != nil {
		return err
	}
	s.write(s.escape(string(t)))
	return nil
}

func (s *state) writeInlineCode(c ast.InlineCode) error {
	if err := s.checkNoNewline(c, "InlineCode"); err != nil {
		return err
	}
	s.write("`")
	s.write(s.escape(string(c)))
	s.write("`")
	return nil
}

// writeDelimited wraps children in delim on both sides.
func (s *state) writeDelimited(children []ast.Node, kind ast.Kind, delim string) error {
	return s.checkedInline(children, string(kind), func() error {
		s.write(delim)
		if err := s.writeInlineRun(children); err != nil {
			return err
		}
		s.write(delim)
		return nil
	})
}

// writeStrikethrough degrades to the bare children unless the GFM
// strikethrough extension is enabled.
func (s *state) writeStrikethrough(children ast.Strikethrough) error {
	if s.opts.GFM.Enabled && s.opts.GFM.Strikethrough {
		return s.writeDelimited(children, ast.KindStrikethrough, "~~")
	}
	return s.checkedInline(children, string(ast.KindStrikethrough), func() error {
		return s.writeInlineRun(children)
	})
}

func (s *state) writeLink(l ast.Link) error {
	return s.checkedInline(l.Content, string(ast.KindLink), func() error {
		s.write("[")
		if err := s.writeInlineRun(l.Content); err != nil {
			return err
		}
		s.write("](")
		s.writeDestination(l.URL, l.Title)
		s.write(")")
		return nil
	})
}

func (s *state) writeImage(img ast.Image) error {
	return s.checkedInline(img.Alt, string(ast.KindImage), func() error {
		s.write("![")
		if err := s.writeInlineRun(img.Alt); err != nil {
			return err
		}
		s.write("](")
		s.writeDestination(img.URL, img.Title)
		s.write(")")
		return nil
	})
}

func (s *state) writeDestination(url, title string) {
	s.write(url)
	if title != "" {
		s.write(` "`)
		s.write(strings.ReplaceAll(title, `"`, `\"`))
		s.write(`"`)
	}
}

// writeReferenceLink writes the shortcut form [label] when the content is
// empty or is the label itself, and [content][label] otherwise.
func (s *state) writeReferenceLink(r ast.ReferenceLink) error {
	return s.checkedInline(r.Content, string(ast.KindReferenceLink), func() error {
		if isShortcut(r) {
			s.write("[")
			s.write(r.Label)
			s.write("]")
			return nil
		}
		s.write("[")
		if err := s.writeInlineRun(r.Content); err != nil {
			return err
		}
		s.write("][")
		s.write(r.Label)
		s.write("]")
		return nil
	})
}

func isShortcut(r ast.ReferenceLink) bool {
	if len(r.Content) == 0 {
		return true
	}
	if len(r.Content) != 1 {
		return false
	}
	t, ok := r.Content[0].(ast.Text)
	return ok && string(t) == r.Label
}

// writeAutolink writes <url>. Web URLs without a scheme get https://.
func (s *state) writeAutolink(a ast.Autolink) error {
	if err := s.checkNoNewline(ast.Text(a.URL), string(ast.KindAutolink)); err != nil {
		return err
	}
	url := a.URL
	if !a.IsEmail && !strings.Contains(url, ":") {
		url = "https://" + url
	}
	s.write("<")
	s.write(url)
	s.write(">")
	return nil
}

func (s *state) writeExtendedAutolink(url ast.ExtendedAutolink) error {
	if err := s.checkNoNewline(ast.Text(url), string(ast.KindExtendedAutolink)); err != nil {
		return err
	}
	if s.opts.GFM.Enabled && s.opts.GFM.Autolinks {
		s.write(string(url))
		return nil
	}
	s.write(s.escape(string(url)))
	return nil
}

func (s *state) writeHardBreak() {
	if s.opts.HardBreakStyle == HardBreakSpaces {
		s.write("  \n")
		return
	}
	s.write("\\\n")
}

// checkedInline checks every child for line breaks once and runs fn with the
// leaf checks of the subtree suppressed.
func (s *state) checkedInline(children []ast.Node, context string, fn func() error) error {
	for _, child := range children {
		if err := s.checkNoNewline(child, context); err != nil {
			return err
		}
	}
	s.checked++
	defer func() { s.checked-- }()
	return fn()
}

// checkNoNewline fails in strict mode when n carries a line break. Lenient
// mode records a warning and lets the break through.
func (s *state) checkNoNewline(n ast.Node, context string) error {
	if s.checked > 0 || !containsNewline(n) {
		return nil
	}
	if s.strict() {
		return fmt.Errorf("%w: %s", ErrNewlineInInline, context)
	}
	s.addWarning(WarningInlineNewline, ast.TypeName(n),
		fmt.Sprintf("line break in %s written through", context))
	return nil
}

func containsNewline(n ast.Node) bool {
	switch v := n.(type) {
	case ast.Text:
		return strings.ContainsAny(string(v), "\r\n")
	case ast.InlineCode:
		return strings.ContainsAny(string(v), "\r\n")
	case ast.SoftBreak, ast.HardBreak:
		return true
	case ast.Emphasis:
		return anyContainsNewline(v)
	case ast.Strong:
		return anyContainsNewline(v)
	case ast.Strikethrough:
		return anyContainsNewline(v)
	case ast.Link:
		return anyContainsNewline(v.Content)
	case ast.ReferenceLink:
		return anyContainsNewline(v.Content)
	case ast.Image:
		return anyContainsNewline(v.Alt)
	case ast.HTMLElement:
		return anyContainsNewline(v.Children)
	default:
		return false
	}
}

func anyContainsNewline(nodes []ast.Node) bool {
	for _, n := range nodes {
		if containsNewline(n) {
			return true
		}
	}
	return false
}
