package cmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
	"github.com/rgonek/cmark-writer/htmlrender"
)

// writeHTMLElement writes inline raw HTML through the HTML renderer. Names
// containing angle brackets are rejected in strict mode and written as
// literal text in lenient mode.
func (s *state) writeHTMLElement(el ast.HTMLElement) error {
	if err := s.checkHTMLNames(el); err != nil {
		if s.strict() {
			return err
		}
		s.addWarning(WarningInvalidHTML, string(ast.KindHTMLElement), err.Error())
		return s.writeHTMLAsText(el)
	}
	return s.writeHTMLFallback(el)
}

func (s *state) checkHTMLNames(el ast.HTMLElement) error {
	if strings.ContainsAny(el.Tag, "<>") {
		return fmt.Errorf("%w: %q", ErrInvalidHTMLTag, el.Tag)
	}
	for _, attr := range el.Attributes {
		if strings.ContainsAny(attr.Name, "<>") {
			return fmt.Errorf("%w: %q", ErrInvalidHTMLAttribute, attr.Name)
		}
	}
	return nil
}

// writeHTMLAsText writes the element's markup escaped, with its children
// rendered as markdown between the literal tags.
func (s *state) writeHTMLAsText(el ast.HTMLElement) error {
	var open strings.Builder
	open.WriteString("<")
	open.WriteString(el.Tag)
	for _, attr := range el.Attributes {
		fmt.Fprintf(&open, " %s=\"%s\"", attr.Name, attr.Value)
	}
	if el.SelfClosing {
		open.WriteString(" />")
		s.write(Escape(open.String()))
		return nil
	}
	open.WriteString(">")
	s.write(Escape(open.String()))
	if err := s.writeInlineRun(el.Children); err != nil {
		return err
	}
	s.write(Escape("</" + el.Tag + ">"))
	return nil
}

// writeHTMLFallback renders n with the HTML renderer and writes the result
// without its trailing line break. A lenient renderer repairs unsafe names
// and void elements with children; each repair is reported as a warning.
func (s *state) writeHTMLFallback(n ast.Node) error {
	if !s.html.Options().Strict() {
		for _, problem := range s.htmlProblems(n) {
			s.addWarning(WarningInvalidHTML, string(ast.KindHTMLElement), problem.Error())
		}
	}
	out, err := s.html.Render(n)
	if err != nil {
		return fallbackError(err)
	}
	s.write(strings.TrimRight(out, "\n"))
	return nil
}

// htmlProblems lists the elements under n that the renderer cannot emit as
// given. Disallowed tags are skipped.
func (s *state) htmlProblems(n ast.Node) []error {
	var problems []error
	ast.Walk(n, func(n ast.Node, _ int) bool {
		// Image alt is rendered as plain text.
		if _, ok := n.(ast.Image); ok {
			return false
		}
		el, ok := n.(ast.HTMLElement)
		if !ok || s.html.Disallowed(el.Tag) {
			return true
		}
		if !htmlrender.IsSafeTagName(el.Tag) {
			problems = append(problems, fmt.Errorf("%w: %q", ErrInvalidHTMLTag, el.Tag))
			return true
		}
		for _, attr := range el.Attributes {
			if !htmlrender.IsSafeAttributeName(attr.Name) {
				problems = append(problems, fmt.Errorf("%w: %q", ErrInvalidHTMLAttribute, attr.Name))
				return true
			}
		}
		if !el.SelfClosing && len(el.Children) > 0 && htmlrender.IsVoidElement(el.Tag) {
			problems = append(problems, fmt.Errorf("%w: void element <%s> has children", ErrInvalidStructure, el.Tag))
		}
		return true
	})
	return problems
}

func fallbackError(err error) error {
	switch {
	case errors.Is(err, htmlrender.ErrInvalidTag):
		return fmt.Errorf("%w: %w", ErrInvalidHTMLTag, err)
	case errors.Is(err, htmlrender.ErrInvalidAttribute):
		return fmt.Errorf("%w: %w", ErrInvalidHTMLAttribute, err)
	case errors.Is(err, htmlrender.ErrVoidElementChildren):
		return fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	default:
		return fmt.Errorf("%w: %w", ErrHTMLFallback, err)
	}
}
