package cmark

import (
	"strconv"
	"strings"

	"github.com/rgonek/cmark-writer/ast"
)

// writeUnorderedList writes one item per line with the configured bullet.
// Every item is bulleted regardless of its kind.
func (s *state) writeUnorderedList(items ast.UnorderedList) error {
	marker := string(s.opts.BulletMarker) + " "
	return s.ctx.withFrame(listItemFrame(), func() error {
		for i, item := range items {
			if i > 0 {
				s.write("\n")
			}
			if err := s.writeListItem(item, marker); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeOrderedList numbers items from Start. An item with an explicit number
// uses it, and numbering continues from there.
func (s *state) writeOrderedList(list ast.OrderedList) error {
	return s.ctx.withFrame(listItemFrame(), func() error {
		next := list.Start
		for i, item := range list.Items {
			if i > 0 {
				s.write("\n")
			}
			number := next
			if item.Number != nil {
				number = *item.Number
			}
			if err := s.writeListItem(item, strconv.Itoa(number)+". "); err != nil {
				return err
			}
			next = number + 1
		}
		return nil
	})
}

func (s *state) writeListItem(item ast.ListItem, marker string) error {
	prefix := marker
	if item.Kind == ast.ListItemTask && s.opts.GFM.Enabled && s.opts.GFM.TaskLists {
		if item.Status == ast.TaskChecked {
			prefix += "[x] "
		} else {
			prefix += "[ ] "
		}
	}

	content, err := s.listItemContent(item.Content)
	if err != nil {
		return err
	}
	if content == "" {
		s.write(strings.TrimRight(prefix, " "))
		return nil
	}

	s.write(prefix)
	s.write(indentLines(content, "", strings.Repeat(" ", len(prefix))))
	return nil
}

// listItemContent renders item children into a nested buffer. The first child
// shares the marker line; later blocks are separated by a blank line.
func (s *state) listItemContent(content []ast.Node) (string, error) {
	inner := s.nested(listItemFrame())
	for i, child := range content {
		if i > 0 {
			if ast.IsBlock(child) {
				inner.write("\n\n")
			} else {
				inner.write("\n")
			}
		}
		if err := inner.ctx.validateNode(child); err != nil {
			return "", err
		}
		if err := inner.writeNodeContent(child); err != nil {
			return "", err
		}
	}
	return inner.buf.String(), nil
}
