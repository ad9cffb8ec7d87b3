package ast

// ListItemKind distinguishes list item flavours.
type ListItemKind int

const (
	ListItemUnordered ListItemKind = iota
	ListItemOrdered
	ListItemTask
)

// TaskStatus is the checkbox state of a task item.
type TaskStatus int

const (
	TaskUnchecked TaskStatus = iota
	TaskChecked
)

// ListItem is one entry of an OrderedList or UnorderedList.
//
// Number is only meaningful for ordered items: when set, the item uses it and
// the following automatically numbered siblings continue from Number+1.
type ListItem struct {
	Kind    ListItemKind
	Number  *int
	Status  TaskStatus
	Content []Node
}

// Item returns an unordered list item.
func Item(content ...Node) ListItem {
	return ListItem{Kind: ListItemUnordered, Content: content}
}

// OrderedItem returns an ordered item numbered automatically.
func OrderedItem(content ...Node) ListItem {
	return ListItem{Kind: ListItemOrdered, Content: content}
}

// NumberedItem returns an ordered item with an explicit number.
func NumberedItem(number int, content ...Node) ListItem {
	n := number
	return ListItem{Kind: ListItemOrdered, Number: &n, Content: content}
}

// Task returns a task list item.
func Task(status TaskStatus, content ...Node) ListItem {
	return ListItem{Kind: ListItemTask, Status: status, Content: content}
}
