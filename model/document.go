package model

// Document represents a complete document: an ordered sequence of nodes plus
// a set of comment threads. There is no other document-level state.
type Document struct {
	Nodes   []Node
	Threads []CommentThread
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{}
}

// NodeCount returns the number of nodes.
func (d *Document) NodeCount() int {
	return len(d.Nodes)
}

// NodeAt returns the node at index, or nil when out of range.
func (d *Document) NodeAt(index int) Node {
	if index < 0 || index >= len(d.Nodes) {
		return nil
	}
	return d.Nodes[index]
}

// InsertNode inserts a node, clamping index to [0, len].
func (d *Document) InsertNode(index int, n Node) {
	if index < 0 {
		index = 0
	}
	if index > len(d.Nodes) {
		index = len(d.Nodes)
	}
	d.Nodes = append(d.Nodes, nil)
	copy(d.Nodes[index+1:], d.Nodes[index:])
	d.Nodes[index] = n
}

// DeleteNode removes the node at index. Out-of-range indices are a no-op.
func (d *Document) DeleteNode(index int) {
	if index < 0 || index >= len(d.Nodes) {
		return
	}
	d.Nodes = append(d.Nodes[:index], d.Nodes[index+1:]...)
}

// TableAt returns the table node at the given node index, or nil when the
// index is out of range or the node is not a table.
func (d *Document) TableAt(index int) *Table {
	if index < 0 || index >= len(d.Nodes) {
		return nil
	}
	if t, ok := d.Nodes[index].(*Table); ok {
		return t
	}
	return nil
}

// FirstTableIndex returns the node index of the first table in the document.
// The second return value is false when the document has no table.
func (d *Document) FirstTableIndex() (int, bool) {
	for i, n := range d.Nodes {
		if n.Type() == NodeTypeTable {
			return i, true
		}
	}
	return 0, false
}

// Thread returns the comment thread with the given id, or nil when no thread
// matches.
func (d *Document) Thread(id string) *CommentThread {
	for i := range d.Threads {
		if d.Threads[i].ID == id {
			return &d.Threads[i]
		}
	}
	return nil
}
