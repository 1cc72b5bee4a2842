package selection

import (
	"encoding/json"
	"fmt"
)

// AnchorKind identifies which variant an Anchor holds.
type AnchorKind int

const (
	// AnchorText references a character position inside a block node.
	AnchorText AnchorKind = iota
	// AnchorTableCell references a character position inside a table cell.
	AnchorTableCell
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorText:
		return "Text"
	case AnchorTableCell:
		return "TableCell"
	default:
		return "Unknown"
	}
}

// Anchor is a stable reference to a position in the document: either a text
// position (node index + character offset) or a table-cell position (table
// node index, row, column, character offset). Offsets are byte offsets into
// the node's encoded text.
type Anchor struct {
	Kind AnchorKind

	// Text anchor fields.
	NodeIndex int

	// Table-cell anchor fields.
	TableNodeIndex int
	Row            int
	Col            int

	// CharOffset applies to both variants.
	CharOffset int
}

// TextAnchor returns an anchor referencing a character position in the node
// at nodeIndex.
func TextAnchor(nodeIndex, charOffset int) Anchor {
	return Anchor{Kind: AnchorText, NodeIndex: nodeIndex, CharOffset: charOffset}
}

// CellAnchor returns an anchor referencing a character position inside a
// table cell.
func CellAnchor(tableNodeIndex, row, col, charOffset int) Anchor {
	return Anchor{
		Kind:           AnchorTableCell,
		TableNodeIndex: tableNodeIndex,
		Row:            row,
		Col:            col,
		CharOffset:     charOffset,
	}
}

// Range is a selection expressed as a start/end pair of anchors. Start and
// end are not required to be ordered; cross-node ranges are permitted.
type Range struct {
	Start Anchor
	End   Anchor
}

// textAnchorJSON and cellAnchorJSON mirror the externally tagged wire shape:
// {"Text":{...}} or {"TableCell":{...}}.
type textAnchorJSON struct {
	NodeIndex  int `json:"node_index"`
	CharOffset int `json:"char_offset"`
}

type cellAnchorJSON struct {
	TableNodeIndex int `json:"table_node_index"`
	Row            int `json:"row"`
	Col            int `json:"col"`
	CharOffset     int `json:"char_offset"`
}

// MarshalJSON encodes the anchor as an externally tagged object.
func (a Anchor) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnchorTableCell:
		return json.Marshal(map[string]cellAnchorJSON{
			"TableCell": {
				TableNodeIndex: a.TableNodeIndex,
				Row:            a.Row,
				Col:            a.Col,
				CharOffset:     a.CharOffset,
			},
		})
	default:
		return json.Marshal(map[string]textAnchorJSON{
			"Text": {NodeIndex: a.NodeIndex, CharOffset: a.CharOffset},
		})
	}
}

// UnmarshalJSON decodes an externally tagged anchor object.
func (a *Anchor) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("decoding anchor: %w", err)
	}
	if raw, ok := tagged["Text"]; ok {
		var t textAnchorJSON
		if err := json.Unmarshal(raw, &t); err != nil {
			return fmt.Errorf("decoding text anchor: %w", err)
		}
		*a = TextAnchor(t.NodeIndex, t.CharOffset)
		return nil
	}
	if raw, ok := tagged["TableCell"]; ok {
		var c cellAnchorJSON
		if err := json.Unmarshal(raw, &c); err != nil {
			return fmt.Errorf("decoding table-cell anchor: %w", err)
		}
		*a = CellAnchor(c.TableNodeIndex, c.Row, c.Col, c.CharOffset)
		return nil
	}
	return fmt.Errorf("anchor has no recognized variant tag")
}
