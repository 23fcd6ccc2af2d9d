package types

// Cell is one opaque-keyed value slot on an item. Checkbox columns use
// Checked; everything else uses Text.
type Cell struct {
	ColumnID string `json:"columnId"`
	Text     string `json:"text"`
	Checked  bool   `json:"checked,omitempty"`
}

// Item is one board record: a name plus cells keyed by column ID, and
// optionally nested sub-records.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Cells    []Cell `json:"cells"`
	Subitems []Item `json:"subitems,omitempty"`
}

// Cell returns the cell stored under the given column ID.
func (it *Item) Cell(columnID string) (Cell, bool) {
	for _, c := range it.Cells {
		if c.ColumnID == columnID {
			return c, true
		}
	}
	return Cell{}, false
}

// Group is a named collection of items within a board.
type Group struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Snapshot is a point-in-time read of a board. It is immutable for the
// duration of one pipeline run; later board mutations are never
// reflected mid-run.
type Snapshot struct {
	BoardID string  `json:"boardId"`
	Name    string  `json:"name"`
	Groups  []Group `json:"groups"`
}

// Group returns the group with the given title.
func (s *Snapshot) Group(title string) (*Group, bool) {
	for i := range s.Groups {
		if s.Groups[i].Title == title {
			return &s.Groups[i], true
		}
	}
	return nil, false
}

// Items returns every item in the snapshot, in group order.
func (s *Snapshot) Items() []Item {
	var out []Item
	for _, g := range s.Groups {
		out = append(out, g.Items...)
	}
	return out
}

// Regulation is one expanded segment key: a market, optionally
// qualified by tier and A/B variant, with its checked state.
type Regulation struct {
	Name    string `json:"name"`
	Checked bool   `json:"isChecked"`
}

// Event is the webhook payload that starts a pipeline run. Everything
// else is re-derived from snapshots.
type Event struct {
	BoardID string `json:"boardId"`
	ItemID  string `json:"itemId"`
}
