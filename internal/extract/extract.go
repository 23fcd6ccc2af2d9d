// Package extract pulls typed raw field values out of board items
// using the resolved column mappings. It preserves the tri-state
// optionality of every field and raises faults, not failures, for
// malformed snapshots.
package extract

import (
	"fmt"
	"strings"

	"github.com/promoops/campaigner/internal/mapping"
	"github.com/promoops/campaigner/pkg/types"
)

// Extractor reads raw entities from items. All snapshot access beyond
// the board client goes through here and the mapping table.
type Extractor struct {
	table *mapping.Table
}

// New creates an Extractor over a resolved mapping table.
func New(table *mapping.Table) *Extractor {
	return &Extractor{table: table}
}

// text reads a text field with tri-state optionality: no mapping means
// unconfigured, a missing or blank cell means empty.
func (e *Extractor) text(level types.ParamLevel, ffn string, item *types.Item) types.Opt[string] {
	cid, ok := e.table.CID(level, ffn)
	if !ok {
		return types.Unconfigured[string]()
	}
	cell, ok := item.Cell(cid)
	if !ok || strings.TrimSpace(cell.Text) == "" {
		return types.Empty[string]()
	}
	return types.Set(strings.TrimSpace(cell.Text))
}

// check reads a checkbox field with the same tri-state semantics.
func (e *Extractor) check(level types.ParamLevel, ffn string, item *types.Item) types.Opt[bool] {
	cid, ok := e.table.CID(level, ffn)
	if !ok {
		return types.Unconfigured[bool]()
	}
	cell, ok := item.Cell(cid)
	if !ok {
		return types.Empty[bool]()
	}
	return types.Set(cell.Checked)
}

// segments reads the per-segment value columns for the checked
// segments of the campaign. Segments without a column mapping at this
// level, or with a blank cell, are left out of the map.
func (e *Extractor) segments(level types.ParamLevel, item *types.Item, segs []types.Regulation) map[string]string {
	out := make(map[string]string)
	for _, seg := range segs {
		if !seg.Checked {
			continue
		}
		cid, ok := e.table.CID(level, seg.Name)
		if !ok {
			continue
		}
		cell, ok := item.Cell(cid)
		if !ok || strings.TrimSpace(cell.Text) == "" {
			continue
		}
		out[seg.Name] = strings.TrimSpace(cell.Text)
	}
	return out
}

// requireCells rejects an item with no cells at all: the snapshot
// itself is unusable, which is a fault rather than a business failure.
func requireCells(item *types.Item) error {
	if len(item.Cells) == 0 {
		return fmt.Errorf("item %q has no cells: snapshot is malformed", item.Name)
	}
	return nil
}
