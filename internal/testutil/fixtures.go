package testutil

import "github.com/promoops/campaigner/pkg/types"

// Snapshot and item builders shared across package tests.

// TextCell builds a text cell.
func TextCell(columnID, text string) types.Cell {
	return types.Cell{ColumnID: columnID, Text: text}
}

// CheckCell builds a checkbox cell.
func CheckCell(columnID string, checked bool) types.Cell {
	return types.Cell{ColumnID: columnID, Checked: checked}
}

// BuildItem builds an item from cells.
func BuildItem(id, name string, cells ...types.Cell) types.Item {
	return types.Item{ID: id, Name: name, Cells: cells}
}

// InfraItem builds one Infra board mapping record: a friendly field
// name bound to a column ID for a parameter level.
func InfraItem(ffn string, level types.ParamLevel, cid, kind string) types.Item {
	cells := []types.Cell{
		TextCell("level", string(level)),
		TextCell("column_id", cid),
	}
	if kind != "" {
		cells = append(cells, TextCell("kind", kind))
	}
	return types.Item{ID: "infra-" + cid, Name: ffn, Cells: cells}
}

// InfraSnapshot builds an Infra board snapshot from mapping records.
func InfraSnapshot(items ...types.Item) *types.Snapshot {
	return &types.Snapshot{
		BoardID: "infra",
		Name:    "Infra",
		Groups:  []types.Group{{ID: "g1", Title: "Mappings", Items: items}},
	}
}
