package mapping

import (
	"fmt"
	"strings"

	"github.com/promoops/campaigner/pkg/types"
)

// Record is one mapping row from the Infra board: a friendly field
// name bound to a column ID for one parameter level.
type Record struct {
	FFN   string
	Level types.ParamLevel
	CID   string
	Kind  string
}

// Table holds the resolved field mappings for one pipeline run. It is
// a pure function of the Infra snapshot and is never mutated after
// Build returns.
type Table struct {
	forward map[types.ParamLevel]map[string]Record
	ordered map[types.ParamLevel][]Record // infra board insertion order
}

var validLevels = map[types.ParamLevel]bool{
	types.LevelCampaign:      true,
	types.LevelRound:         true,
	types.LevelTheme:         true,
	types.LevelOffer:         true,
	types.LevelConfiguration: true,
}

// Build constructs the mapping tables from the Infra snapshot. A
// mapping item missing its level or column ID cell is a malformed
// snapshot and returns an error.
func Build(infra *types.Snapshot) (*Table, error) {
	t := &Table{
		forward: make(map[types.ParamLevel]map[string]Record),
		ordered: make(map[types.ParamLevel][]Record),
	}

	for _, item := range infra.Items() {
		levelCell, ok := item.Cell(infraColLevel)
		if !ok || strings.TrimSpace(levelCell.Text) == "" {
			return nil, fmt.Errorf("infra mapping %q: missing level column", item.Name)
		}
		cidCell, ok := item.Cell(infraColColumnID)
		if !ok || strings.TrimSpace(cidCell.Text) == "" {
			return nil, fmt.Errorf("infra mapping %q: missing column_id column", item.Name)
		}

		level := types.ParamLevel(strings.ToLower(strings.TrimSpace(levelCell.Text)))
		if !validLevels[level] {
			return nil, fmt.Errorf("infra mapping %q: unknown level %q", item.Name, levelCell.Text)
		}

		rec := Record{
			FFN:   item.Name,
			Level: level,
			CID:   strings.TrimSpace(cidCell.Text),
		}
		if kindCell, ok := item.Cell(infraColKind); ok {
			rec.Kind = strings.ToLower(strings.TrimSpace(kindCell.Text))
		}

		if t.forward[level] == nil {
			t.forward[level] = make(map[string]Record)
		}
		if _, dup := t.forward[level][rec.FFN]; dup {
			return nil, fmt.Errorf("infra mapping %q: duplicate for level %s", item.Name, level)
		}
		t.forward[level][rec.FFN] = rec
		t.ordered[level] = append(t.ordered[level], rec)
	}

	return t, nil
}

// CID resolves a friendly field name to its column ID for a level. A
// false return means the field is not configured for this deployment,
// which callers must treat as an optional-feature signal, not a fault.
func (t *Table) CID(level types.ParamLevel, ffn string) (string, bool) {
	rec, ok := t.forward[level][ffn]
	return rec.CID, ok
}

// Record returns the full mapping record for cross-referencing.
func (t *Table) Record(level types.ParamLevel, ffn string) (Record, bool) {
	rec, ok := t.forward[level][ffn]
	return rec, ok
}

// Markets returns every market-kind record configured for a level, in
// Infra board insertion order. The order is load-bearing: it fixes the
// regulation ordering for the whole run.
func (t *Table) Markets(level types.ParamLevel) []Record {
	var out []Record
	for _, rec := range t.ordered[level] {
		if rec.Kind == KindMarket {
			out = append(out, rec)
		}
	}
	return out
}
