package assemble

import "github.com/promoops/campaigner/pkg/types"

// Labels of the synthetic date rows appended to a parameters table.
const (
	rowStartDate = "Start Date"
	rowEndDate   = "End Date"
	headerLabel  = "Parameter"
)

// buildParameters emits the round's parameters table: a header row of
// segment names, one row per use-as-communication parameter matching
// the round type, then synthetic start and end date rows unless the
// round suppresses them. start and end are the round's resolved
// output dates.
func buildParameters(r types.Round, start, end string, segments []string, params []types.ThemeParam, offers []types.Offer) [][]string {
	header := append([]string{headerLabel}, segments...)
	table := [][]string{header}

	for _, p := range params {
		if p.UseAsComm && p.RoundType == r.Type {
			table = append(table, paramRow(p, segments))
		}
	}
	for _, o := range offers {
		if o.UseAsComm && o.RoundType == r.Type {
			table = append(table, paramRow(o.ThemeParam, segments))
		}
	}

	if !r.SuppressDates {
		table = append(table,
			dateRow(rowStartDate, start, segments),
			dateRow(rowEndDate, end, segments))
	}
	return table
}

func paramRow(p types.ThemeParam, segments []string) []string {
	row := make([]string, 0, len(segments)+1)
	row = append(row, p.Name)
	for _, seg := range segments {
		row = append(row, p.Segments[seg])
	}
	return row
}

func dateRow(label, value string, segments []string) []string {
	row := make([]string, 0, len(segments)+1)
	row = append(row, label)
	for range segments {
		row = append(row, value)
	}
	return row
}
