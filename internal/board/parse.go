package board

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/promoops/campaigner/pkg/types"
)

// The board API returns loosely structured JSON whose business columns
// are opaque IDs; gjson traversal keeps the parsing tolerant of the
// extra fields the platform attaches per deployment.

func parseSnapshot(body []byte) (*types.Snapshot, error) {
	root := gjson.GetBytes(body, "board")
	if !root.Exists() {
		return nil, fmt.Errorf("board payload missing board object")
	}

	snap := &types.Snapshot{
		BoardID: root.Get("id").String(),
		Name:    root.Get("name").String(),
	}
	for _, g := range root.Get("groups").Array() {
		snap.Groups = append(snap.Groups, parseGroup(g))
	}
	return snap, nil
}

func parseGroupBody(body []byte) (*types.Group, error) {
	root := gjson.GetBytes(body, "group")
	if !root.Exists() {
		return nil, fmt.Errorf("board payload missing group object")
	}
	g := parseGroup(root)
	return &g, nil
}

func parseGroup(g gjson.Result) types.Group {
	out := types.Group{
		ID:    g.Get("id").String(),
		Title: g.Get("title").String(),
	}
	for _, it := range g.Get("items").Array() {
		out.Items = append(out.Items, parseItem(it))
	}
	return out
}

func parseItemBody(body []byte) (*types.Item, error) {
	root := gjson.GetBytes(body, "item")
	if !root.Exists() {
		return nil, fmt.Errorf("board payload missing item object")
	}
	item := parseItem(root)
	return &item, nil
}

func parseItem(it gjson.Result) types.Item {
	item := types.Item{
		ID:   it.Get("id").String(),
		Name: it.Get("name").String(),
	}
	for _, cv := range it.Get("column_values").Array() {
		item.Cells = append(item.Cells, types.Cell{
			ColumnID: cv.Get("id").String(),
			Text:     cv.Get("text").String(),
			Checked:  cv.Get("checked").Bool(),
		})
	}
	if subs := it.Get("subitems"); subs.Exists() {
		item.Subitems = []types.Item{}
		for _, sub := range subs.Array() {
			item.Subitems = append(item.Subitems, parseItem(sub))
		}
	}
	return item
}

func parseAssetURL(body []byte) string {
	return gjson.GetBytes(body, "asset.public_url").String()
}
