package configrule

import "github.com/promoops/campaigner/pkg/types"

// PromotionKey is a resolved promotion page output key. File-sourced
// keys hold an uploaded asset ID as their value; assembly resolves it
// to a URL through the board collaborator.
type PromotionKey struct {
	ID   string
	File bool
}

// fileSourcedKeys marks directly-addressed field IDs whose values are
// asset references.
var fileSourcedKeys = map[string]bool{
	"page_background":  true,
	"page_logo":        true,
	"element_image":    true,
	"meta_share_image": true,
}

// Classification tables per promotion sub-type. An item addresses its
// output key either directly (sub-field key present) or through its
// classification.
var (
	promotionMetaKeys = map[string]PromotionKey{
		"title":       {ID: "meta_title"},
		"description": {ID: "meta_description"},
		"share_image": {ID: "meta_share_image", File: true},
	}
	promotionConfigKeys = map[string]PromotionKey{
		"theme":      {ID: "page_theme"},
		"layout":     {ID: "page_layout"},
		"background": {ID: "page_background", File: true},
		"logo":       {ID: "page_logo", File: true},
	}
	promotionElementKeys = map[string]PromotionKey{
		"image": {ID: "element_image", File: true},
		"text":  {ID: "element_text"},
		"label": {ID: "cta_label"},
		"link":  {ID: "cta_link"},
	}
)

// ResolvePromotionKey resolves a promotion sub-field to its output
// key: directly when the sub-field key is set, otherwise via the
// classification table of the item's sub-type.
func ResolvePromotionKey(subType types.ConfigType, f types.ConfigItemField) (PromotionKey, bool) {
	if f.Field != "" {
		return PromotionKey{ID: f.Field, File: fileSourcedKeys[f.Field]}, true
	}

	var table map[string]PromotionKey
	switch subType {
	case types.ConfigPromotionMeta:
		table = promotionMetaKeys
	case types.ConfigPromotionConfig:
		table = promotionConfigKeys
	default:
		table = promotionElementKeys
	}
	key, ok := table[f.Classification]
	return key, ok
}

// promotionRule validates promotion page items: every sub-field must
// resolve to an output key, and file-sourced keys must carry an asset
// reference. The missing-file check lives here so a broken field never
// reaches asset resolution.
func promotionRule(c *collector, item types.ConfigItem) {
	rawType, _ := item.Type.Get()
	cfgType := types.ConfigType(rawType)

	if item.Fields == nil {
		c.add(item.Name, "", "%s requires sub-records", cfgType)
		return
	}
	if len(item.Fields) == 0 {
		c.add(item.Name, "", "%s has an empty sub-record list", cfgType)
		return
	}

	seen := make(map[string]bool)
	for _, f := range item.Fields {
		key, ok := ResolvePromotionKey(cfgType, f)
		if !ok {
			c.add(item.Name, f.Name, "unknown classification %q", f.Classification)
			continue
		}
		if key.File && f.Value == "" {
			c.add(item.Name, key.ID, "missing file value for %q", f.Name)
			continue
		}
		if !key.File && f.Value == "" {
			c.add(item.Name, key.ID, "sub-field value is required")
		}

		pair := f.Name + "\x00" + key.ID
		if seen[pair] {
			c.add(item.Name, key.ID, "duplicate sub-field %q on %q", key.ID, f.Name)
		}
		seen[pair] = true
	}
}
