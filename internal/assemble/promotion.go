package assemble

import (
	"context"
	"fmt"

	"github.com/promoops/campaigner/internal/configrule"
	"github.com/promoops/campaigner/pkg/types"
)

// FileRefPrefix marks assembled values that reference an uploaded
// file rather than carrying content inline.
const FileRefPrefix = "fileref:"

// buildPromotionPage assembles the promotion page from the config
// items scoped to the promotion page round. Meta and Config items
// each fill a single key map; the remaining sub-types become ordered
// page elements. File-sourced keys resolve their asset URL through
// the board collaborator.
func buildPromotionPage(ctx context.Context, configs []types.Config, assets AssetResolver) (types.PromotionPage, error) {
	var page types.PromotionPage

	for _, cfg := range configs {
		if cfg.Round != types.PromotionPageRound {
			continue
		}

		fields, err := promotionFields(ctx, cfg, assets)
		if err != nil {
			return types.PromotionPage{}, err
		}

		switch cfg.Type {
		case types.ConfigPromotionMeta:
			page.Meta = fields
		case types.ConfigPromotionConfig:
			page.Config = fields
		default:
			page.Elements = append(page.Elements, types.PromotionElement{
				Type:   cfg.Type,
				Name:   cfg.Name,
				Fields: fields,
			})
		}
	}
	return page, nil
}

func promotionFields(ctx context.Context, cfg types.Config, assets AssetResolver) (map[string]string, error) {
	fields := make(map[string]string, len(cfg.Fields))
	for _, f := range cfg.Fields {
		key, ok := configrule.ResolvePromotionKey(cfg.Type, f)
		if !ok {
			// Unknown classifications are rejected by the rule engine.
			continue
		}
		value := f.Value
		if key.File {
			url, err := assets.GetAssetURL(ctx, f.Value)
			if err != nil {
				return nil, fmt.Errorf("resolve asset %q for %s/%s: %w", f.Value, cfg.Name, key.ID, err)
			}
			if url == "" {
				return nil, fmt.Errorf("asset %q for %s/%s not found", f.Value, cfg.Name, key.ID)
			}
			value = FileRefPrefix + url
		}
		fields[key.ID] = value
	}
	return fields, nil
}
