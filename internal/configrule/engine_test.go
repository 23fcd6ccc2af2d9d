package configrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoops/campaigner/pkg/types"
)

var rounds = []string{"Week 1", "Week 2"}

func flatItem(name, cfgType, round, fieldName string, segs map[string]string) types.ConfigItem {
	return types.ConfigItem{
		Name:      name,
		Type:      types.Set(cfgType),
		Round:     types.Set(round),
		FieldName: types.Set(fieldName),
		Segments:  segs,
	}
}

func TestValidate_EmailRules(t *testing.T) {
	res := Validate([]types.ConfigItem{
		flatItem("intro mail hour", "Email", "Week 1", FieldScheduleHour, map[string]string{"UK": "10:30"}),
		flatItem("intro mail tpl", "Email", "Week 1", FieldTemplateID, map[string]string{"UK": "4711"}),
	}, rounds)
	require.True(t, res.IsSuccess(), "errors: %v", res.Errors)
	assert.Len(t, res.Data, 2)

	res = Validate([]types.ConfigItem{
		flatItem("bad hour", "Email", "Week 1", FieldScheduleHour, map[string]string{"UK": "25:99"}),
	}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "HH:MM")
}

func TestValidate_UnknownTypeAndRound(t *testing.T) {
	res := Validate([]types.ConfigItem{
		flatItem("weird", "Telegram", "Week 1", FieldTemplateID, nil),
		flatItem("lost", "Email", "Week 9", FieldTemplateID, map[string]string{"UK": "1"}),
	}, rounds)
	require.True(t, res.IsFailure())
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0].Message, "unknown configuration type")
	assert.Contains(t, res.Errors[1].Message, "does not exist")
}

func TestValidate_PromotionPageRoundIsAlwaysKnown(t *testing.T) {
	res := Validate([]types.ConfigItem{
		{
			Name:  "promo meta",
			Type:  types.Set("Promotion Meta"),
			Round: types.Set(types.PromotionPageRound),
			Fields: []types.ConfigItemField{
				{Name: "t", Classification: "title", Value: "Spring"},
			},
		},
	}, rounds)
	assert.True(t, res.IsSuccess(), "errors: %v", res.Errors)
}

func TestValidate_NeptuneGUID(t *testing.T) {
	res := Validate([]types.ConfigItem{
		flatItem("nep", "Neptune", "Week 1", FieldNeptuneID,
			map[string]string{"UK": "6f9619ff-8b86-d011-b42d-00c04fc964ff"}),
	}, rounds)
	assert.True(t, res.IsSuccess(), "errors: %v", res.Errors)

	res = Validate([]types.ConfigItem{
		flatItem("nep", "Neptune", "Week 1", FieldNeptuneID, map[string]string{"UK": "nope"}),
	}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "GUID")
}

func TestValidate_SegmentFilterBounds(t *testing.T) {
	res := Validate([]types.ConfigItem{
		flatItem("filter", "Segment Filter", "Week 1", FieldTotalBetSegment, map[string]string{"UK": "100, 500"}),
	}, rounds)
	assert.True(t, res.IsSuccess(), "errors: %v", res.Errors)

	for _, bad := range []string{"100", "500,100", "a,b"} {
		res = Validate([]types.ConfigItem{
			flatItem("filter", "Segment Filter", "Week 1", FieldTotalBetSegment, map[string]string{"UK": bad}),
		}, rounds)
		assert.True(t, res.IsFailure(), "bounds %q must fail", bad)
	}
}

func neptuneBindPair(boundName string) []types.ConfigItem {
	return []types.ConfigItem{
		flatItem("bind", "Neptune Bind", "Week 1", FieldNeptuneName, map[string]string{"UK": boundName}),
		{
			Name:  "welcome neptune",
			Type:  types.Set("Neptune Config"),
			Round: types.Set("Week 1"),
			Fields: []types.ConfigItemField{
				{Name: "id", Field: SubFieldNeptuneID, Value: "6f9619ff-8b86-d011-b42d-00c04fc964ff"},
			},
		},
	}
}

func TestValidate_NeptuneBindReferences(t *testing.T) {
	res := Validate(neptuneBindPair("welcome neptune"), rounds)
	require.True(t, res.IsSuccess(), "errors: %v", res.Errors)

	res = Validate(neptuneBindPair("other neptune"), rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "missing configuration")
	assert.Contains(t, res.Errors[0].Message, "other neptune")
}

func TestValidate_NeptuneCoOccurrence(t *testing.T) {
	items := neptuneBindPair("welcome neptune")

	res := Validate(items[:1], rounds)
	require.True(t, res.IsFailure(), "bind without config must fail")

	res = Validate(items[1:], rounds)
	require.True(t, res.IsFailure(), "config without bind must fail")
}

func TestValidate_PromotionElementsRequireConfig(t *testing.T) {
	image := types.ConfigItem{
		Name:  "hero",
		Type:  types.Set("Promotion Image"),
		Round: types.Set(types.PromotionPageRound),
		Fields: []types.ConfigItemField{
			{Name: "img", Classification: "image", Value: "asset-1"},
		},
	}
	res := Validate([]types.ConfigItem{image}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "requires a Promotion Config")

	config := types.ConfigItem{
		Name:  "page",
		Type:  types.Set("Promotion Config"),
		Round: types.Set(types.PromotionPageRound),
		Fields: []types.ConfigItemField{
			{Name: "theme", Classification: "theme", Value: "dark"},
		},
	}
	res = Validate([]types.ConfigItem{image, config}, rounds)
	assert.True(t, res.IsSuccess(), "errors: %v", res.Errors)
}

func TestValidate_MissingFileValue(t *testing.T) {
	item := types.ConfigItem{
		Name:  "page",
		Type:  types.Set("Promotion Config"),
		Round: types.Set(types.PromotionPageRound),
		Fields: []types.ConfigItemField{
			{Name: "bg", Classification: "background"}, // file-sourced, no asset
		},
	}
	res := Validate([]types.ConfigItem{item}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "missing file value")
}

func TestValidate_Singletons(t *testing.T) {
	meta := func(name string) types.ConfigItem {
		return types.ConfigItem{
			Name:  name,
			Type:  types.Set("Promotion Meta"),
			Round: types.Set(types.PromotionPageRound),
			Fields: []types.ConfigItemField{
				{Name: "t", Classification: "title", Value: "Spring"},
			},
		}
	}
	res := Validate([]types.ConfigItem{meta("a"), meta("b")}, rounds)
	require.True(t, res.IsFailure())

	found := false
	for _, e := range res.Errors {
		if e.Message == "Promotion Meta must appear at most once, found 2" {
			found = true
		}
	}
	assert.True(t, found, "errors: %v", res.Errors)
}

func TestValidate_DuplicateKeys(t *testing.T) {
	res := Validate([]types.ConfigItem{
		flatItem("mail a", "Email", "Week 1", FieldTemplateID, map[string]string{"UK": "1"}),
		flatItem("mail b", "Email", "Week 1", FieldTemplateID, map[string]string{"UK": "2"}),
	}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "duplicate")
}

func TestValidate_NestedRequiredSubFields(t *testing.T) {
	promo := types.ConfigItem{
		Name:  "welcome promo",
		Type:  types.Set("Promocode Config"),
		Round: types.Set("Week 1"),
		Fields: []types.ConfigItemField{
			{Name: "code", Field: SubFieldPromocode, Value: "SPRING26"},
		},
	}
	res := Validate([]types.ConfigItem{promo}, rounds)
	assert.True(t, res.IsSuccess(), "errors: %v", res.Errors)

	promo.Fields = []types.ConfigItemField{{Name: "note", Field: "note", Value: "hi"}}
	res = Validate([]types.ConfigItem{promo}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, `required sub-field "promocode"`)

	promo.Fields = nil
	res = Validate([]types.ConfigItem{promo}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "requires sub-records")
}

func TestValidate_PairedMessageRowsShareAName(t *testing.T) {
	res := Validate([]types.ConfigItem{
		flatItem("kickoff mail", "Email", "Week 1", FieldScheduleHour, map[string]string{"UK": "10:00"}),
		flatItem("kickoff mail", "Email", "Week 1", FieldTemplateID, map[string]string{"UK": "4711"}),
	}, rounds)
	require.True(t, res.IsSuccess(), "errors: %v", res.Errors)
	assert.Len(t, res.Data, 2)
}

func TestValidate_DuplicateNestedConfigName(t *testing.T) {
	promo := types.ConfigItem{
		Name:  "welcome promo",
		Type:  types.Set("Promocode Config"),
		Round: types.Set("Week 1"),
		Fields: []types.ConfigItemField{
			{Name: "code", Field: SubFieldPromocode, Value: "SPRING26"},
		},
	}
	res := Validate([]types.ConfigItem{promo, promo}, rounds)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "duplicate configuration of type Promocode Config")
}

func TestValidate_PromotionItemsScopedToPromotionPage(t *testing.T) {
	res := Validate([]types.ConfigItem{
		{
			Name:  "hero image",
			Type:  types.Set("Promotion Image"),
			Round: types.Set("Week 1"),
			Fields: []types.ConfigItemField{
				{Name: "img", Classification: "image", Value: "asset-1"},
			},
		},
	}, rounds)
	require.True(t, res.IsFailure())
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, `must use the "Promotion Page" round`)
}
