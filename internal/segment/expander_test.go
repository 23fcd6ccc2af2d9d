package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoops/campaigner/pkg/types"
)

func regs(pairs ...any) []types.Regulation {
	var out []types.Regulation
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, types.Regulation{Name: pairs[i].(string), Checked: pairs[i+1].(bool)})
	}
	return out
}

func TestExpand_NoTiersNoAB(t *testing.T) {
	got := Expand(regs("UK", true, "SE", false), nil, false)
	require.Len(t, got, 2)
	assert.Equal(t, regs("UK", true, "SE", false), got)
}

func TestExpand_TierCrossProduct(t *testing.T) {
	got := Expand(regs("UK", true, "SE", false), []string{"VIP", "Mass"}, false)
	require.Len(t, got, 4)
	assert.Equal(t, regs(
		"UK VIP", true,
		"UK Mass", true,
		"SE VIP", false,
		"SE Mass", false,
	), got)
}

func TestExpand_ABDuplicatesFollowBase(t *testing.T) {
	got := Expand(regs("UK", true, "SE", false), nil, true)
	require.Len(t, got, 4)
	assert.Equal(t, "UK", got[0].Name)
	assert.Equal(t, "UK_B", got[1].Name)
	assert.True(t, got[1].Checked, "A/B variant inherits checked state")
	assert.Equal(t, "SE", got[2].Name)
	assert.Equal(t, "SE_B", got[3].Name)
	assert.False(t, got[3].Checked)
}

func TestExpand_LengthFormula(t *testing.T) {
	regulations := regs("UK", true, "SE", true, "DK", false)
	tierSets := [][]string{nil, {"VIP"}, {"VIP", "Mass"}, {"VIP", "Mass", "Low"}}

	for _, tiers := range tierSets {
		for _, ab := range []bool{false, true} {
			got := Expand(regulations, tiers, ab)
			want := len(regulations)
			if len(tiers) > 0 {
				want *= len(tiers)
			}
			if ab {
				want *= 2
			}
			assert.Len(t, got, want, "tiers=%v ab=%v", tiers, ab)
		}
	}
}

func TestExpand_TierAndAB(t *testing.T) {
	got := Expand(regs("UK", true), []string{"VIP", "Mass"}, true)
	require.Len(t, got, 4)
	assert.Equal(t, "UK VIP", got[0].Name)
	assert.Equal(t, "UK VIP_B", got[1].Name)
	assert.Equal(t, "UK Mass", got[2].Name)
	assert.Equal(t, "UK Mass_B", got[3].Name)
}

func TestExpand_Empty(t *testing.T) {
	assert.Empty(t, Expand(nil, []string{"VIP"}, true))
}
