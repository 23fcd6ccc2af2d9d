package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoops/campaigner/pkg/types"
)

func validThemeParam() types.ThemeParameter {
	return types.ThemeParameter{
		Name:      "Reload Percent",
		ParamType: types.Set("Percent"),
		RoundType: types.Set("Intro"),
		UseAsComm: types.Set(true),
		Segments:  map[string]string{"UK": "25", "SE": "10"},
	}
}

func TestThemeParams_Valid(t *testing.T) {
	res := ThemeParams([]types.ThemeParameter{validThemeParam()})
	require.True(t, res.IsSuccess(), "errors: %v", res.Errors)
	assert.True(t, res.Data[0].UseAsComm)
	assert.Equal(t, types.ParamPercent, res.Data[0].Type)
}

func TestThemeParams_NameLength(t *testing.T) {
	p := validThemeParam()
	p.Name = "ab"
	res := ThemeParams([]types.ThemeParameter{p})
	require.True(t, res.IsFailure())

	p.Name = strings.Repeat("x", 200)
	res = ThemeParams([]types.ThemeParameter{p})
	require.True(t, res.IsFailure())

	p.Name = strings.Repeat("x", 199)
	assert.True(t, ThemeParams([]types.ThemeParameter{p}).IsSuccess())
}

func TestThemeParams_NumericClassRange(t *testing.T) {
	p := validThemeParam()
	p.Segments["SE"] = "120"
	res := ThemeParams([]types.ThemeParameter{p})
	require.True(t, res.IsFailure())
	assert.Equal(t, "SE", res.Errors[0].Field)

	// Text parameters are not range checked.
	p = validThemeParam()
	p.ParamType = types.Set("Text")
	p.Segments["SE"] = "free spins for everyone"
	assert.True(t, ThemeParams([]types.ThemeParameter{p}).IsSuccess())
}

func TestThemeParams_DelimiterCharacters(t *testing.T) {
	p := validThemeParam()
	p.ParamType = types.Set("Text")
	p.Segments = map[string]string{"UK": "a|b"}
	res := ThemeParams([]types.ThemeParameter{p})
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "delimiter")
}
