package validate

import (
	"fmt"

	"github.com/promoops/campaigner/pkg/types"
)

// Parameter name length bounds.
const (
	ParamNameMin = 3
	ParamNameMax = 199
)

// ThemeParams validates every theme parameter in group order,
// aggregating violations across items.
func ThemeParams(params []types.ThemeParameter) types.Result[[]types.ThemeParam] {
	var (
		errs []types.FieldError
		out  []types.ThemeParam
	)
	for _, raw := range params {
		p, itemErrs := themeParam(raw)
		if len(itemErrs) > 0 {
			errs = append(errs, itemErrs...)
			continue
		}
		out = append(out, p)
	}
	if len(errs) > 0 {
		return types.Failure[[]types.ThemeParam](errs)
	}
	return types.Success(out)
}

// themeParam applies the shared parameter rules to one raw item.
func themeParam(raw types.ThemeParameter) (types.ThemeParam, []types.FieldError) {
	var errs []types.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, types.FieldError{Entity: raw.Name, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !LengthBetween(raw.Name, ParamNameMin, ParamNameMax) {
		add("Name", "parameter name must be between %d and %d characters", ParamNameMin, ParamNameMax)
	}

	var paramType types.ParamType
	if rawType, ok := raw.ParamType.Get(); !ok {
		add("Parameter Type", "parameter type is required")
	} else {
		paramType = types.ParamType(rawType)
	}

	var roundType types.RoundType
	if rawRound, ok := raw.RoundType.Get(); !ok {
		add("Round Type", "round type is required")
	} else if roundType = types.RoundType(rawRound); !validRoundType(roundType) {
		add("Round Type", "unknown round type %q", rawRound)
	}

	for seg, value := range raw.Segments {
		if ContainsDelimiter(value) {
			add(seg, "value contains a reserved delimiter character")
		}
		if paramType.IsNumericClass() && !IntInRange(value, 0, 99) {
			add(seg, "value %q must be an integer between 0 and 99", value)
		}
	}

	if len(errs) > 0 {
		return types.ThemeParam{}, errs
	}
	return types.ThemeParam{
		Name:      raw.Name,
		Type:      paramType,
		RoundType: roundType,
		UseAsComm: raw.UseAsComm.Or(false),
		Segments:  raw.Segments,
	}, nil
}
