package validate

import (
	"fmt"
	"time"

	"github.com/promoops/campaigner/pkg/types"
)

// Rounds validates every raw round in group order, aggregating
// violations across items. campaignOneTime relaxes the end-date rule
// for every round of a one-time campaign.
func Rounds(rounds []types.RoundFields, campaignOneTime bool) types.Result[[]types.Round] {
	var (
		errs []types.FieldError
		out  []types.Round
	)
	for _, raw := range rounds {
		r := Round(raw, campaignOneTime)
		if r.IsSuccess() {
			out = append(out, r.Data)
			continue
		}
		errs = append(errs, r.Errors...)
	}
	if len(errs) > 0 {
		return types.Failure[[]types.Round](errs)
	}
	return types.Success(out)
}

// Round validates one raw round entity.
func Round(fields types.RoundFields, campaignOneTime bool) types.Result[types.Round] {
	var errs []types.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, types.FieldError{Entity: fields.Name, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if fields.Name == "" {
		add("Name", "round name is required")
	}

	var roundType types.RoundType
	if raw, ok := fields.RoundType.Get(); !ok {
		add("Round Type", "round type is required")
	} else if roundType = types.RoundType(raw); !validRoundType(roundType) {
		add("Round Type", "unknown round type %q", raw)
	}

	oneTime := fields.OneTime.Or(false) || campaignOneTime

	var start time.Time
	startOK := requireDate(fields.StartDate, "Start Date", &start, add)
	if startOK {
		start = start.AddDate(0, 0, 1)
	}

	var end *time.Time
	if raw, ok := fields.EndDate.Get(); ok {
		if t, valid := ParseBoardDate(raw); valid {
			t = t.AddDate(0, 0, 1)
			end = &t
		} else {
			add("End Date", "date %q is not a valid YYYY-MM-DD date", raw)
		}
	} else if !oneTime {
		add("End Date", "end date is required for rounds that are not one-time")
	}
	// TODO(product): enforce end >= start for non-one-time rounds once
	// the intended behavior for legacy boards is confirmed.

	scheduleHour := ""
	if raw, ok := fields.ScheduleHour.Get(); ok {
		if !IsTimeOfDay(raw) {
			add("Schedule Hour", "schedule hour %q must be HH:MM", raw)
		} else {
			scheduleHour = raw
		}
	}

	if len(errs) > 0 {
		return types.Failure[types.Round](errs)
	}

	return types.Success(types.Round{
		Name:          fields.Name,
		Type:          roundType,
		StartDate:     start,
		EndDate:       end,
		OneTime:       oneTime,
		ScheduleHour:  scheduleHour,
		SuppressDates: fields.SuppressDates.Or(false),
	})
}

func validRoundType(rt types.RoundType) bool {
	for _, t := range types.RoundTypes {
		if t == rt {
			return true
		}
	}
	return false
}
