package query

import (
	"strconv"
	"strings"

	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/model"
)

// Filter keeps the vehicles that match every non-empty filter entry.
// No active filters returns the input slice unchanged so memoization
// can rely on reference identity. An unrecognized key matches no
// vehicle at all; it is logged, never an error.
func Filter(vehicles []model.Vehicle, filters Filters) []model.Vehicle {
	if !hasActive(filters) {
		return vehicles
	}

	out := make([]model.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		if matches(&vehicles[i], filters) {
			out = append(out, vehicles[i])
		}
	}
	return out
}

func hasActive(filters Filters) bool {
	for _, v := range filters {
		if !v.IsEmpty() {
			return true
		}
	}
	return false
}

func matches(v *model.Vehicle, filters Filters) bool {
	for key, val := range filters {
		if val.IsEmpty() {
			continue
		}
		if !matchField(v, key, val) {
			return false
		}
	}
	return true
}

func matchField(v *model.Vehicle, key string, val Value) bool {
	switch key {
	case FilterMake:
		return containsFold(v.Make, val.Text)
	case FilterModel:
		return containsFold(v.Model, val.Text)
	case FilterColour:
		return containsFold(v.Details.Specification.Colour, val.Text)
	case FilterEquipment:
		for _, item := range v.Details.Equipment {
			if containsFold(item, val.Text) {
				return true
			}
		}
		return false
	case FilterYear:
		return matchExactInt(v.Year, val)
	case FilterDoors:
		return matchExactInt(v.Details.Specification.NumberOfDoors, val)
	case FilterOwners:
		return matchExactInt(v.Details.Ownership.NumberOfOwners, val)
	case FilterBid:
		return matchRange(v.StartingBid, val)
	case FilterMileage:
		return matchRange(float64(v.Mileage), val)
	default:
		// Fail closed: an unknown key must never silently widen results
		logger.Warn("Unknown filter key", logger.F("key", key))
		return false
	}
}

// containsFold is a case-insensitive substring match
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchExactInt matches enumerable numeric fields. The value arrives
// as text from filter inputs; unparsable text matches nothing.
func matchExactInt(got int, val Value) bool {
	if val.Text == "" {
		return true
	}
	want, err := strconv.Atoi(strings.TrimSpace(val.Text))
	if err != nil {
		return false
	}
	return got == want
}

// matchRange checks an inclusive min/max window. Text values on range
// fields are treated as an exact amount.
func matchRange(got float64, val Value) bool {
	if val.Range != nil {
		if val.Range.Min != nil && got < *val.Range.Min {
			return false
		}
		if val.Range.Max != nil && got > *val.Range.Max {
			return false
		}
		return true
	}
	want, err := strconv.ParseFloat(strings.TrimSpace(val.Text), 64)
	if err != nil {
		return false
	}
	return got == want
}
