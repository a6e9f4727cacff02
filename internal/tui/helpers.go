package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lotworks/lotview/internal/query"
)

// inputKeys maps filter-bar shorthand to engine filter keys
var inputKeys = map[string]string{
	"make":      query.FilterMake,
	"model":     query.FilterModel,
	"colour":    query.FilterColour,
	"equipment": query.FilterEquipment,
	"year":      query.FilterYear,
	"doors":     query.FilterDoors,
	"owners":    query.FilterOwners,
	"bid":       query.FilterBid,
	"mileage":   query.FilterMileage,
}

// rangeKeys take min-max values in the filter bar
var rangeKeys = map[string]bool{
	"bid":     true,
	"mileage": true,
}

// parseFilterInput turns "make=ford bid=1000-5000" into filter
// criteria. Unknown keys are rejected here with a message rather than
// passed through, since an unrecognized key would match nothing.
func parseFilterInput(s string) (query.Filters, error) {
	filters := query.Filters{}
	for _, token := range strings.Fields(s) {
		k, v, ok := strings.Cut(token, "=")
		if !ok || v == "" {
			return nil, fmt.Errorf("expected key=value, got %q", token)
		}
		engineKey, known := inputKeys[strings.ToLower(k)]
		if !known {
			return nil, fmt.Errorf("unknown filter %q", k)
		}
		if rangeKeys[strings.ToLower(k)] {
			val, err := parseRangeToken(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			filters[engineKey] = val
		} else {
			filters[engineKey] = query.Text(v)
		}
	}
	return filters, nil
}

// parseRangeToken reads "min-max", "min-", "-max" or a bare number.
// A bare number means an exact amount.
func parseRangeToken(s string) (query.Value, error) {
	idx := strings.Index(s, "-")
	if idx < 0 {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return query.Value{}, fmt.Errorf("not a number: %q", s)
		}
		return query.Between(&n, &n), nil
	}

	var lo, hi *float64
	if left := s[:idx]; left != "" {
		n, err := strconv.ParseFloat(left, 64)
		if err != nil {
			return query.Value{}, fmt.Errorf("bad minimum: %q", left)
		}
		lo = &n
	}
	if right := s[idx+1:]; right != "" {
		n, err := strconv.ParseFloat(right, 64)
		if err != nil {
			return query.Value{}, fmt.Errorf("bad maximum: %q", right)
		}
		hi = &n
	}
	if lo == nil && hi == nil {
		return query.Value{}, fmt.Errorf("empty range %q", s)
	}
	return query.Between(lo, hi), nil
}

// filterInputString renders active filters back into the filter-bar
// syntax so editing starts from the current state
func filterInputString(filters query.Filters) string {
	shorthand := make(map[string]string, len(inputKeys))
	for short, engineKey := range inputKeys {
		shorthand[engineKey] = short
	}

	var tokens []string
	for key, val := range filters {
		short, ok := shorthand[key]
		if !ok || val.IsEmpty() {
			continue
		}
		if val.Range != nil {
			lo, hi := "", ""
			if val.Range.Min != nil {
				lo = strconv.FormatFloat(*val.Range.Min, 'f', -1, 64)
			}
			if val.Range.Max != nil {
				hi = strconv.FormatFloat(*val.Range.Max, 'f', -1, 64)
			}
			tokens = append(tokens, fmt.Sprintf("%s=%s-%s", short, lo, hi))
		} else {
			tokens = append(tokens, fmt.Sprintf("%s=%s", short, val.Text))
		}
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
