package query

import "github.com/lotworks/lotview/internal/model"

// Paginate slices the 1-based page window [(page-1)*limit, page*limit).
// Values outside the result range yield an empty slice, never an
// out-of-bounds access: a stale page index past the end of a shrunken
// result set shows zero rows.
func Paginate(vehicles []model.Vehicle, p Pagination) []model.Vehicle {
	if p.Page < 1 || p.Limit < 1 {
		return nil
	}
	start := (p.Page - 1) * p.Limit
	if start >= len(vehicles) {
		return nil
	}
	end := start + p.Limit
	if end > len(vehicles) {
		end = len(vehicles)
	}
	return vehicles[start:end]
}

// TotalPages returns how many pages the filtered count spans
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
