package query

import (
	"sort"
	"strings"
	"time"

	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/model"
)

// Sortable fields, including the two nested ones exposed to the UI
const (
	SortMake         = "make"
	SortModel        = "model"
	SortEngineSize   = "engineSize"
	SortFuel         = "fuel"
	SortYear         = "year"
	SortMileage      = "mileage"
	SortBid          = "startingBid"
	SortAuctionDate  = "auctionDateTime"
	SortColour       = "colour"
	SortTransmission = "transmission"
	SortRegistration = "registrationDate"
)

// comparators maps sortable fields to an ascending comparison.
// Returns <0, 0, >0 like strings.Compare.
var comparators = map[string]func(a, b *model.Vehicle) int{
	SortMake:         func(a, b *model.Vehicle) int { return strings.Compare(a.Make, b.Make) },
	SortModel:        func(a, b *model.Vehicle) int { return strings.Compare(a.Model, b.Model) },
	SortEngineSize:   func(a, b *model.Vehicle) int { return strings.Compare(a.EngineSize, b.EngineSize) },
	SortFuel:         func(a, b *model.Vehicle) int { return strings.Compare(a.Fuel, b.Fuel) },
	SortYear:         func(a, b *model.Vehicle) int { return compareInt(a.Year, b.Year) },
	SortMileage:      func(a, b *model.Vehicle) int { return compareInt(a.Mileage, b.Mileage) },
	SortBid:          func(a, b *model.Vehicle) int { return compareFloat(a.StartingBid, b.StartingBid) },
	SortAuctionDate:  func(a, b *model.Vehicle) int { return compareDates(a.AuctionTime())(b.AuctionTime()) },
	SortColour:       func(a, b *model.Vehicle) int { return strings.Compare(a.Details.Specification.Colour, b.Details.Specification.Colour) },
	SortTransmission: func(a, b *model.Vehicle) int { return strings.Compare(a.Details.Specification.Transmission, b.Details.Specification.Transmission) },
	SortRegistration: func(a, b *model.Vehicle) int { return compareDates(a.RegistrationTime())(b.RegistrationTime()) },
}

// IsSortable reports whether the engine can order by the field
func IsSortable(field string) bool {
	_, ok := comparators[field]
	return ok
}

// SortVehicles orders a copy of the list by the criteria. A nil sort
// returns the input unchanged; an unsupported field is a logged no-op
// so a stale persisted sort never breaks rendering. The sort is stable:
// ties keep their filter-stage order.
func SortVehicles(vehicles []model.Vehicle, s *Sort) []model.Vehicle {
	if s == nil {
		return vehicles
	}
	cmp, ok := comparators[s.Field]
	if !ok {
		logger.Warn("Unsupported sort field", logger.F("field", s.Field))
		return vehicles
	}

	out := make([]model.Vehicle, len(vehicles))
	copy(out, vehicles)

	desc := s.Direction == Desc
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(&out[i], &out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareDates treats a missing date as later than any real one, so
// unknown values land at the end ascending and at the front descending.
func compareDates(a time.Time, aok bool) func(b time.Time, bok bool) int {
	return func(b time.Time, bok bool) int {
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	}
}
