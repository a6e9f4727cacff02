package model

import "time"

// Allowed page sizes for listing views
var PageSizes = []int{10, 50, 100}

// DefaultPageSize is used when no limit has been chosen yet
const DefaultPageSize = 10

// Vehicle is a single auction lot. Vehicles are built once from the
// catalog fetch and never mutated afterwards.
type Vehicle struct {
	ID              string  `json:"id"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	EngineSize      string  `json:"engineSize"`
	Fuel            string  `json:"fuel"`
	Year            int     `json:"year"`
	Mileage         int     `json:"mileage"`
	AuctionDateTime string  `json:"auctionDateTime"`
	StartingBid     float64 `json:"startingBid"`
	Details         Details `json:"details"`
}

// Details groups the nested vehicle information
type Details struct {
	Specification Specification `json:"specification"`
	Ownership     Ownership     `json:"ownership"`
	Equipment     []string      `json:"equipment"`
}

// Specification describes the technical attributes of a vehicle
type Specification struct {
	VehicleType   string  `json:"vehicleType"`
	Colour        string  `json:"colour"`
	Fuel          string  `json:"fuel"`
	Transmission  string  `json:"transmission"`
	NumberOfDoors int     `json:"numberOfDoors"`
	CO2Emissions  string  `json:"co2Emissions"`
	NOxEmissions  float64 `json:"noxEmissions"`
	NumberOfKeys  int     `json:"numberOfKeys"`
}

// Ownership describes the registration history of a vehicle
type Ownership struct {
	LogBook            string `json:"logBook"`
	NumberOfOwners     int    `json:"numberOfOwners"`
	DateOfRegistration string `json:"dateOfRegistration"`
}

// dateLayouts are the formats seen in catalog exports
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a catalog date string. The second return value is
// false when the string is empty or not a recognized format.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AuctionTime returns the parsed auction timestamp
func (v *Vehicle) AuctionTime() (time.Time, bool) {
	return ParseDate(v.AuctionDateTime)
}

// RegistrationTime returns the parsed first-registration timestamp
func (v *Vehicle) RegistrationTime() (time.Time, bool) {
	return ParseDate(v.Details.Ownership.DateOfRegistration)
}
