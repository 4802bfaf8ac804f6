package manager

import (
	"context"

	"github.com/eskendarov/weather-app/conditions"
)

// Lookup is the orchestration surface the UI layer drives: candidate search
// followed by a weather fetch for the chosen candidate.
type Lookup interface {
	Candidates(ctx context.Context, partial string) ([]Candidate, error)
	Weather(ctx context.Context, candidate Candidate) (DisplayUpdate, error)
}

type Geocoder interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}

type Provider interface {
	Current(ctx context.Context, latitude, longitude float64) (Reading, error)
}

// CandidateID identifies a candidate within one result set. It is opaque:
// value equality is all callers may rely on.
type CandidateID string

// Candidate is a single geocoded match for a partial city query. Each
// response produces a fresh set; candidates are never merged across
// responses.
type Candidate struct {
	ID        CandidateID
	CityName  string
	Region    string
	Latitude  float64
	Longitude float64
}

// Reading is the current-conditions payload for one location.
type Reading struct {
	TempC    float64
	IsDay    bool
	Code     int
	Humidity int
	WindMS   float64
}

// TemperatureFahrenheit derives the Fahrenheit value from Celsius. It is
// always computed on demand, never stored alongside TempC.
func (r Reading) TemperatureFahrenheit() float64 {
	return r.TempC*9/5 + 32
}

// DisplayUpdate is the resolved bundle handed to the rendering layer. Values
// are raw: rounding and capitalization are the renderer's concern.
type DisplayUpdate struct {
	CityName  string
	Region    string
	TempC     float64
	TempF     float64
	Condition conditions.Entry
	Humidity  int
	WindMS    float64
}
