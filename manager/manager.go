package manager

import (
	"context"
	"fmt"

	"github.com/eskendarov/weather-app/conditions"
)

// NetworkError reports a non-success HTTP status or a transport failure from
// either collaborator. It is user-facing and non-fatal: no retry is attempted
// and any previously rendered reading stays on screen.
type NetworkError struct {
	Status int
	Body   string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network: %s", e.Err)
	}
	return fmt.Sprintf("status code: %d\n%s", e.Status, e.Body)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func New(geocoder Geocoder, provider Provider) *lookup {
	return &lookup{
		geocoder: geocoder,
		provider: provider,
	}
}

type lookup struct {
	geocoder Geocoder
	provider Provider
}

// Candidates returns geocoded matches for a partial city name, in the order
// the geocoder produced them. That order is authoritative for index-based
// navigation in the UI.
func (l *lookup) Candidates(ctx context.Context, partial string) ([]Candidate, error) {
	return l.geocoder.Search(ctx, partial)
}

// Weather fetches current conditions for a chosen candidate and composes the
// display update. On failure nothing is emitted; the caller keeps whatever it
// last displayed.
func (l *lookup) Weather(ctx context.Context, candidate Candidate) (DisplayUpdate, error) {
	reading, err := l.provider.Current(ctx, candidate.Latitude, candidate.Longitude)
	if err != nil {
		return DisplayUpdate{}, err
	}

	return DisplayUpdate{
		CityName:  candidate.CityName,
		Region:    candidate.Region,
		TempC:     reading.TempC,
		TempF:     reading.TemperatureFahrenheit(),
		Condition: conditions.Resolve(reading.Code, reading.IsDay),
		Humidity:  reading.Humidity,
		WindMS:    reading.WindMS,
	}, nil
}
