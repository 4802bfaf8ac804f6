// Package conditions maps WMO weather codes to human-readable descriptions
// and icon references.
package conditions

import "fmt"

// Entry is the resolved description and icon reference for one weather code.
// An empty Icon means there is nothing to render.
type Entry struct {
	Description string
	Icon        string
}

const iconURL = "http://openweathermap.org/img/wn/%s@2x.png"

// NotAvailable is returned for codes outside the known set.
var NotAvailable = Entry{Description: "Not available"}

type condition struct {
	description string
	day         string
	night       string
}

var catalog = map[int]condition{
	0:  {"Sunny", "01d", "01n"},
	1:  {"Mainly Sunny", "01d", "01n"},
	2:  {"Partly Cloudy", "02d", "02n"},
	3:  {"Cloudy", "03d", "03n"},
	45: {"Foggy", "50d", "50n"},
	48: {"Rime Fog", "50d", "50n"},
	51: {"Light Drizzle", "09d", "09n"},
	53: {"Drizzle", "09d", "09n"},
	55: {"Heavy Drizzle", "09d", "09n"},
	56: {"Light Freezing Drizzle", "09d", "09n"},
	57: {"Freezing Drizzle", "09d", "09n"},
	61: {"Light Rain", "10d", "10n"},
	63: {"Rain", "10d", "10n"},
	65: {"Heavy Rain", "10d", "10n"},
	66: {"Light Freezing Rain", "10d", "10n"},
	67: {"Freezing Rain", "10d", "10n"},
	71: {"Light Snow", "13d", "13n"},
	73: {"Snow", "13d", "13n"},
	75: {"Heavy Snow", "13d", "13n"},
	77: {"Snow Grains", "13d", "13n"},
	80: {"Light Showers", "09d", "09n"},
	81: {"Showers", "09d", "09n"},
	82: {"Heavy Showers", "09d", "09n"},
	85: {"Light Snow Showers", "13d", "13n"},
	86: {"Snow Showers", "13d", "13n"},
	95: {"Thunderstorm", "11d", "11n"},
	96: {"Light Thunderstorms With Hail", "11d", "11n"},
	99: {"Thunderstorm With Hail", "11d", "11n"},
}

// Resolve returns the entry for a weather code and day/night flag. It is
// total: unknown codes resolve to NotAvailable instead of failing. The table
// is immutable, so Resolve is safe for concurrent use.
func Resolve(code int, isDay bool) Entry {
	c, ok := catalog[code]
	if !ok {
		return NotAvailable
	}

	icon := c.night
	if isDay {
		icon = c.day
	}

	return Entry{
		Description: c.description,
		Icon:        fmt.Sprintf(iconURL, icon),
	}
}
