package formatting

import (
	"encoding/json"
	"fmt"

	"tripctl/pkg/auth"
	"tripctl/pkg/wayfarer"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

func (f *JSONFormatter) marshal(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode output as JSON: %w", err)
	}
	return string(b) + "\n", nil
}

// FormatTrips formats a trip list as JSON
func (f *JSONFormatter) FormatTrips(trips []wayfarer.Trip) (string, error) {
	if trips == nil {
		trips = []wayfarer.Trip{}
	}
	return f.marshal(trips)
}

// FormatTripDetails formats a trip with its collections as JSON
func (f *JSONFormatter) FormatTripDetails(details *wayfarer.TripDetails) (string, error) {
	return f.marshal(details)
}

// FormatHotels formats a hotel list as JSON
func (f *JSONFormatter) FormatHotels(hotels []wayfarer.Hotel) (string, error) {
	if hotels == nil {
		hotels = []wayfarer.Hotel{}
	}
	return f.marshal(hotels)
}

// FormatFlights formats a flight list as JSON
func (f *JSONFormatter) FormatFlights(flights []wayfarer.Flight) (string, error) {
	if flights == nil {
		flights = []wayfarer.Flight{}
	}
	return f.marshal(flights)
}

// FormatTransports formats a transport list as JSON
func (f *JSONFormatter) FormatTransports(transports []wayfarer.Transport) (string, error) {
	if transports == nil {
		transports = []wayfarer.Transport{}
	}
	return f.marshal(transports)
}

// FormatActivities formats an activity list as JSON
func (f *JSONFormatter) FormatActivities(activities []wayfarer.Activity) (string, error) {
	if activities == nil {
		activities = []wayfarer.Activity{}
	}
	return f.marshal(activities)
}

// FormatAuthStatus formats the authentication status as JSON
func (f *JSONFormatter) FormatAuthStatus(status *auth.Status) (string, error) {
	return f.marshal(status)
}
