package formatting

import (
	"fmt"

	"tripctl/pkg/auth"
	"tripctl/pkg/wayfarer"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

func (f *YAMLFormatter) marshal(v interface{}) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode output as YAML: %w", err)
	}
	return string(b), nil
}

// FormatTrips formats a trip list as YAML
func (f *YAMLFormatter) FormatTrips(trips []wayfarer.Trip) (string, error) {
	if len(trips) == 0 {
		return "[]\n", nil
	}
	return f.marshal(trips)
}

// FormatTripDetails formats a trip with its collections as YAML
func (f *YAMLFormatter) FormatTripDetails(details *wayfarer.TripDetails) (string, error) {
	return f.marshal(details)
}

// FormatHotels formats a hotel list as YAML
func (f *YAMLFormatter) FormatHotels(hotels []wayfarer.Hotel) (string, error) {
	if len(hotels) == 0 {
		return "[]\n", nil
	}
	return f.marshal(hotels)
}

// FormatFlights formats a flight list as YAML
func (f *YAMLFormatter) FormatFlights(flights []wayfarer.Flight) (string, error) {
	if len(flights) == 0 {
		return "[]\n", nil
	}
	return f.marshal(flights)
}

// FormatTransports formats a transport list as YAML
func (f *YAMLFormatter) FormatTransports(transports []wayfarer.Transport) (string, error) {
	if len(transports) == 0 {
		return "[]\n", nil
	}
	return f.marshal(transports)
}

// FormatActivities formats an activity list as YAML
func (f *YAMLFormatter) FormatActivities(activities []wayfarer.Activity) (string, error) {
	if len(activities) == 0 {
		return "[]\n", nil
	}
	return f.marshal(activities)
}

// FormatAuthStatus formats the authentication status as YAML
func (f *YAMLFormatter) FormatAuthStatus(status *auth.Status) (string, error) {
	return f.marshal(status)
}
