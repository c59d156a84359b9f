// Package formatting provides unified output formatting for tripctl commands.
//
// Every command renders its result through a Formatter selected by the
// --output flag, so trips, bookings and auth status all honor the same
// formats: kubectl-style plain tables (with a wide variant), JSON, YAML,
// and user-supplied Go templates with the sprig function library.
package formatting

import (
	"fmt"

	"tripctl/pkg/auth"
	"tripctl/pkg/wayfarer"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	// FormatTable is a kubectl-style plain table (default)
	FormatTable OutputFormat = "table"
	// FormatWide is the table format with additional columns
	FormatWide OutputFormat = "wide"
	// FormatJSON is indented JSON output
	FormatJSON OutputFormat = "json"
	// FormatYAML is YAML output
	FormatYAML OutputFormat = "yaml"
	// FormatTemplate renders output through a user-supplied Go template
	FormatTemplate OutputFormat = "template"
)

// ParseFormat validates a format string from the command line.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, FormatTemplate:
		return OutputFormat(s), nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (valid: table, wide, json, yaml, template)", s)
	}
}

// Options configures the formatter behavior
type Options struct {
	Format    OutputFormat
	NoHeaders bool   // Suppress the header row in table output
	Template  string // Go template source, required for FormatTemplate
}

// Formatter renders trip resources for terminal output.
type Formatter interface {
	FormatTrips(trips []wayfarer.Trip) (string, error)
	FormatTripDetails(details *wayfarer.TripDetails) (string, error)
	FormatHotels(hotels []wayfarer.Hotel) (string, error)
	FormatFlights(flights []wayfarer.Flight) (string, error)
	FormatTransports(transports []wayfarer.Transport) (string, error)
	FormatActivities(activities []wayfarer.Activity) (string, error)
	FormatAuthStatus(status *auth.Status) (string, error)
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTemplate:
		return NewTemplateFormatter(options)
	case FormatTable, FormatWide:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}
