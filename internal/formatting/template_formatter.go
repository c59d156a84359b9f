package formatting

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"tripctl/pkg/auth"
	"tripctl/pkg/wayfarer"
)

// TemplateFormatter renders output through a user-supplied Go template with
// the sprig function library available, e.g.
//
//	tripctl trip list -o template --template '{{range .}}{{.Name | upper}}{{"\n"}}{{end}}'
//
// Lists are passed to the template as slices, details and status as structs.
type TemplateFormatter struct {
	options Options
}

// NewTemplateFormatter creates a new template formatter
func NewTemplateFormatter(options Options) Formatter {
	return &TemplateFormatter{
		options: options,
	}
}

func (f *TemplateFormatter) execute(v interface{}) (string, error) {
	if f.options.Template == "" {
		return "", fmt.Errorf("output format %q requires --template", FormatTemplate)
	}

	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(f.options.Template)
	if err != nil {
		return "", fmt.Errorf("invalid output template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render output template: %w", err)
	}
	return buf.String(), nil
}

// FormatTrips renders a trip list through the template
func (f *TemplateFormatter) FormatTrips(trips []wayfarer.Trip) (string, error) {
	return f.execute(trips)
}

// FormatTripDetails renders a trip with its collections through the template
func (f *TemplateFormatter) FormatTripDetails(details *wayfarer.TripDetails) (string, error) {
	return f.execute(details)
}

// FormatHotels renders a hotel list through the template
func (f *TemplateFormatter) FormatHotels(hotels []wayfarer.Hotel) (string, error) {
	return f.execute(hotels)
}

// FormatFlights renders a flight list through the template
func (f *TemplateFormatter) FormatFlights(flights []wayfarer.Flight) (string, error) {
	return f.execute(flights)
}

// FormatTransports renders a transport list through the template
func (f *TemplateFormatter) FormatTransports(transports []wayfarer.Transport) (string, error) {
	return f.execute(transports)
}

// FormatActivities renders an activity list through the template
func (f *TemplateFormatter) FormatActivities(activities []wayfarer.Activity) (string, error) {
	return f.execute(activities)
}

// FormatAuthStatus renders the authentication status through the template
func (f *TemplateFormatter) FormatAuthStatus(status *auth.Status) (string, error) {
	return f.execute(status)
}
