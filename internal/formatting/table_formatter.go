package formatting

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"tripctl/pkg/auth"
	pkgstrings "tripctl/pkg/strings"
	"tripctl/pkg/wayfarer"
)

// TableFormatter renders kubectl-style plain tables: no borders, columns
// separated by spaces, headers in caps. The wide format adds the columns
// that are usually too long for a quick glance.
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

func (f *TableFormatter) wide() bool {
	return f.options.Format == FormatWide
}

// render produces the plain table output for one header and row set.
func (f *TableFormatter) render(header table.Row, rows []table.Row) string {
	w := table.NewWriter()

	style := table.StyleDefault
	style.Options = table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	}
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = "   "
	w.SetStyle(style)

	if !f.options.NoHeaders {
		w.AppendHeader(header)
	}
	w.AppendRows(rows)
	return w.Render() + "\n"
}

// FormatTrips formats a trip list as a table
func (f *TableFormatter) FormatTrips(trips []wayfarer.Trip) (string, error) {
	if len(trips) == 0 {
		return "No trips found\n", nil
	}

	header := table.Row{"ID", "NAME", "DESTINATION", "START", "END"}
	if f.wide() {
		header = append(header, "NOTES")
	}

	rows := make([]table.Row, 0, len(trips))
	for _, trip := range trips {
		row := table.Row{trip.ID, trip.Name, trip.Destination, trip.StartDate, trip.EndDate}
		if f.wide() {
			row = append(row, pkgstrings.Truncate(trip.Notes, pkgstrings.DefaultCellMaxLen))
		}
		rows = append(rows, row)
	}
	return f.render(header, rows), nil
}

// FormatTripDetails formats a trip and its collections as sectioned tables
func (f *TableFormatter) FormatTripDetails(details *wayfarer.TripDetails) (string, error) {
	var b strings.Builder
	trip := details.Trip

	fmt.Fprintf(&b, "Trip:         %s (%s)\n", trip.Name, trip.ID)
	fmt.Fprintf(&b, "Destination:  %s\n", trip.Destination)
	fmt.Fprintf(&b, "Dates:        %s to %s\n", trip.StartDate, trip.EndDate)
	if trip.Notes != "" {
		fmt.Fprintf(&b, "Notes:        %s\n", trip.Notes)
	}

	sections := []struct {
		title  string
		count  int
		format func() (string, error)
	}{
		{"Hotels", len(details.Hotels), func() (string, error) { return f.FormatHotels(details.Hotels) }},
		{"Flights", len(details.Flights), func() (string, error) { return f.FormatFlights(details.Flights) }},
		{"Transports", len(details.Transports), func() (string, error) { return f.FormatTransports(details.Transports) }},
		{"Activities", len(details.Activities), func() (string, error) { return f.FormatActivities(details.Activities) }},
	}

	for _, section := range sections {
		if section.count == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", section.title)
		out, err := section.format()
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// FormatHotels formats a hotel list as a table
func (f *TableFormatter) FormatHotels(hotels []wayfarer.Hotel) (string, error) {
	if len(hotels) == 0 {
		return "No hotels found\n", nil
	}

	header := table.Row{"ID", "NAME", "CHECK-IN", "CHECK-OUT"}
	if f.wide() {
		header = append(header, "ADDRESS", "CONFIRMATION")
	}

	rows := make([]table.Row, 0, len(hotels))
	for _, hotel := range hotels {
		row := table.Row{hotel.ID, hotel.Name, hotel.CheckIn, hotel.CheckOut}
		if f.wide() {
			row = append(row, pkgstrings.Truncate(hotel.Address, pkgstrings.DefaultCellMaxLen), hotel.Confirmation)
		}
		rows = append(rows, row)
	}
	return f.render(header, rows), nil
}

// FormatFlights formats a flight list as a table
func (f *TableFormatter) FormatFlights(flights []wayfarer.Flight) (string, error) {
	if len(flights) == 0 {
		return "No flights found\n", nil
	}

	header := table.Row{"ID", "FLIGHT", "FROM", "TO", "DEPARTURE"}
	if f.wide() {
		header = append(header, "ARRIVAL", "CONFIRMATION")
	}

	rows := make([]table.Row, 0, len(flights))
	for _, flight := range flights {
		number := strings.TrimSpace(flight.Airline + " " + flight.Number)
		row := table.Row{flight.ID, number, flight.From, flight.To, flight.Departure}
		if f.wide() {
			row = append(row, flight.Arrival, flight.Confirmation)
		}
		rows = append(rows, row)
	}
	return f.render(header, rows), nil
}

// FormatTransports formats a transport list as a table
func (f *TableFormatter) FormatTransports(transports []wayfarer.Transport) (string, error) {
	if len(transports) == 0 {
		return "No transports found\n", nil
	}

	header := table.Row{"ID", "MODE", "FROM", "TO", "DEPARTURE"}
	if f.wide() {
		header = append(header, "ARRIVAL")
	}

	rows := make([]table.Row, 0, len(transports))
	for _, transport := range transports {
		row := table.Row{transport.ID, transport.Mode, transport.From, transport.To, transport.Departure}
		if f.wide() {
			row = append(row, transport.Arrival)
		}
		rows = append(rows, row)
	}
	return f.render(header, rows), nil
}

// FormatActivities formats an activity list as a table
func (f *TableFormatter) FormatActivities(activities []wayfarer.Activity) (string, error) {
	if len(activities) == 0 {
		return "No activities found\n", nil
	}

	header := table.Row{"ID", "TITLE", "LOCATION", "START"}
	if f.wide() {
		header = append(header, "END", "NOTES")
	}

	rows := make([]table.Row, 0, len(activities))
	for _, activity := range activities {
		row := table.Row{activity.ID, activity.Title, activity.Location, activity.Start}
		if f.wide() {
			row = append(row, activity.End, pkgstrings.Truncate(activity.Notes, pkgstrings.DefaultCellMaxLen))
		}
		rows = append(rows, row)
	}
	return f.render(header, rows), nil
}

// FormatAuthStatus formats the authentication status as human-readable text
func (f *TableFormatter) FormatAuthStatus(status *auth.Status) (string, error) {
	if status == nil || !status.HasToken {
		return "Not signed in\n\nRun 'tripctl auth login' to sign in.\n", nil
	}

	var b strings.Builder
	if status.Authenticated {
		b.WriteString("Signed in\n")
	} else {
		b.WriteString("Signed in, but the session has expired\n")
		b.WriteString("Run 'tripctl auth login' to sign in again.\n")
	}
	if !status.ExpiresAt.IsZero() {
		fmt.Fprintf(&b, "Expires:  %s\n", status.ExpiresAt.Local().Format(time.RFC1123))
	}
	if status.Scope != "" {
		fmt.Fprintf(&b, "Scope:    %s\n", status.Scope)
	}
	fmt.Fprintf(&b, "Cache:    %s\n", status.CachePath)
	return b.String(), nil
}
