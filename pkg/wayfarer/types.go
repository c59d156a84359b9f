package wayfarer

// Dates and timestamps are carried as the API serves them: dates as
// "YYYY-MM-DD", timestamps as RFC 3339 strings. The client does not reparse
// them; they flow from the API to the output formatter unchanged.

// Trip is a planned trip.
type Trip struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Destination string `json:"destination" yaml:"destination"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Hotel is a lodging booking attached to a trip.
type Hotel struct {
	ID           string `json:"id" yaml:"id"`
	TripID       string `json:"tripId" yaml:"tripId"`
	Name         string `json:"name" yaml:"name"`
	Address      string `json:"address,omitempty" yaml:"address,omitempty"`
	CheckIn      string `json:"checkIn" yaml:"checkIn"`
	CheckOut     string `json:"checkOut" yaml:"checkOut"`
	Confirmation string `json:"confirmation,omitempty" yaml:"confirmation,omitempty"`
}

// Flight is a flight segment attached to a trip.
type Flight struct {
	ID           string `json:"id" yaml:"id"`
	TripID       string `json:"tripId" yaml:"tripId"`
	Airline      string `json:"airline" yaml:"airline"`
	Number       string `json:"number" yaml:"number"`
	From         string `json:"from" yaml:"from"`
	To           string `json:"to" yaml:"to"`
	Departure    string `json:"departure" yaml:"departure"`
	Arrival      string `json:"arrival" yaml:"arrival"`
	Confirmation string `json:"confirmation,omitempty" yaml:"confirmation,omitempty"`
}

// Transport is a ground or sea connection attached to a trip: train, ferry,
// rental car, transfer.
type Transport struct {
	ID        string `json:"id" yaml:"id"`
	TripID    string `json:"tripId" yaml:"tripId"`
	Mode      string `json:"mode" yaml:"mode"`
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
	Departure string `json:"departure" yaml:"departure"`
	Arrival   string `json:"arrival" yaml:"arrival"`
}

// Activity is a scheduled activity attached to a trip.
type Activity struct {
	ID       string `json:"id" yaml:"id"`
	TripID   string `json:"tripId" yaml:"tripId"`
	Title    string `json:"title" yaml:"title"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end,omitempty" yaml:"end,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// TripDetails is a trip with all of its collections.
type TripDetails struct {
	Trip       Trip        `json:"trip" yaml:"trip"`
	Hotels     []Hotel     `json:"hotels" yaml:"hotels"`
	Flights    []Flight    `json:"flights" yaml:"flights"`
	Transports []Transport `json:"transports" yaml:"transports"`
	Activities []Activity  `json:"activities" yaml:"activities"`
}
