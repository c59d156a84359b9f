package wayfarer

import (
	"context"
	"fmt"
	"net/http"
)

const flightsKind = "flights"

// ListFlights returns the flight segments of a trip.
func (c *Client) ListFlights(ctx context.Context, tripID string) ([]Flight, error) {
	var flights []Flight
	if err := c.getJSON(ctx, collectionPath(tripID, flightsKind), &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// AddFlight attaches a flight segment to a trip.
func (c *Client) AddFlight(ctx context.Context, tripID string, flight *Flight) (*Flight, error) {
	body, err := newPayload().
		set("airline", flight.Airline).
		set("number", flight.Number).
		set("from", flight.From).
		set("to", flight.To).
		set("departure", flight.Departure).
		set("arrival", flight.Arrival).
		setNonEmpty("confirmation", flight.Confirmation).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build flight payload: %w", err)
	}

	var created Flight
	if err := c.sendJSON(ctx, http.MethodPost, collectionPath(tripID, flightsKind), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFlight applies a sparse update to a flight segment.
func (c *Client) UpdateFlight(ctx context.Context, tripID, flightID string, flight *Flight) (*Flight, error) {
	body, err := newPayload().
		setNonEmpty("airline", flight.Airline).
		setNonEmpty("number", flight.Number).
		setNonEmpty("from", flight.From).
		setNonEmpty("to", flight.To).
		setNonEmpty("departure", flight.Departure).
		setNonEmpty("arrival", flight.Arrival).
		setNonEmpty("confirmation", flight.Confirmation).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build flight payload: %w", err)
	}

	var updated Flight
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(tripID, flightsKind, flightID), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFlight removes a flight segment from a trip.
func (c *Client) DeleteFlight(ctx context.Context, tripID, flightID string) error {
	return c.delete(ctx, itemPath(tripID, flightsKind, flightID))
}
