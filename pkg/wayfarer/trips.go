package wayfarer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

const tripsPath = "/api/v1/trips"

func tripPath(tripID string) string {
	return tripsPath + "/" + url.PathEscape(tripID)
}

func collectionPath(tripID, kind string) string {
	return tripPath(tripID) + "/" + kind
}

func itemPath(tripID, kind, itemID string) string {
	return collectionPath(tripID, kind) + "/" + url.PathEscape(itemID)
}

// ListTrips returns all trips of the authenticated user.
func (c *Client) ListTrips(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	if err := c.getJSON(ctx, tripsPath, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTrip returns a single trip.
func (c *Client) GetTrip(ctx context.Context, tripID string) (*Trip, error) {
	var trip Trip
	if err := c.getJSON(ctx, tripPath(tripID), &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// CreateTrip creates a trip and returns it as the server stored it.
func (c *Client) CreateTrip(ctx context.Context, trip *Trip) (*Trip, error) {
	body, err := newPayload().
		set("name", trip.Name).
		set("destination", trip.Destination).
		set("startDate", trip.StartDate).
		set("endDate", trip.EndDate).
		setNonEmpty("notes", trip.Notes).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build trip payload: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, tripsPath, body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Trip created", "id", gjson.GetBytes(respBody, "id").String())

	var created Trip
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("failed to decode created trip: %w", err)
	}
	return &created, nil
}

// UpdateTrip applies a sparse update: only the fields set on trip are sent.
func (c *Client) UpdateTrip(ctx context.Context, tripID string, trip *Trip) (*Trip, error) {
	body, err := newPayload().
		setNonEmpty("name", trip.Name).
		setNonEmpty("destination", trip.Destination).
		setNonEmpty("startDate", trip.StartDate).
		setNonEmpty("endDate", trip.EndDate).
		setNonEmpty("notes", trip.Notes).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build trip payload: %w", err)
	}

	var updated Trip
	if err := c.sendJSON(ctx, http.MethodPut, tripPath(tripID), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTrip deletes a trip and everything attached to it.
func (c *Client) DeleteTrip(ctx context.Context, tripID string) error {
	return c.delete(ctx, tripPath(tripID))
}

// GetTripDetails returns a trip with all four collections, fetched
// concurrently. The first failing fetch cancels the rest.
func (c *Client) GetTripDetails(ctx context.Context, tripID string) (*TripDetails, error) {
	details := &TripDetails{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trip, err := c.GetTrip(ctx, tripID)
		if err != nil {
			return err
		}
		details.Trip = *trip
		return nil
	})
	g.Go(func() error {
		hotels, err := c.ListHotels(ctx, tripID)
		if err != nil {
			return err
		}
		details.Hotels = hotels
		return nil
	})
	g.Go(func() error {
		flights, err := c.ListFlights(ctx, tripID)
		if err != nil {
			return err
		}
		details.Flights = flights
		return nil
	})
	g.Go(func() error {
		transports, err := c.ListTransports(ctx, tripID)
		if err != nil {
			return err
		}
		details.Transports = transports
		return nil
	})
	g.Go(func() error {
		activities, err := c.ListActivities(ctx, tripID)
		if err != nil {
			return err
		}
		details.Activities = activities
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
