package wayfarer

import (
	"context"
	"fmt"
	"net/http"
)

const transportsKind = "transports"

// ListTransports returns the ground and sea connections of a trip.
func (c *Client) ListTransports(ctx context.Context, tripID string) ([]Transport, error) {
	var transports []Transport
	if err := c.getJSON(ctx, collectionPath(tripID, transportsKind), &transports); err != nil {
		return nil, err
	}
	return transports, nil
}

// AddTransport attaches a transport connection to a trip.
func (c *Client) AddTransport(ctx context.Context, tripID string, transport *Transport) (*Transport, error) {
	body, err := newPayload().
		set("mode", transport.Mode).
		set("from", transport.From).
		set("to", transport.To).
		set("departure", transport.Departure).
		set("arrival", transport.Arrival).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build transport payload: %w", err)
	}

	var created Transport
	if err := c.sendJSON(ctx, http.MethodPost, collectionPath(tripID, transportsKind), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransport applies a sparse update to a transport connection.
func (c *Client) UpdateTransport(ctx context.Context, tripID, transportID string, transport *Transport) (*Transport, error) {
	body, err := newPayload().
		setNonEmpty("mode", transport.Mode).
		setNonEmpty("from", transport.From).
		setNonEmpty("to", transport.To).
		setNonEmpty("departure", transport.Departure).
		setNonEmpty("arrival", transport.Arrival).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build transport payload: %w", err)
	}

	var updated Transport
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(tripID, transportsKind, transportID), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransport removes a transport connection from a trip.
func (c *Client) DeleteTransport(ctx context.Context, tripID, transportID string) error {
	return c.delete(ctx, itemPath(tripID, transportsKind, transportID))
}
