package wayfarer

import (
	"context"
	"fmt"
	"net/http"
)

const hotelsKind = "hotels"

// ListHotels returns the hotels booked for a trip.
func (c *Client) ListHotels(ctx context.Context, tripID string) ([]Hotel, error) {
	var hotels []Hotel
	if err := c.getJSON(ctx, collectionPath(tripID, hotelsKind), &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// AddHotel attaches a hotel booking to a trip.
func (c *Client) AddHotel(ctx context.Context, tripID string, hotel *Hotel) (*Hotel, error) {
	body, err := newPayload().
		set("name", hotel.Name).
		setNonEmpty("address", hotel.Address).
		set("checkIn", hotel.CheckIn).
		set("checkOut", hotel.CheckOut).
		setNonEmpty("confirmation", hotel.Confirmation).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build hotel payload: %w", err)
	}

	var created Hotel
	if err := c.sendJSON(ctx, http.MethodPost, collectionPath(tripID, hotelsKind), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateHotel applies a sparse update to a hotel booking.
func (c *Client) UpdateHotel(ctx context.Context, tripID, hotelID string, hotel *Hotel) (*Hotel, error) {
	body, err := newPayload().
		setNonEmpty("name", hotel.Name).
		setNonEmpty("address", hotel.Address).
		setNonEmpty("checkIn", hotel.CheckIn).
		setNonEmpty("checkOut", hotel.CheckOut).
		setNonEmpty("confirmation", hotel.Confirmation).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build hotel payload: %w", err)
	}

	var updated Hotel
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(tripID, hotelsKind, hotelID), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteHotel removes a hotel booking from a trip.
func (c *Client) DeleteHotel(ctx context.Context, tripID, hotelID string) error {
	return c.delete(ctx, itemPath(tripID, hotelsKind, hotelID))
}
