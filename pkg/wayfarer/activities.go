package wayfarer

import (
	"context"
	"fmt"
	"net/http"
)

const activitiesKind = "activities"

// ListActivities returns the scheduled activities of a trip.
func (c *Client) ListActivities(ctx context.Context, tripID string) ([]Activity, error) {
	var activities []Activity
	if err := c.getJSON(ctx, collectionPath(tripID, activitiesKind), &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// AddActivity attaches an activity to a trip.
func (c *Client) AddActivity(ctx context.Context, tripID string, activity *Activity) (*Activity, error) {
	body, err := newPayload().
		set("title", activity.Title).
		setNonEmpty("location", activity.Location).
		set("start", activity.Start).
		setNonEmpty("end", activity.End).
		setNonEmpty("notes", activity.Notes).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build activity payload: %w", err)
	}

	var created Activity
	if err := c.sendJSON(ctx, http.MethodPost, collectionPath(tripID, activitiesKind), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateActivity applies a sparse update to an activity.
func (c *Client) UpdateActivity(ctx context.Context, tripID, activityID string, activity *Activity) (*Activity, error) {
	body, err := newPayload().
		setNonEmpty("title", activity.Title).
		setNonEmpty("location", activity.Location).
		setNonEmpty("start", activity.Start).
		setNonEmpty("end", activity.End).
		setNonEmpty("notes", activity.Notes).
		bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to build activity payload: %w", err)
	}

	var updated Activity
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(tripID, activitiesKind, activityID), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteActivity removes an activity from a trip.
func (c *Client) DeleteActivity(ctx context.Context, tripID, activityID string) error {
	return c.delete(ctx, itemPath(tripID, activitiesKind, activityID))
}
