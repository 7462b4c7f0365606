package strava

import (
	"context"
	"net/http"
	"strconv"
)

// StreamParams controls stream sampling.
type StreamParams struct {
	// Resolution is "low", "medium" or "high".
	Resolution *string
	// SeriesType is "time" or "distance".
	SeriesType *string
}

func (s StreamParams) apply(p params) {
	p.setString("resolution", s.Resolution)
	p.setString("series_type", s.SeriesType)
}

// GetActivityStreams returns the requested stream types for an activity.
// Types is a comma-separated list such as "time,latlng,altitude".
func (c *Client) GetActivityStreams(ctx context.Context, activityID int64, types string, p StreamParams) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10) + "/streams/" + types
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// GetEffortStreams returns the requested stream types for a segment effort.
func (c *Client) GetEffortStreams(ctx context.Context, effortID int64, types string, p StreamParams) (any, error) {
	path := "segment_efforts/" + strconv.FormatInt(effortID, 10) + "/streams/" + types
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// GetSegmentStreams returns the requested stream types for a segment.
func (c *Client) GetSegmentStreams(ctx context.Context, segmentID int64, types string, p StreamParams) (any, error) {
	path := "segments/" + strconv.FormatInt(segmentID, 10) + "/streams/" + types
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// GetRouteStreams returns the streams for a route. Routes always return
// their full distance, latlng and altitude series.
func (c *Client) GetRouteStreams(ctx context.Context, routeID int64) (any, error) {
	path := "routes/" + strconv.FormatInt(routeID, 10) + "/streams"
	return c.do(ctx, http.MethodGet, path, newParams())
}
