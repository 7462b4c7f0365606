package strava

import (
	"context"
	"net/http"
	"strconv"
)

// GetRoute returns one route by ID.
func (c *Client) GetRoute(ctx context.Context, routeID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "routes/"+strconv.FormatInt(routeID, 10), newParams())
}

// ExportRouteGPX returns a route as a GPX document. The document is passed
// through untouched regardless of verbosity.
func (c *Client) ExportRouteGPX(ctx context.Context, routeID int64) (string, error) {
	path := "routes/" + strconv.FormatInt(routeID, 10) + "/export_gpx"
	return c.doText(ctx, http.MethodGet, path, newParams())
}

// ExportRouteTCX returns a route as a TCX document. The document is passed
// through untouched regardless of verbosity.
func (c *Client) ExportRouteTCX(ctx context.Context, routeID int64) (string, error) {
	path := "routes/" + strconv.FormatInt(routeID, 10) + "/export_tcx"
	return c.doText(ctx, http.MethodGet, path, newParams())
}
