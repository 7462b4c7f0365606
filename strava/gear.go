package strava

import (
	"context"
	"net/http"
)

// GetGear returns a bike or pair of shoes by gear ID.
func (c *Client) GetGear(ctx context.Context, gearID string) (any, error) {
	return c.do(ctx, http.MethodGet, "gear/"+gearID, newParams())
}
