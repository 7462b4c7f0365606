package strava

import (
	"context"
	"net/http"
	"strconv"
)

// GetAthleteParams selects which profile to fetch.
type GetAthleteParams struct {
	// ID of the athlete to fetch. Nil means the token holder.
	ID *int64
}

// GetAthlete returns an athlete profile: the token holder's own when no ID
// is given, otherwise the athlete with that ID.
func (c *Client) GetAthlete(ctx context.Context, p GetAthleteParams) (any, error) {
	path := "athlete"
	if p.ID != nil {
		path = "athletes/" + strconv.FormatInt(*p.ID, 10)
	}
	return c.do(ctx, http.MethodGet, path, newParams())
}

// GetAthleteStats returns the activity totals for an athlete.
func (c *Client) GetAthleteStats(ctx context.Context, athleteID int64) (any, error) {
	path := "athletes/" + strconv.FormatInt(athleteID, 10) + "/stats"
	return c.do(ctx, http.MethodGet, path, newParams())
}

// ListAthleteRoutes returns the routes created by an athlete.
func (c *Client) ListAthleteRoutes(ctx context.Context, athleteID int64, p ListParams) (any, error) {
	path := "athletes/" + strconv.FormatInt(athleteID, 10) + "/routes"
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListAthleteClubs returns the clubs the token holder belongs to.
func (c *Client) ListAthleteClubs(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "athlete/clubs", newParams())
}

// ListAthleteActivitiesParams filters the token holder's activity list.
type ListAthleteActivitiesParams struct {
	// Before and After are epoch timestamps bounding the activity start.
	Before  *int64
	After   *int64
	Page    *int
	PerPage *int
}

// ListAthleteActivities returns the token holder's activities.
func (c *Client) ListAthleteActivities(ctx context.Context, p ListAthleteActivitiesParams) (any, error) {
	q := newParams()
	q.setInt64("before", p.Before)
	q.setInt64("after", p.After)
	q.setInt("page", p.Page)
	q.setInt("per_page", p.PerPage)
	return c.do(ctx, http.MethodGet, "athlete/activities", q)
}

// FriendsParams selects whose connections to list.
type FriendsParams struct {
	// ID of the athlete whose connections to list. Nil means the token
	// holder.
	ID      *int64
	Page    *int
	PerPage *int
}

// ListAthleteFriends returns the athletes a user is following.
func (c *Client) ListAthleteFriends(ctx context.Context, p FriendsParams) (any, error) {
	path := "athlete/friends"
	if p.ID != nil {
		path = "athletes/" + strconv.FormatInt(*p.ID, 10) + "/friends"
	}
	q := newParams()
	q.setInt("page", p.Page)
	q.setInt("per_page", p.PerPage)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListAthleteFollowers returns the athletes following a user.
func (c *Client) ListAthleteFollowers(ctx context.Context, p FriendsParams) (any, error) {
	path := "athlete/followers"
	if p.ID != nil {
		path = "athletes/" + strconv.FormatInt(*p.ID, 10) + "/followers"
	}
	q := newParams()
	q.setInt("page", p.Page)
	q.setInt("per_page", p.PerPage)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListBothFollowing returns the athletes both the token holder and the
// given athlete are following.
func (c *Client) ListBothFollowing(ctx context.Context, athleteID int64, p ListParams) (any, error) {
	path := "athletes/" + strconv.FormatInt(athleteID, 10) + "/both-following"
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListAthleteKoms returns an athlete's KOMs/QOMs.
func (c *Client) ListAthleteKoms(ctx context.Context, athleteID int64, p ListParams) (any, error) {
	path := "athletes/" + strconv.FormatInt(athleteID, 10) + "/koms"
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// GetAthleteZones returns the token holder's heart rate and power zones.
func (c *Client) GetAthleteZones(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "athlete/zones", newParams())
}

// StarredSegmentsParams selects whose starred segments to list.
type StarredSegmentsParams struct {
	// ID of the athlete whose starred segments to list. Nil means the
	// token holder.
	ID      *int64
	Page    *int
	PerPage *int
}

// ListStarredSegments returns starred segments. The by-ID path does not
// match the published API docs; it matches what the service actually
// serves, so it must stay as is.
func (c *Client) ListStarredSegments(ctx context.Context, p StarredSegmentsParams) (any, error) {
	path := "segments/starred"
	if p.ID != nil {
		path = "athletes/" + strconv.FormatInt(*p.ID, 10) + "/segments/starred"
	}
	q := newParams()
	q.setInt("page", p.Page)
	q.setInt("per_page", p.PerPage)
	return c.do(ctx, http.MethodGet, path, q)
}

// UpdateAthleteParams carries the profile fields that can be changed. Unset
// fields are left untouched by the remote API.
type UpdateAthleteParams struct {
	City    *string
	State   *string
	Country *string
	Sex     *string
	// Weight in kilograms.
	Weight *float64
}

// UpdateAthlete updates the token holder's profile.
func (c *Client) UpdateAthlete(ctx context.Context, p UpdateAthleteParams) (any, error) {
	q := newParams()
	q.setString("city", p.City)
	q.setString("state", p.State)
	q.setString("country", p.Country)
	q.setString("sex", p.Sex)
	q.setFloat64("weight", p.Weight)
	return c.do(ctx, http.MethodPut, "athlete", q)
}
