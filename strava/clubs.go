package strava

import (
	"context"
	"net/http"
	"strconv"
)

// GetClub returns one club by ID.
func (c *Client) GetClub(ctx context.Context, clubID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "clubs/"+strconv.FormatInt(clubID, 10), newParams())
}

// ListClubMembers returns the members of a club.
func (c *Client) ListClubMembers(ctx context.Context, clubID int64, p ListParams) (any, error) {
	path := "clubs/" + strconv.FormatInt(clubID, 10) + "/members"
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListClubActivitiesParams filters a club's activity feed.
type ListClubActivitiesParams struct {
	// Before is an epoch timestamp; only activities started before it are
	// returned.
	Before  *int64
	Page    *int
	PerPage *int
}

// ListClubActivities returns the recent activities of a club's members.
func (c *Client) ListClubActivities(ctx context.Context, clubID int64, p ListClubActivitiesParams) (any, error) {
	path := "clubs/" + strconv.FormatInt(clubID, 10) + "/activities"
	q := newParams()
	q.setInt64("before", p.Before)
	q.setInt("page", p.Page)
	q.setInt("per_page", p.PerPage)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListClubAnnouncements returns a club's announcements.
func (c *Client) ListClubAnnouncements(ctx context.Context, clubID int64) (any, error) {
	path := "clubs/" + strconv.FormatInt(clubID, 10) + "/announcements"
	return c.do(ctx, http.MethodGet, path, newParams())
}

// ListClubGroupEvents returns a club's upcoming group events.
func (c *Client) ListClubGroupEvents(ctx context.Context, clubID int64) (any, error) {
	path := "clubs/" + strconv.FormatInt(clubID, 10) + "/group_events"
	return c.do(ctx, http.MethodGet, path, newParams())
}

// JoinClub joins the token holder to a club.
func (c *Client) JoinClub(ctx context.Context, clubID int64) (any, error) {
	path := "clubs/" + strconv.FormatInt(clubID, 10) + "/join"
	return c.do(ctx, http.MethodPost, path, newParams())
}

// LeaveClub removes the token holder from a club.
func (c *Client) LeaveClub(ctx context.Context, clubID int64) (any, error) {
	path := "clubs/" + strconv.FormatInt(clubID, 10) + "/leave"
	return c.do(ctx, http.MethodPost, path, newParams())
}
