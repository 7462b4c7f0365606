package strava

import (
	"context"
	"net/http"
	"strconv"
)

// GetActivityParams controls the activity detail response.
type GetActivityParams struct {
	IncludeAllEfforts *bool
}

// GetActivity returns one activity by ID.
func (c *Client) GetActivity(ctx context.Context, activityID int64, p GetActivityParams) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10)
	q := newParams()
	q.setBool("include_all_efforts", p.IncludeAllEfforts)
	return c.do(ctx, http.MethodGet, path, q)
}

// CreateActivityParams describes a manual activity. Name, type, start time
// and elapsed time are required by the remote API.
type CreateActivityParams struct {
	Name string
	Type ActivityType
	// StartDateLocal in ISO 8601.
	StartDateLocal string
	// ElapsedTime in seconds.
	ElapsedTime int

	SportType   *SportType
	Description *string
	// Distance in metres.
	Distance *float64
	Trainer  *bool
	Commute  *bool
}

// CreateActivity creates a manual activity for the token holder.
func (c *Client) CreateActivity(ctx context.Context, p CreateActivityParams) (any, error) {
	q := newParams()
	q.set("name", p.Name)
	q.set("type", string(p.Type))
	q.set("start_date_local", p.StartDateLocal)
	q.set("elapsed_time", strconv.Itoa(p.ElapsedTime))
	if p.SportType != nil {
		q.set("sport_type", string(*p.SportType))
	}
	q.setString("description", p.Description)
	q.setFloat64("distance", p.Distance)
	q.setBool("trainer", p.Trainer)
	q.setBool("commute", p.Commute)
	return c.do(ctx, http.MethodPost, "activities", q)
}

// UpdateActivityParams carries the activity fields that can be changed.
type UpdateActivityParams struct {
	Name         *string
	Type         *ActivityType
	SportType    *SportType
	Description  *string
	GearID       *string
	Trainer      *bool
	Commute      *bool
	HideFromHome *bool
}

// UpdateActivity updates one of the token holder's activities.
func (c *Client) UpdateActivity(ctx context.Context, activityID int64, p UpdateActivityParams) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10)
	q := newParams()
	q.setString("name", p.Name)
	q.setString("description", p.Description)
	q.setString("gear_id", p.GearID)
	q.setBool("trainer", p.Trainer)
	q.setBool("commute", p.Commute)
	q.setBool("hide_from_home", p.HideFromHome)
	if p.Type != nil {
		q.set("type", string(*p.Type))
	}
	if p.SportType != nil {
		q.set("sport_type", string(*p.SportType))
	}
	return c.do(ctx, http.MethodPut, path, q)
}

// DeleteActivity removes one of the token holder's activities.
func (c *Client) DeleteActivity(ctx context.Context, activityID int64) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10)
	return c.do(ctx, http.MethodDelete, path, newParams())
}

// ListActivityComments returns the comments on an activity.
func (c *Client) ListActivityComments(ctx context.Context, activityID int64, p ListParams) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10) + "/comments"
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListActivityKudos returns the athletes who kudoed an activity.
func (c *Client) ListActivityKudos(ctx context.Context, activityID int64, p ListParams) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10) + "/kudos"
	q := newParams()
	p.apply(q)
	return c.do(ctx, http.MethodGet, path, q)
}

// ListActivityPhotosParams controls photo sizing and sources.
type ListActivityPhotosParams struct {
	// Size is the requested photo dimension in pixels.
	Size         *int
	PhotoSources *bool
}

// ListActivityPhotos returns the photos attached to an activity.
func (c *Client) ListActivityPhotos(ctx context.Context, activityID int64, p ListActivityPhotosParams) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10) + "/photos"
	q := newParams()
	q.setInt("size", p.Size)
	q.setBool("photo_sources", p.PhotoSources)
	return c.do(ctx, http.MethodGet, path, q)
}

// GetActivityZones returns the heart rate and power zone distribution of an
// activity.
func (c *Client) GetActivityZones(ctx context.Context, activityID int64) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10) + "/zones"
	return c.do(ctx, http.MethodGet, path, newParams())
}

// ListActivityLaps returns the laps of an activity.
func (c *Client) ListActivityLaps(ctx context.Context, activityID int64) (any, error) {
	path := "activities/" + strconv.FormatInt(activityID, 10) + "/laps"
	return c.do(ctx, http.MethodGet, path, newParams())
}
