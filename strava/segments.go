package strava

import (
	"context"
	"net/http"
	"strconv"
)

// GetSegment returns one segment by ID.
func (c *Client) GetSegment(ctx context.Context, segmentID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "segments/"+strconv.FormatInt(segmentID, 10), newParams())
}

// GetSegmentLeaderboardParams filters a segment leaderboard.
type GetSegmentLeaderboardParams struct {
	// Gender is "M" or "F".
	Gender *string
	// AgeGroup like "25_34". Requires a Summit account on the service side.
	AgeGroup *string
	// WeightClass like "55_64" (kg) or "125_149" (lbs).
	WeightClass *string
	Following   *bool
	ClubID      *int64
	// DateRange is one of "this_year", "this_month", "this_week", "today".
	DateRange      *string
	ContextEntries *int
	Page           *int
	PerPage        *int
}

// GetSegmentLeaderboard returns the leaderboard for a segment.
func (c *Client) GetSegmentLeaderboard(ctx context.Context, segmentID int64, p GetSegmentLeaderboardParams) (any, error) {
	path := "segments/" + strconv.FormatInt(segmentID, 10) + "/leaderboard"
	q := newParams()
	q.setString("gender", p.Gender)
	q.setString("age_group", p.AgeGroup)
	q.setString("weight_class", p.WeightClass)
	q.setBool("following", p.Following)
	q.setInt64("club_id", p.ClubID)
	q.setString("date_range", p.DateRange)
	q.setInt("context_entries", p.ContextEntries)
	q.setInt("page", p.Page)
	q.setInt("per_page", p.PerPage)
	return c.do(ctx, http.MethodGet, path, q)
}

// ExploreSegmentsParams bounds the segment search.
type ExploreSegmentsParams struct {
	// Bounds is "sw_lat,sw_lng,ne_lat,ne_lng".
	Bounds string
	// ActivityType is "running" or "riding".
	ActivityType *string
	// MinCat and MaxCat are climb categories, 0 to 5.
	MinCat *int
	MaxCat *int
}

// ExploreSegments returns the top segments within a geographic area.
func (c *Client) ExploreSegments(ctx context.Context, p ExploreSegmentsParams) (any, error) {
	q := newParams()
	q.set("bounds", p.Bounds)
	q.setString("activity_type", p.ActivityType)
	q.setInt("min_cat", p.MinCat)
	q.setInt("max_cat", p.MaxCat)
	return c.do(ctx, http.MethodGet, "segments/explore", q)
}

// ListSegmentEffortsParams filters a segment's effort history.
type ListSegmentEffortsParams struct {
	AthleteID *int64
	// StartDateLocal and EndDateLocal in ISO 8601.
	StartDateLocal *string
	EndDateLocal   *string
	Page           *int
	PerPage        *int
}

// ListSegmentEfforts returns the token holder's (or a given athlete's)
// efforts on a segment.
func (c *Client) ListSegmentEfforts(ctx context.Context, segmentID int64, p ListSegmentEffortsParams) (any, error) {
	path := "segments/" + strconv.FormatInt(segmentID, 10) + "/all_efforts"
	q := newParams()
	q.setInt64("athlete_id", p.AthleteID)
	q.setString("start_date_local", p.StartDateLocal)
	q.setString("end_date_local", p.EndDateLocal)
	q.setInt("page", p.Page)
	q.setInt("per_page", p.PerPage)
	return c.do(ctx, http.MethodGet, path, q)
}
