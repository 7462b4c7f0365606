package strava

import (
	"context"
	"io"
	"net/http"
	"strconv"
)

// GetUpload returns the processing status of a previous upload.
func (c *Client) GetUpload(ctx context.Context, uploadID int64) (any, error) {
	path := "uploads/" + strconv.FormatInt(uploadID, 10)
	return c.do(ctx, http.MethodGet, path, newParams())
}

// UploadActivityParams describes an activity file upload. File, FileName
// and DataType are required; DataType is one of the formats the service
// accepts (fit, fit.gz, tcx, tcx.gz, gpx, gpx.gz).
type UploadActivityParams struct {
	File     io.Reader
	FileName string
	DataType string

	Name         *string
	Description  *string
	Trainer      *bool
	Commute      *bool
	ExternalID   *string
	ActivityType *ActivityType
}

// UploadActivity uploads an activity file as a multipart POST. The upload
// is processed asynchronously by the service; poll GetUpload with the
// returned upload ID for the result.
func (c *Client) UploadActivity(ctx context.Context, p UploadActivityParams) (any, error) {
	q := newParams()
	q.set("data_type", p.DataType)
	q.setString("name", p.Name)
	q.setString("description", p.Description)
	q.setBool("trainer", p.Trainer)
	q.setBool("commute", p.Commute)
	q.setString("external_id", p.ExternalID)
	if p.ActivityType != nil {
		q.set("activity_type", string(*p.ActivityType))
	}
	file := &FilePart{
		FieldName: "file",
		FileName:  p.FileName,
		Reader:    p.File,
	}
	return c.doUpload(ctx, "uploads", q, file)
}
