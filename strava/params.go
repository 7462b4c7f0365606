package strava

import "strconv"

// params collects query parameters for one request. Optional fields that
// were left unset are never added, so the remote API applies its own
// defaults rather than seeing empty strings.
type params map[string]string

func newParams() params { return params{} }

func (p params) set(key, value string) { p[key] = value }

func (p params) setString(key string, v *string) {
	if v != nil {
		p[key] = *v
	}
}

func (p params) setInt(key string, v *int) {
	if v != nil {
		p[key] = strconv.Itoa(*v)
	}
}

func (p params) setInt64(key string, v *int64) {
	if v != nil {
		p[key] = strconv.FormatInt(*v, 10)
	}
}

func (p params) setFloat64(key string, v *float64) {
	if v != nil {
		p[key] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

func (p params) setBool(key string, v *bool) {
	if v != nil {
		p[key] = strconv.FormatBool(*v)
	}
}

// query copies the bag so the caller can append the credential without
// mutating the operation's params.
func (p params) query() map[string]string {
	q := make(map[string]string, len(p)+1)
	for k, v := range p {
		q[k] = v
	}
	return q
}

// ListParams is the paging control shared by the list endpoints. Unset
// fields leave paging to the remote API's defaults.
type ListParams struct {
	Page    *int
	PerPage *int
}

func (l ListParams) apply(p params) {
	p.setInt("page", l.Page)
	p.setInt("per_page", l.PerPage)
}

// Pointer helpers for optional parameters.

func Int(v int) *int { return &v }

func Int64(v int64) *int64 { return &v }

func Float64(v float64) *float64 { return &v }

func String(v string) *string { return &v }

func Bool(v bool) *bool { return &v }
