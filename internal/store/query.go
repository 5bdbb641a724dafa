package store

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// DateLayout is the wire format for the from/to query parameters and the
// optional exercise date field.
const DateLayout = "2006-01-02"

// LogQuery is a parsed log request: optional inclusive date bounds and an
// optional result cap.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int64 // 0 means no cap
}

// ParseLogQuery translates the from/to/limit query parameters into a
// LogQuery. Malformed dates are rejected; an unparsable or negative limit is
// treated as "no limit".
func ParseLogQuery(params url.Values) (LogQuery, error) {
	var q LogQuery

	if s := params.Get("from"); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return LogQuery{}, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", s)
		}
		q.From = &t
	}

	if s := params.Get("to"); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return LogQuery{}, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", s)
		}
		q.To = &t
	}

	if s := params.Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			q.Limit = n
		}
	}

	return q, nil
}
