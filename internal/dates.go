package internal

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order for string timestamps. RFC3339 covers
// current exports; the rest cover older hand-rolled formats.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate interprets a legacy timestamp value. Strings, numeric epoch
// values and already-decoded times are accepted; anything else, including
// values that do not parse to a valid time, yields nil rather than an error.
func parseDate(raw any) *time.Time {
	switch v := raw.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return epochTime(int64(v))
	case int:
		return epochTime(int64(v))
	case int64:
		return epochTime(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		// Some exports stringify their epoch timestamps.
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return epochTime(n)
		}
	}
	return nil
}

// epochTime interprets a numeric timestamp. Values of 1e11 and above are
// taken as milliseconds since the epoch (what JavaScript Date.now emits),
// smaller positive values as seconds.
func epochTime(n int64) *time.Time {
	if n <= 0 {
		return nil
	}
	var t time.Time
	if n >= 1e11 {
		t = time.Unix(0, n*int64(time.Millisecond))
	} else {
		t = time.Unix(n, 0)
	}
	return &t
}
