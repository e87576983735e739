package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// intQueryParam reads an optional integer parameter bounded to [min, max].
func intQueryParam(r *http.Request, name string, defaultValue, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %d and %d", name, min, max)
	}
	return value, nil
}

// timeQueryParam reads an optional RFC3339 timestamp. Absent values return the zero time.
func timeQueryParam(r *http.Request, name string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, nil
	}
	value, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an RFC3339 timestamp", name)
	}
	return value.UTC(), nil
}

// timeRangeParams reads start and end and rejects ranges that end before they begin.
func timeRangeParams(r *http.Request) (time.Time, time.Time, error) {
	start, err := timeQueryParam(r, "start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := timeQueryParam(r, "end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end must not be before start")
	}
	return start, end, nil
}
