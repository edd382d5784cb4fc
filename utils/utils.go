package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIndex parses s as an index into a table of n entries.
func ParseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d out of range [0,%d)", i, n)
	}
	return i, nil
}

// PageURL builds the page location for a spectrum band selection and anchor.
// An empty band leaves the query out.
func PageURL(band, anchor string) string {
	u := url.URL{Path: "/", Fragment: anchor}
	if band != "" {
		u.RawQuery = url.Values{"band": {band}}.Encode()
	}
	return u.String()
}
