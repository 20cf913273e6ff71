package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Category ids are numeric upstream.
var reCategory = regexp.MustCompile(`^[0-9]{1,10}$`)

// CategoryID validates the optional category query parameter.
func CategoryID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reCategory.MatchString(s)
}

// Price parses one filter bound typed by the user. Empty input means "no
// bound" and is valid; a comma decimal separator is accepted.
func Price(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || v < 0 {
		return nil, false
	}
	return &v, true
}
