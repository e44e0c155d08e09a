package utils

import "time"

// DateLayout is the wire format for date-precision fields.
const DateLayout = "2006-01-02"

// ParseDate parses an optional date-only field; empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders an optional date-only field; nil yields "".
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
