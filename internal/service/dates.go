package service

import "time"

const DateLayout = "2006-01-02"

// ParseDate accepts only zero-padded YYYY-MM-DD strings naming a real calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateFormatError{Value: s, Err: err}
	}
	return t, nil
}

func Today() string {
	return time.Now().Format(DateLayout)
}
