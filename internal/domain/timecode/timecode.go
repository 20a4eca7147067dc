// Package timecode converts between HH:MM:SS wall-clock strings and total
// seconds. Hours are unbounded: durations past 24h stay plain arithmetic.
package timecode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var pattern = regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)

// Parse converts an HH:MM:SS string to total seconds. The shape must be
// exactly three integer fields.
func Parse(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time format %q: want HH:MM:SS", text)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid time format %q: field %q is not an integer", text, p)
		}
		vals[i] = v
	}
	return vals[0]*3600 + vals[1]*60 + vals[2], nil
}

// Format converts total seconds to an HH:MM:SS string. Each field is
// zero-padded to two digits; the hour field widens past 99 rather than
// truncate, so Parse(Format(s)) == s for all non-negative s.
func Format(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Add returns base + duration, both HH:MM:SS.
func Add(base, duration string) (string, error) {
	b, err := Parse(base)
	if err != nil {
		return "", err
	}
	d, err := Parse(duration)
	if err != nil {
		return "", err
	}
	return Format(b + d), nil
}

// Find returns the first HH:MM:SS-shaped substring in text. When the text
// contains several timestamp-like substrings only the first is used.
func Find(text string) (string, bool) {
	m := pattern.FindString(text)
	return m, m != ""
}
