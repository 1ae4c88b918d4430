package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrDateParse means a filename matched the date pattern but the extracted
// substring failed to parse under every known layout. The file is skipped
// rather than falling back to its creation time: a recognizable but malformed
// date should surface, not silently mis-file the document.
var ErrDateParse = errors.New("unparseable date in filename")

// ErrNoTimestamp means a file had no date in its name and no usable creation
// timestamp to fall back on. The store always supplies a creation time for
// real files, so this only occurs when the store returned one the client
// could not parse; filing such a file under year 1 would be worse than
// skipping it.
var ErrNoTimestamp = errors.New("no usable creation timestamp")

// datePattern matches PDF filenames carrying a date substring anywhere in the
// name. Alternatives, in order: "Feb 27, 2025", "02/27/2025", "2025-02-27".
// The date does not have to be the whole filename; the greedy prefix means
// the last candidate in the name is the one captured.
var datePattern = regexp.MustCompile(
	`(?i)^.*((?:[a-z]{3}\s+\d{1,2},\s+\d{4})|(?:\d{1,2}/\d{1,2}/\d{4})|(?:\d{4}-\d{1,2}-\d{1,2})).*\.pdf$`,
)

// dateLayouts are tried in the same order as the pattern alternatives.
// Unpadded layouts accept both "2/7/2025" and "02/27/2025"; time.Parse
// rejects out-of-range days, so "Feb 31" fails here instead of rolling over.
var dateLayouts = []string{
	"Jan 2, 2006",
	"1/2/2006",
	"2006-1-2",
}

// Resolve determines the (year, month) bucket for a file. A date embedded in
// the filename wins; otherwise the store-assigned creation timestamp is used.
// A zero createdAt marks a timestamp the store client could not parse and
// fails the fallback path with ErrNoTimestamp.
func Resolve(fileName string, createdAt time.Time) (int, time.Month, error) {
	m := datePattern.FindStringSubmatch(fileName)
	if m == nil {
		if createdAt.IsZero() {
			return 0, 0, fmt.Errorf("%w for %q", ErrNoTimestamp, fileName)
		}
		return createdAt.Year(), createdAt.Month(), nil
	}

	sub := m[1]
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, sub); err == nil {
			return t.Year(), t.Month(), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrDateParse, sub)
}
