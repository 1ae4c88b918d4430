package model

import "time"

// monthNames maps month numbers to the English folder names used in the
// store. This table is the single source of truth for month folder naming:
// both creation and later lookup go through it, so renaming an entry here
// would orphan folders created under the old name (lookup is exact-match,
// and no migration of existing folders is attempted).
var monthNames = map[time.Month]string{
	time.January:   "January",
	time.February:  "February",
	time.March:     "March",
	time.April:     "April",
	time.May:       "May",
	time.June:      "June",
	time.July:      "July",
	time.August:    "August",
	time.September: "September",
	time.October:   "October",
	time.November:  "November",
	time.December:  "December",
}

// MonthName returns the folder name for m. The table is total over the
// twelve valid months; anything else returns the empty string.
func MonthName(m time.Month) string {
	return monthNames[m]
}
