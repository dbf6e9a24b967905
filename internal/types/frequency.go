// Package types implements special types for the bankwatch backend.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Frequency is the reporting cadence of a report alert.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency parses a frequency string. The comparison is case
// insensitive.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(s))
	if !f.Valid() {
		return "", fmt.Errorf("%q is not a valid frequency, expected one of daily, weekly, monthly", s)
	}

	return f, nil
}

func (f Frequency) String() string {
	return string(f)
}

// Valid reports whether the frequency is one of the known values.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// Due reports whether reports of this frequency are generated at the
// given time: daily reports always, weekly ones on Mondays, monthly
// ones on the first day of the month.
func (f Frequency) Due(now time.Time) bool {
	now = now.In(time.UTC)

	switch f {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return now.Weekday() == time.Monday
	case FrequencyMonthly:
		return now.Day() == 1
	}

	return false
}

// WindowStart returns the start of the reporting window ending at now.
// The window is based on UTC midnights: one day back for daily reports,
// seven days back for weekly ones and the first day of the previous
// month for monthly ones.
func (f Frequency) WindowStart(now time.Time) time.Time {
	t := now.In(time.UTC)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	switch f {
	case FrequencyWeekly:
		return midnight.AddDate(0, 0, -7)
	case FrequencyMonthly:
		return time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	}

	return midnight.AddDate(0, 0, -1)
}

// Scan writes the value from the database.
func (f *Frequency) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*f = Frequency(v)
	case []byte:
		*f = Frequency(v)
	case nil:
		*f = ""
	default:
		return fmt.Errorf("cannot scan %T into a frequency", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (f Frequency) Value() (driver.Value, error) {
	return string(f), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Frequency) GormDataType() string {
	return "text"
}
