package timezone

import "time"

const (
	DefaultTimezone = "Asia/Kolkata"
	DateLayout      = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the default clinic timezone and
// then to UTC when tzdata is unavailable.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// DayStart parses a YYYY-MM-DD date as midnight in tz.
func DayStart(tz, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, Location(tz))
}

// DayEnd returns the first instant after the given day in tz.
func DayEnd(tz, date string) (time.Time, error) {
	start, err := DayStart(tz, date)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, 1), nil
}
