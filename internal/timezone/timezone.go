package timezone

import "time"

const DefaultTimezone = "Europe/Budapest"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate interprets a YYYY-MM-DD string as midnight in the studio's
// local time. All booking math happens in that civil-calendar frame.
func ParseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}

func ParseDateTime(tz string, dateStr string, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, Location(tz))
}
