package clock

import "time"

// OfficeZone is the fixed UTC+7 reference used for attendance day
// boundaries and late/early cutoffs. Attendance timestamps are stored
// in UTC and shifted into this zone only for comparisons.
var OfficeZone = time.FixedZone("UTC+7", 7*60*60)

// Clock supplies the current time. Services take a Clock instead of
// calling time.Now so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns a Clock backed by the wall clock, normalized to UTC.
func System() Clock {
	return systemClock{}
}

// InOffice shifts t into the UTC+7 reference zone.
func InOffice(t time.Time) time.Time {
	return t.In(OfficeZone)
}

// OfficeDay formats t's calendar day in the UTC+7 reference zone.
func OfficeDay(t time.Time) string {
	return t.In(OfficeZone).Format("2006-01-02")
}

// OfficeDayAt returns hour o'clock on t's calendar day in the UTC+7
// reference zone. Used for the 08:00 late and 17:00 early cutoffs.
func OfficeDayAt(t time.Time, hour int) time.Time {
	local := t.In(OfficeZone)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, OfficeZone)
}
