package booking

import "time"

type Booking struct {
	ID               string
	RoomID           string
	EmployeeID       string
	StartTime        time.Time
	EndTime          time.Time
	Purpose          string
	Status           Status
	RecurringPattern *Pattern
	RecurringEndDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	RoomName     *string
	EmployeeName *string
}

// IsRecurring reports whether the booking belongs to a recurring series.
// Series membership is carried by the shared pattern and series end date
// on every occurrence.
func (b Booking) IsRecurring() bool {
	return b.RecurringPattern != nil
}

type Status string

const (
	StatusConfirmed  Status = "CONFIRMED"
	StatusCancelled  Status = "CANCELLED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
)

var Statuses = []string{
	string(StatusConfirmed),
	string(StatusCancelled),
	string(StatusCheckedIn),
	string(StatusCheckedOut),
}

type Pattern string

const (
	PatternDaily   Pattern = "DAILY"
	PatternWeekly  Pattern = "WEEKLY"
	PatternMonthly Pattern = "MONTHLY"
)

var Patterns = []string{
	string(PatternDaily),
	string(PatternWeekly),
	string(PatternMonthly),
}

// Step advances t by one occurrence of the pattern. Monthly stepping
// uses ordinary calendar arithmetic: AddDate normalizes an overflowed
// day-of-month forward, so 2024-01-31 plus one month lands on 2024-03-02.
func (p Pattern) Step(t time.Time) time.Time {
	switch p {
	case PatternDaily:
		return t.AddDate(0, 0, 1)
	case PatternWeekly:
		return t.AddDate(0, 0, 7)
	case PatternMonthly:
		return t.AddDate(0, 1, 0)
	}
	return t
}
