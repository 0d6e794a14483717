package attendance

import "time"

const (
	StatusOnTime = "ON_TIME"
	StatusLate   = "LATE"
	StatusEarly  = "EARLY"
)

type AttendanceResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	TimeIn        time.Time  `json:"time_in"`
	TimeOut       *time.Time `json:"time_out,omitempty"`
	TimeInStatus  string     `json:"time_in_status,omitempty"`
	TimeOutStatus *string    `json:"time_out_status,omitempty"`
}

// DailyWorkingHours aggregates completed records for one UTC+7 calendar day.
type DailyWorkingHours struct {
	Date             string  `json:"date"`
	WorkedHours      float64 `json:"worked_hours"`
	EnoughEightHours bool    `json:"enough_eight_hours"`
}
