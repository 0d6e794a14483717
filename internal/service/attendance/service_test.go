package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/ngochidung2111/DACN-BE/internal/domain/attendance"
	"github.com/ngochidung2111/DACN-BE/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mutableClock lets a test advance time between check-in and check-out.
type mutableClock struct {
	now time.Time
}

func (c *mutableClock) Now() time.Time {
	return c.now
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.records[a.ID] = a
	return a, nil
}

func (r *fakeAttendanceRepo) GetOpenByEmployee(_ context.Context, employeeID string) (attendance.Attendance, error) {
	var open *attendance.Attendance
	for _, a := range r.records {
		if a.EmployeeID != employeeID || !a.IsOpen() {
			continue
		}
		rec := a
		if open == nil || rec.TimeIn.After(open.TimeIn) {
			open = &rec
		}
	}
	if open == nil {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	return *open, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.records[a.ID] = a
	return a, nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListCompletedInPeriod(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range r.records {
		if a.EmployeeID != employeeID || a.TimeOut == nil {
			continue
		}
		if a.TimeIn.Before(from) || !a.TimeIn.Before(to) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func newTestService(clk *mutableClock) (attendance.AttendanceService, *fakeAttendanceRepo) {
	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Email: "ana@example.com", FirstName: "Ana", LastName: "Tran"},
	}}
	return NewAttendanceService(attendanceRepo, employeeRepo, clk), attendanceRepo
}

// utc builds a UTC timestamp on 2024-03-04. 08:00 UTC+7 is 01:00 UTC and
// 17:00 UTC+7 is 10:00 UTC.
func utc(hour, minute int) time.Time {
	return time.Date(2024, time.March, 4, hour, minute, 0, 0, time.UTC)
}

func TestCheckIn_OnTimeBeforeCutoff(t *testing.T) {
	clk := &mutableClock{now: utc(0, 59)} // 07:59 UTC+7
	svc, _ := newTestService(clk)

	resp, err := svc.CheckIn(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, resp.TimeInStatus)
	assert.Nil(t, resp.TimeOut)
	assert.Nil(t, resp.TimeOutStatus)
}

func TestCheckIn_LateAfterCutoff(t *testing.T) {
	clk := &mutableClock{now: utc(1, 30)} // 08:30 UTC+7
	svc, _ := newTestService(clk)

	resp, err := svc.CheckIn(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.TimeInStatus)
}

func TestCheckIn_TwiceRejected(t *testing.T) {
	clk := &mutableClock{now: utc(1, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	clk.now = utc(2, 0)
	_, err = svc.CheckIn(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_AllowedAgainAfterCheckOut(t *testing.T) {
	clk := &mutableClock{now: utc(1, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	clk.now = utc(10, 30)
	_, err = svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	clk.now = utc(12, 0)
	_, err = svc.CheckIn(ctx, "emp-1")
	assert.NoError(t, err)
}

func TestCheckOut_WithoutOpenRecordRejected(t *testing.T) {
	clk := &mutableClock{now: utc(10, 0)}
	svc, _ := newTestService(clk)

	_, err := svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_EarlyBeforeCutoff(t *testing.T) {
	clk := &mutableClock{now: utc(1, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	clk.now = utc(9, 30) // 16:30 UTC+7
	resp, err := svc.CheckOut(ctx, "emp-1")

	require.NoError(t, err)
	require.NotNil(t, resp.TimeOutStatus)
	assert.Equal(t, attendance.StatusEarly, *resp.TimeOutStatus)
}

func TestCheckOut_OnTimeAfterCutoff(t *testing.T) {
	clk := &mutableClock{now: utc(1, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	clk.now = utc(10, 30) // 17:30 UTC+7
	resp, err := svc.CheckOut(ctx, "emp-1")

	require.NoError(t, err)
	require.NotNil(t, resp.TimeOutStatus)
	assert.Equal(t, attendance.StatusOnTime, *resp.TimeOutStatus)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	clk := &mutableClock{now: utc(1, 0)}
	svc, _ := newTestService(clk)

	_, err := svc.CheckIn(context.Background(), "emp-missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetDailyWorkingHours_BucketsByOfficeDay(t *testing.T) {
	clk := &mutableClock{now: utc(1, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	// Day one: 01:00-10:30 UTC, 9.5 hours
	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	clk.now = utc(10, 30)
	_, err = svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	// Day two: two short sessions totalling 6 hours
	nextDay := utc(1, 0).AddDate(0, 0, 1)
	clk.now = nextDay
	_, err = svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	clk.now = nextDay.Add(4 * time.Hour)
	_, err = svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	clk.now = nextDay.Add(5 * time.Hour)
	_, err = svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	clk.now = nextDay.Add(7 * time.Hour)
	_, err = svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	// A dangling open session must not count
	clk.now = nextDay.Add(8 * time.Hour)
	_, err = svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	days, err := svc.GetDailyWorkingHours(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, days, 2)

	// Newest day first
	assert.Equal(t, "2024-03-05", days[0].Date)
	assert.Equal(t, 6.0, days[0].WorkedHours)
	assert.False(t, days[0].EnoughEightHours)

	assert.Equal(t, "2024-03-04", days[1].Date)
	assert.Equal(t, 9.5, days[1].WorkedHours)
	assert.True(t, days[1].EnoughEightHours)
}

func TestGetDailyWorkingHours_OfficeDayCrossesUTCMidnight(t *testing.T) {
	clk := &mutableClock{now: time.Date(2024, time.March, 4, 20, 0, 0, 0, time.UTC)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	// 20:00 UTC on March 4 is 03:00 March 5 in UTC+7, so the session
	// belongs to March 5
	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	clk.now = clk.now.Add(2 * time.Hour)
	_, err = svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	days, err := svc.GetDailyWorkingHours(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-05", days[0].Date)
	assert.Equal(t, 2.0, days[0].WorkedHours)
}

func TestGetDailyWorkingHours_RoundsToTwoDecimals(t *testing.T) {
	clk := &mutableClock{now: utc(1, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	clk.now = utc(1, 0).Add(100 * time.Minute) // 1.666... hours
	_, err = svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	days, err := svc.GetDailyWorkingHours(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 1.67, days[0].WorkedHours)
}

func TestGetAttendanceByEmployee_AnnotatesEveryRecord(t *testing.T) {
	clk := &mutableClock{now: utc(1, 30)} // late check-in
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	clk.now = utc(9, 0) // early check-out
	_, err = svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	records, err := svc.GetAttendanceByEmployee(ctx, "emp-1")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusLate, records[0].TimeInStatus)
	require.NotNil(t, records[0].TimeOutStatus)
	assert.Equal(t, attendance.StatusEarly, *records[0].TimeOutStatus)
}
