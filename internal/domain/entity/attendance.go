package entity

import "time"

// AttendanceType classifies a single attendance record.
type AttendanceType int

const (
	AttendanceNormal  AttendanceType = 1
	AttendanceAbsence AttendanceType = 2
	AttendanceLate    AttendanceType = 3
	AttendanceEarly   AttendanceType = 4
)

// IsValid reports whether the type is one of the known values.
func (t AttendanceType) IsValid() bool {
	return t >= AttendanceNormal && t <= AttendanceEarly
}

// AttendanceRecord is one check-in event for an employee.
type AttendanceRecord struct {
	ID          int64
	UserID      int64
	EmployeeID  int64
	DeptID      int64
	Type        AttendanceType
	CheckInTime time.Time
	CreatedAt   time.Time
}

// AttendanceDetail is a record joined with the employee and department
// names, as rendered by the attendance table endpoint.
type AttendanceDetail struct {
	AttendanceRecord
	StaffName       string
	StaffDepartment string
}

// DayCount is a per-day bucket used by the attendance charts.
type DayCount struct {
	Day   time.Time
	Count int64
}
