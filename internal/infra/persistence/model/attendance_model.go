package model

import "time"

// AttendanceModel mirrors the 'attendance_records' table.
type AttendanceModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	UserID         int64     `gorm:"column:user_id;index;not null"`
	EmployeeID     int64     `gorm:"column:employee_id;index;not null"`
	DeptID         int64     `gorm:"column:dept_id;index;not null"`
	AttendanceType int       `gorm:"column:attendance_type;index;not null"`
	CheckInTime    time.Time `gorm:"column:check_in_time;index;not null"`
	CreatedAt      time.Time `gorm:"column:create_time"`
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendance_records"
}
