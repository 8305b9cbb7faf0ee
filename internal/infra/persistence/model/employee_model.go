package model

import "time"

// EmployeeModel mirrors the 'employee_profiles' table.
type EmployeeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex;not null"`
	DeptID    int64     `gorm:"column:dept_id;index;not null"`
	LevelID   int64     `gorm:"column:level_id;index"`
	RealName  string    `gorm:"column:real_name;type:varchar(64);not null"`
	Education string    `gorm:"type:varchar(32)"`
	Gender    string    `gorm:"type:varchar(8)"`
	Mobile    string    `gorm:"type:varchar(11)"`
	IDNumber  string    `gorm:"column:id_number;type:varchar(18)"`
	Avatar    string    `gorm:"type:varchar(255)"`
	BirthDate time.Time `gorm:"column:birth_date"`
	JoinDate  time.Time `gorm:"column:join_date"`
	CreatedAt time.Time `gorm:"column:create_time"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employee_profiles"
}

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	DeptName string `gorm:"column:dept_name;type:varchar(64);not null"`
	ParentID int64  `gorm:"column:parent_id"`
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}

// EmployeeLevelModel mirrors the 'employee_levels' table.
type EmployeeLevelModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	LevelName        string `gorm:"column:level_name;type:varchar(32);not null"`
	LevelDescription string `gorm:"column:level_description;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeLevelModel) TableName() string {
	return "employee_levels"
}
