package entity

import "time"

// Employee is the HR profile attached to a user account.
type Employee struct {
	ID        int64
	UserID    int64
	DeptID    int64
	LevelID   int64
	RealName  string
	Education string
	Gender    string
	Mobile    string
	IDNumber  string
	Avatar    string
	BirthDate time.Time
	JoinDate  time.Time
	CreatedAt time.Time
}

// EmployeeDetail joins the profile with the account, department and level
// rows it references. Used by the staff listing and the analytics scan.
type EmployeeDetail struct {
	Employee
	UserName  string
	Role      Role
	DeptName  string
	LevelName string
	LevelDesc string
}
