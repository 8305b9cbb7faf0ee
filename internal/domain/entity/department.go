package entity

// Department is an organizational unit employees belong to.
type Department struct {
	ID       int64
	Name     string
	ParentID int64
}

// EmployeeLevel is the seniority grade attached to an employee profile.
type EmployeeLevel struct {
	ID          int64
	Name        string
	Description string
}
