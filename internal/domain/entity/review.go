package entity

import "time"

// PerformanceReview is one assessment record for an employee.
type PerformanceReview struct {
	ID         int64
	EmployeeID int64
	Period     string
	Score      float64
	Grade      string
	Comment    string
	CreatedAt  time.Time
}
