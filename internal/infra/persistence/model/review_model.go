package model

import "time"

// ReviewModel mirrors the 'performance_reviews' table.
type ReviewModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"column:employee_id;index;not null"`
	Period     string    `gorm:"type:varchar(32);not null"`
	Score      float64   `gorm:"not null"`
	Grade      string    `gorm:"type:varchar(8)"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"column:create_time"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "performance_reviews"
}
