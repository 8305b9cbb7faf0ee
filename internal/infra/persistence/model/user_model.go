// Package model holds the GORM persistence structs mirroring the database
// tables. They never leave the persistence layer; repositories map them to
// and from domain entities.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserName     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	Mobile       string    `gorm:"type:varchar(11);index;not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	CompanyID    string    `gorm:"type:varchar(64);not null;default:default_company"`
	CreatedAt    time.Time `gorm:"column:create_time"`
	LastLoginAt  time.Time `gorm:"column:last_login_time"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
