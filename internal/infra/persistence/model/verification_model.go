package model

import "time"

// VerificationCodeModel mirrors the 'verification_codes' table.
// Rows are insert-only; there is no consumed flag.
type VerificationCodeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Mobile    string    `gorm:"type:varchar(11);index:idx_codes_lookup;not null"`
	Code      string    `gorm:"type:varchar(6);index:idx_codes_lookup;not null"`
	Type      int       `gorm:"column:type;index:idx_codes_lookup;not null"`
	ExpiresAt time.Time `gorm:"column:expire_time;not null"`
	CreatedAt time.Time `gorm:"column:create_time"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}
