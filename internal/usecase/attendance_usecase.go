package usecase

import (
	"context"

	"staffhub/internal/domain/entity"
)

// CheckInInput records one attendance event for the caller.
type CheckInInput struct {
	AttendanceType int `json:"attendance_type" validate:"min=1,max=4"`
}

// AttendanceChart is the x/y series consumed by the front-end charts.
type AttendanceChart struct {
	XData []string `json:"xData"`
	YData []int64  `json:"yData"`
}

// AttendanceItem is one detail row of the attendance table.
type AttendanceItem struct {
	ID              int64  `json:"_id"`
	CreateTime      string `json:"createTime"`
	StaffName       string `json:"staffName"`
	StaffDepartment string `json:"staffDepartment"`
	AttendanceType  int    `json:"attendanceType"`
	V               int    `json:"_v"`
}

// AttendanceTableOutput bundles the late/early charts and detail lists.
type AttendanceTableOutput struct {
	LateBI         AttendanceChart   `json:"lateBI"`
	LateTableList  []*AttendanceItem `json:"lateTableList"`
	EarlyBI        AttendanceChart   `json:"earlyBI"`
	EarlyTableList []*AttendanceItem `json:"earlyTableList"`
}

// AttendanceUsecase defines attendance reporting and check-in recording.
// Non-admin principals only ever see their own records.
type AttendanceUsecase interface {
	Table(ctx context.Context, principal entity.Principal) (*AttendanceTableOutput, error)
	CheckIn(ctx context.Context, principal entity.Principal, input *CheckInInput) error
}
