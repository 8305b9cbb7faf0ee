package usecase

import (
	"context"

	"staffhub/internal/domain/entity"
)

// --- Input DTOs ---

// StaffQueryData carries the optional column filters of the staff listing.
type StaffQueryData struct {
	Education  []string `json:"education"`
	Level      []string `json:"level"`
	Department []string `json:"department"`
	Name       []string `json:"name"`
}

// ListStaffInput defines the staff listing request.
type ListStaffInput struct {
	Page      int            `json:"page"`
	Size      int            `json:"size"`
	QueryData StaffQueryData `json:"queryData"`
}

// StaffRef names a referenced department or level by id.
type StaffRef struct {
	ID int64 `json:"id"`
}

// AddStaffInput defines the admin-only staff creation request. It creates
// the account and the profile in one transaction.
type AddStaffInput struct {
	Name       string    `json:"name" validate:"required"`
	UserName   string    `json:"userName" validate:"required"`
	Password   string    `json:"password" validate:"required"`
	Department StaffRef  `json:"department"`
	Level      StaffRef  `json:"level"`
	Education  string    `json:"education"`
	Mobile     string    `json:"mobile"`
	Sex        string    `json:"sex"`
	Birthday   string    `json:"birthday"`
	JoinDate   string    `json:"joinDate"`
	Avatar     string    `json:"avatar"`
	IDNumber   string    `json:"idNumber"`
}

// UpdateStaffInput defines the staff update request. Nil pointers mean
// "leave unchanged". Admins may touch everything; owners only the mobile.
type UpdateStaffInput struct {
	Name       *string   `json:"name"`
	Department *StaffRef `json:"department"`
	Education  *string   `json:"education"`
	Level      *StaffRef `json:"level"`
	Mobile     *string   `json:"mobile"`
}

// AddReviewInput defines the admin-only assessment creation request.
type AddReviewInput struct {
	EmployeeID int64   `json:"employee_id" validate:"required"`
	Period     string  `json:"period" validate:"required"`
	Score      float64 `json:"score"`
	Grade      string  `json:"grade"`
	Comment    string  `json:"comment"`
}

// --- Output DTOs ---

// StaffLevel renders the joined level columns.
type StaffLevel struct {
	LevelName        string `json:"levelName"`
	LevelDescription string `json:"levelDescription"`
}

// StaffDepartment renders the joined department columns.
type StaffDepartment struct {
	ID             int64  `json:"id"`
	DepartmentName string `json:"departmentName"`
}

// StaffItem is one row of the staff listing and the detail payload.
// Identity is 1 for admins and 0 for regular accounts.
type StaffItem struct {
	ID         int64           `json:"id"`
	Identity   int             `json:"identity"`
	Level      StaffLevel      `json:"level"`
	Name       string          `json:"name"`
	UserName   string          `json:"userName"`
	Department StaffDepartment `json:"department"`
	Education  string          `json:"education"`
	Mobile     string          `json:"mobile"`
	Sex        string          `json:"sex"`
	Birthday   string          `json:"birthday"`
	JoinDate   string          `json:"joinDate"`
	Avatar     string          `json:"avatar"`
	IDNumber   string          `json:"idNumber,omitempty"`
}

// ListStaffOutput is the staff listing payload.
type ListStaffOutput struct {
	Total     int64        `json:"total"`
	StaffList []*StaffItem `json:"staffList"`
}

// AddStaffOutput echoes the created profile.
type AddStaffOutput struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// DepartmentItem is one row of the department listing.
type DepartmentItem struct {
	ID             int64  `json:"id"`
	DepartmentName string `json:"departmentName"`
}

// LevelItem is one row of the employee level listing.
type LevelItem struct {
	ID               int64  `json:"id"`
	LevelName        string `json:"levelName"`
	LevelDescription string `json:"levelDescription"`
}

// ReviewItem is one assessment record.
type ReviewItem struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Period     string  `json:"period"`
	Score      float64 `json:"score"`
	Grade      string  `json:"grade"`
	Comment    string  `json:"comment"`
	CreateTime string  `json:"create_time"`
}

// StaffUsecase defines employee profile management. Role and ownership
// gates are enforced here with the caller's principal.
type StaffUsecase interface {
	List(ctx context.Context, principal entity.Principal, input *ListStaffInput) (*ListStaffOutput, error)
	Detail(ctx context.Context, principal entity.Principal, id int64) (*StaffItem, error)
	Add(ctx context.Context, principal entity.Principal, input *AddStaffInput) (*AddStaffOutput, error)
	Update(ctx context.Context, principal entity.Principal, id int64, input *UpdateStaffInput) error
	Delete(ctx context.Context, principal entity.Principal, id int64) error
	Departments(ctx context.Context) ([]*DepartmentItem, error)
	Levels(ctx context.Context) ([]*LevelItem, error)
	AddReview(ctx context.Context, principal entity.Principal, input *AddReviewInput) (*ReviewItem, error)
	ListReviews(ctx context.Context, principal entity.Principal, employeeID int64) ([]*ReviewItem, error)
}
