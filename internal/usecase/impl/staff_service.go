package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/domain/service"
	"staffhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultStaffPage = 1
	defaultStaffSize = 10

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// staffService implements the StaffUsecase interface.
type staffService struct {
	txManager    repository.TransactionManager
	employeeRepo repository.EmployeeRepository
	deptRepo     repository.DepartmentRepository
	reviewRepo   repository.ReviewRepository
	credentials  service.CredentialValidator
	logger       *slog.Logger
}

// StaffServiceParams holds dependencies for StaffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EmployeeRepo repository.EmployeeRepository
	DeptRepo     repository.DepartmentRepository
	ReviewRepo   repository.ReviewRepository
	Credentials  service.CredentialValidator
	Logger       *slog.Logger
}

// NewStaffService is the constructor for staffService.
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	return &staffService{
		txManager:    params.TxManager,
		employeeRepo: params.EmployeeRepo,
		deptRepo:     params.DeptRepo,
		reviewRepo:   params.ReviewRepo,
		credentials:  params.Credentials,
		logger:       params.Logger,
	}
}

func (srv *staffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of profiles. Non-admin callers are scoped to their
// own row regardless of the filters they send.
func (srv *staffService) List(ctx context.Context, principal entity.Principal, input *usecase.ListStaffInput) (*usecase.ListStaffOutput, error) {
	query := repository.StaffQuery{
		Education:  input.QueryData.Education,
		Level:      input.QueryData.Level,
		Department: input.QueryData.Department,
		Name:       input.QueryData.Name,
		Page:       input.Page,
		Size:       input.Size,
	}
	if query.Page <= 0 {
		query.Page = defaultStaffPage
	}
	if query.Size <= 0 {
		query.Size = defaultStaffSize
	}
	if !principal.IsAdmin() {
		query.UserID = principal.UserID
	}

	details, total, err := srv.employeeRepo.List(ctx, query)
	if err != nil {
		srv.log(ctx).Error("failed to list staff", slog.String("error", err.Error()))

		return nil, domainerrors.ErrStaffListFailed
	}

	items := make([]*usecase.StaffItem, 0, len(details))
	for _, detail := range details {
		items = append(items, toStaffItem(detail))
	}

	return &usecase.ListStaffOutput{Total: total, StaffList: items}, nil
}

// Detail returns one joined profile, behind the ownership gate.
func (srv *staffService) Detail(ctx context.Context, principal entity.Principal, id int64) (*usecase.StaffItem, error) {
	detail, err := srv.employeeRepo.FindDetailByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrStaffNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find staff detail")
	}

	if !principal.Owns(detail.UserID) {
		return nil, domainerrors.ErrStaffForbidden
	}

	return toStaffItem(detail), nil
}

// Add creates the login account and the HR profile in one transaction, so
// a profile can never exist without its account. Admin only. New accounts
// always get the User role.
func (srv *staffService) Add(ctx context.Context, principal entity.Principal, input *usecase.AddStaffInput) (*usecase.AddStaffOutput, error) {
	if !principal.IsAdmin() {
		return nil, domainerrors.ErrStaffForbidden
	}
	if input.Name == "" || input.UserName == "" || input.Password == "" {
		return nil, domainerrors.ErrBadParams
	}
	if !srv.credentials.ValidatePasswordFormat(input.Password) {
		return nil, domainerrors.ErrPasswordFormat
	}
	if input.Mobile != "" && !srv.credentials.ValidateMobileFormat(input.Mobile) {
		return nil, domainerrors.ErrMobileFormat
	}

	hash, err := srv.credentials.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var created *entity.Employee
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		employeeRepo := repoFactory.NewEmployeeRepository()

		user := &entity.User{
			UserName:     input.UserName,
			PasswordHash: hash,
			Mobile:       input.Mobile,
			Role:         entity.RoleUser,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		employee := &entity.Employee{
			UserID:    user.ID,
			DeptID:    input.Department.ID,
			LevelID:   input.Level.ID,
			RealName:  input.Name,
			Education: input.Education,
			Gender:    input.Sex,
			Mobile:    input.Mobile,
			IDNumber:  input.IDNumber,
			Avatar:    input.Avatar,
			BirthDate: parseDate(input.Birthday),
			JoinDate:  parseDate(input.JoinDate),
		}
		if err := employeeRepo.Create(ctx, employee); err != nil {
			return err
		}
		created = employee

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domainerrors.ErrUserNameTaken
		}
		srv.log(ctx).Error("failed to add staff", slog.String("error", err.Error()))

		return nil, domainerrors.ErrStaffSaveFailed
	}

	srv.log(ctx).Info("staff added",
		slog.Int64("employee_id", created.ID),
		slog.String("user_name", input.UserName),
	)

	return &usecase.AddStaffOutput{ID: created.ID, Name: input.Name, UserName: input.UserName}, nil
}

// Update applies a partial edit. Admins may change every column; the
// profile owner may only change the mobile number.
func (srv *staffService) Update(ctx context.Context, principal entity.Principal, id int64, input *usecase.UpdateStaffInput) error {
	employee, err := srv.employeeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrStaffNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find staff")
	}

	if !principal.Owns(employee.UserID) {
		return domainerrors.ErrStaffForbidden
	}
	if !principal.IsAdmin() && touchesAdminFields(input) {
		return domainerrors.ErrStaffForbidden
	}

	if input.Mobile != nil && !srv.credentials.ValidateMobileFormat(*input.Mobile) {
		return domainerrors.ErrMobileFormat
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["real_name"] = *input.Name
	}
	if input.Department != nil {
		fields["dept_id"] = input.Department.ID
	}
	if input.Education != nil {
		fields["education"] = *input.Education
	}
	if input.Level != nil {
		fields["level_id"] = input.Level.ID
	}
	if input.Mobile != nil {
		fields["mobile"] = *input.Mobile
	}
	if len(fields) == 0 {
		return nil
	}

	if err := srv.employeeRepo.Update(ctx, id, fields); err != nil {
		srv.log(ctx).Error("failed to update staff",
			slog.Int64("employee_id", id),
			slog.String("error", err.Error()),
		)

		return domainerrors.ErrStaffSaveFailed
	}

	return nil
}

// Delete removes the profile and its login account in one transaction.
// Admin only.
func (srv *staffService) Delete(ctx context.Context, principal entity.Principal, id int64) error {
	if !principal.IsAdmin() {
		return domainerrors.ErrStaffForbidden
	}

	employee, err := srv.employeeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrStaffNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find staff")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEmployeeRepository().Delete(ctx, id); err != nil {
			return err
		}

		return repoFactory.NewUserRepository().Delete(ctx, employee.UserID)
	})
	if err != nil {
		srv.log(ctx).Error("failed to delete staff",
			slog.Int64("employee_id", id),
			slog.String("error", err.Error()),
		)

		return domainerrors.ErrStaffSaveFailed
	}

	srv.log(ctx).Info("staff deleted", slog.Int64("employee_id", id))

	return nil
}

// Departments lists the units referenced by the staff query filters.
func (srv *staffService) Departments(ctx context.Context) ([]*usecase.DepartmentItem, error) {
	departments, err := srv.deptRepo.ListDepartments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	items := make([]*usecase.DepartmentItem, 0, len(departments))
	for _, dept := range departments {
		items = append(items, &usecase.DepartmentItem{ID: dept.ID, DepartmentName: dept.Name})
	}

	return items, nil
}

// Levels lists the seniority grades referenced by the staff form.
func (srv *staffService) Levels(ctx context.Context) ([]*usecase.LevelItem, error) {
	levels, err := srv.deptRepo.ListLevels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}

	items := make([]*usecase.LevelItem, 0, len(levels))
	for _, level := range levels {
		items = append(items, &usecase.LevelItem{
			ID:               level.ID,
			LevelName:        level.Name,
			LevelDescription: level.Description,
		})
	}

	return items, nil
}

// AddReview records one assessment. Admin only.
func (srv *staffService) AddReview(ctx context.Context, principal entity.Principal, input *usecase.AddReviewInput) (*usecase.ReviewItem, error) {
	if !principal.IsAdmin() {
		return nil, domainerrors.ErrStaffForbidden
	}

	if _, err := srv.employeeRepo.FindByID(ctx, input.EmployeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff")
	}

	review := &entity.PerformanceReview{
		EmployeeID: input.EmployeeID,
		Period:     input.Period,
		Score:      input.Score,
		Grade:      input.Grade,
		Comment:    input.Comment,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return toReviewItem(review), nil
}

// ListReviews returns all assessments of one profile, behind the ownership
// gate.
func (srv *staffService) ListReviews(ctx context.Context, principal entity.Principal, employeeID int64) ([]*usecase.ReviewItem, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, employeeID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrStaffNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find staff")
	}

	if !principal.Owns(employee.UserID) {
		return nil, domainerrors.ErrStaffForbidden
	}

	reviews, err := srv.reviewRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	items := make([]*usecase.ReviewItem, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, toReviewItem(review))
	}

	return items, nil
}

// touchesAdminFields reports whether the edit includes columns only an
// admin may change.
func touchesAdminFields(input *usecase.UpdateStaffInput) bool {
	return input.Name != nil || input.Department != nil || input.Education != nil || input.Level != nil
}

func toStaffItem(detail *entity.EmployeeDetail) *usecase.StaffItem {
	identity := 0
	if detail.Role == entity.RoleAdmin {
		identity = 1
	}

	return &usecase.StaffItem{
		ID:       detail.ID,
		Identity: identity,
		Level: usecase.StaffLevel{
			LevelName:        detail.LevelName,
			LevelDescription: detail.LevelDesc,
		},
		Name:     detail.RealName,
		UserName: detail.UserName,
		Department: usecase.StaffDepartment{
			ID:             detail.DeptID,
			DepartmentName: detail.DeptName,
		},
		Education: detail.Education,
		Mobile:    detail.Mobile,
		Sex:       detail.Gender,
		Birthday:  formatDate(detail.BirthDate),
		JoinDate:  formatDate(detail.JoinDate),
		Avatar:    detail.Avatar,
		IDNumber:  detail.IDNumber,
	}
}

func toReviewItem(review *entity.PerformanceReview) *usecase.ReviewItem {
	return &usecase.ReviewItem{
		ID:         review.ID,
		EmployeeID: review.EmployeeID,
		Period:     review.Period,
		Score:      review.Score,
		Grade:      review.Grade,
		Comment:    review.Comment,
		CreateTime: review.CreatedAt.Format(dateTimeLayout),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayout)
}

// parseDate accepts the wire date format and maps anything else to the
// zero time, which renders back as an empty string.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}

	return t
}
