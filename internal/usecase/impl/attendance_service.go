package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// attendanceWindow is the reporting window of the attendance table.
const attendanceWindow = 30 * 24 * time.Hour

// isoLayout renders timestamps the way the dashboard expects: UTC with
// millisecond precision and a trailing Z.
const isoLayout = "2006-01-02T15:04:05.000Z"

// attendanceService implements the AttendanceUsecase interface.
type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	logger         *slog.Logger
	now            func() time.Time
}

// AttendanceServiceParams holds dependencies for AttendanceService,
// injected by Fx.
type AttendanceServiceParams struct {
	fx.In

	AttendanceRepo repository.AttendanceRepository
	EmployeeRepo   repository.EmployeeRepository
	Logger         *slog.Logger
}

// NewAttendanceService is the constructor for attendanceService.
func NewAttendanceService(params AttendanceServiceParams) usecase.AttendanceUsecase {
	return &attendanceService{
		attendanceRepo: params.AttendanceRepo,
		employeeRepo:   params.EmployeeRepo,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *attendanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Table builds the last-30-day late and early-leave report: a per-day
// chart plus the raw detail rows for each type. Non-admin callers only see
// their own records.
func (srv *attendanceService) Table(ctx context.Context, principal entity.Principal) (*usecase.AttendanceTableOutput, error) {
	to := srv.now()
	from := to.Add(-attendanceWindow)

	var userID int64
	if !principal.IsAdmin() {
		userID = principal.UserID
	}

	lateChart, lateList, err := srv.report(ctx, entity.AttendanceLate, from, to, userID)
	if err != nil {
		srv.log(ctx).Error("failed to build late report", slog.String("error", err.Error()))

		return nil, domainerrors.ErrAttendanceFailed
	}

	earlyChart, earlyList, err := srv.report(ctx, entity.AttendanceEarly, from, to, userID)
	if err != nil {
		srv.log(ctx).Error("failed to build early-leave report", slog.String("error", err.Error()))

		return nil, domainerrors.ErrAttendanceFailed
	}

	return &usecase.AttendanceTableOutput{
		LateBI:         lateChart,
		LateTableList:  lateList,
		EarlyBI:        earlyChart,
		EarlyTableList: earlyList,
	}, nil
}

// CheckIn records one attendance event for the caller's own profile.
func (srv *attendanceService) CheckIn(ctx context.Context, principal entity.Principal, input *usecase.CheckInInput) error {
	typ := entity.AttendanceType(input.AttendanceType)
	if !typ.IsValid() {
		return domainerrors.ErrBadParams
	}

	employee, err := srv.employeeRepo.FindByUserID(ctx, principal.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrStaffNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find caller's profile")
	}

	record := &entity.AttendanceRecord{
		UserID:      principal.UserID,
		EmployeeID:  employee.ID,
		DeptID:      employee.DeptID,
		Type:        typ,
		CheckInTime: srv.now(),
	}
	if err := srv.attendanceRepo.Create(ctx, record); err != nil {
		return errors.Wrap(err, "failed to record check-in")
	}

	return nil
}

func (srv *attendanceService) report(ctx context.Context, typ entity.AttendanceType, from, to time.Time, userID int64) (usecase.AttendanceChart, []*usecase.AttendanceItem, error) {
	var chart usecase.AttendanceChart

	counts, err := srv.attendanceRepo.CountByDay(ctx, typ, from, to, userID)
	if err != nil {
		return chart, nil, err
	}

	chart.XData = make([]string, 0, len(counts))
	chart.YData = make([]int64, 0, len(counts))
	for _, dc := range counts {
		chart.XData = append(chart.XData, dc.Day.UTC().Format(isoLayout))
		chart.YData = append(chart.YData, dc.Count)
	}

	details, err := srv.attendanceRepo.ListDetails(ctx, typ, from, to, userID)
	if err != nil {
		return chart, nil, err
	}

	items := make([]*usecase.AttendanceItem, 0, len(details))
	for _, detail := range details {
		items = append(items, &usecase.AttendanceItem{
			ID:              detail.ID,
			CreateTime:      detail.CheckInTime.UTC().Format(isoLayout),
			StaffName:       detail.StaffName,
			StaffDepartment: detail.StaffDepartment,
			AttendanceType:  int(detail.Type),
		})
	}

	return chart, items, nil
}
