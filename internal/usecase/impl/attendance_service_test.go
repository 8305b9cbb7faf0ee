package impl

import (
	"context"
	"testing"
	"time"

	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceTestEnv(t *testing.T) (*attendanceService, *fakeAttendanceRepo, *fakeEmployeeRepo) {
	t.Helper()

	attendanceRepo := &fakeAttendanceRepo{}
	employeeRepo := newFakeEmployeeRepo()
	service := NewAttendanceService(AttendanceServiceParams{
		AttendanceRepo: attendanceRepo,
		EmployeeRepo:   employeeRepo,
		Logger:         newDiscardLogger(),
	}).(*attendanceService)

	return service, attendanceRepo, employeeRepo
}

func lateDetail(userID int64, checkIn time.Time, name string) *entity.AttendanceDetail {
	return &entity.AttendanceDetail{
		AttendanceRecord: entity.AttendanceRecord{
			UserID:      userID,
			Type:        entity.AttendanceLate,
			CheckInTime: checkIn,
		},
		StaffName:       name,
		StaffDepartment: "研发部",
	}
}

func TestAttendanceService_Table_AdminSeesAll(t *testing.T) {
	service, attendanceRepo, _ := newAttendanceTestEnv(t)
	now := time.Now()
	attendanceRepo.details = []*entity.AttendanceDetail{
		lateDetail(2, now.Add(-24*time.Hour), "张三"),
		lateDetail(3, now.Add(-24*time.Hour), "李四"),
		lateDetail(2, now.Add(-48*time.Hour), "张三"),
	}

	out, err := service.Table(context.Background(), adminPrincipal)

	require.NoError(t, err)
	assert.Len(t, out.LateTableList, 3)
	assert.Len(t, out.LateBI.XData, 2, "three records span two days")
	assert.Empty(t, out.EarlyTableList)
}

func TestAttendanceService_Table_UserScopedToSelf(t *testing.T) {
	service, attendanceRepo, _ := newAttendanceTestEnv(t)
	now := time.Now()
	attendanceRepo.details = []*entity.AttendanceDetail{
		lateDetail(2, now.Add(-24*time.Hour), "张三"),
		lateDetail(3, now.Add(-24*time.Hour), "李四"),
	}

	out, err := service.Table(context.Background(), userPrincipal)

	require.NoError(t, err)
	require.Len(t, out.LateTableList, 1)
	assert.Equal(t, "张三", out.LateTableList[0].StaffName)
}

func TestAttendanceService_Table_IgnoresRecordsOutsideWindow(t *testing.T) {
	service, attendanceRepo, _ := newAttendanceTestEnv(t)
	attendanceRepo.details = []*entity.AttendanceDetail{
		lateDetail(2, time.Now().Add(-40*24*time.Hour), "张三"),
	}

	out, err := service.Table(context.Background(), adminPrincipal)

	require.NoError(t, err)
	assert.Empty(t, out.LateTableList)
}

func TestAttendanceService_Table_RendersISOTimestamps(t *testing.T) {
	service, attendanceRepo, _ := newAttendanceTestEnv(t)
	service.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	attendanceRepo.details = []*entity.AttendanceDetail{
		lateDetail(2, time.Date(2026, 8, 29, 9, 15, 0, 0, time.UTC), "张三"),
	}

	out, err := service.Table(context.Background(), adminPrincipal)

	require.NoError(t, err)
	require.Len(t, out.LateTableList, 1)
	assert.Equal(t, "2026-08-29T09:15:00.000Z", out.LateTableList[0].CreateTime)
	require.Len(t, out.LateBI.XData, 1)
	assert.Equal(t, "2026-08-29T00:00:00.000Z", out.LateBI.XData[0])
}

func TestAttendanceService_CheckIn(t *testing.T) {
	service, attendanceRepo, employeeRepo := newAttendanceTestEnv(t)
	employeeRepo.add(&entity.EmployeeDetail{
		Employee: entity.Employee{UserID: 2, DeptID: 7, RealName: "张三"},
	})

	err := service.CheckIn(context.Background(), userPrincipal, &usecase.CheckInInput{AttendanceType: int(entity.AttendanceLate)})
	require.NoError(t, err)
	require.Len(t, attendanceRepo.records, 1)
	assert.EqualValues(t, 2, attendanceRepo.records[0].UserID)
	assert.EqualValues(t, 7, attendanceRepo.records[0].DeptID)

	err = service.CheckIn(context.Background(), userPrincipal, &usecase.CheckInInput{AttendanceType: 9})
	assert.ErrorIs(t, err, domainerrors.ErrBadParams)

	err = service.CheckIn(context.Background(), entity.Principal{UserID: 404}, &usecase.CheckInInput{AttendanceType: 1})
	assert.ErrorIs(t, err, domainerrors.ErrStaffNotFound)
}
