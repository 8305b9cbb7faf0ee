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

var (
	adminPrincipal = entity.Principal{UserID: 1, UserName: "admin", Role: entity.RoleAdmin}
	userPrincipal  = entity.Principal{UserID: 2, UserName: "zhangsan", Role: entity.RoleUser}
)

type staffTestEnv struct {
	service      usecase.StaffUsecase
	userRepo     *fakeUserRepo
	employeeRepo *fakeEmployeeRepo
	deptRepo     *fakeDeptRepo
	reviewRepo   *fakeReviewRepo
}

func newStaffTestEnv(t *testing.T) *staffTestEnv {
	t.Helper()

	env := &staffTestEnv{
		userRepo:     newFakeUserRepo(),
		employeeRepo: newFakeEmployeeRepo(),
		deptRepo:     &fakeDeptRepo{},
		reviewRepo:   &fakeReviewRepo{},
	}
	env.service = NewStaffService(StaffServiceParams{
		TxManager:    &fakeTxManager{userRepo: env.userRepo, employeeRepo: env.employeeRepo},
		EmployeeRepo: env.employeeRepo,
		DeptRepo:     env.deptRepo,
		ReviewRepo:   env.reviewRepo,
		Credentials:  fakeCredentials{},
		Logger:       newDiscardLogger(),
	})

	// Two profiles: the admin's own (user 1) and a regular one (user 2).
	env.employeeRepo.add(&entity.EmployeeDetail{
		Employee: entity.Employee{UserID: 1, DeptID: 1, RealName: "管理员", Mobile: "13100000001"},
		UserName: "admin", Role: entity.RoleAdmin, DeptName: "人事部",
	})
	env.employeeRepo.add(&entity.EmployeeDetail{
		Employee: entity.Employee{UserID: 2, DeptID: 2, RealName: "张三", Mobile: "13100000002"},
		UserName: "zhangsan", Role: entity.RoleUser, DeptName: "研发部",
	})

	return env
}

func TestStaffService_List_AdminSeesEveryone(t *testing.T) {
	env := newStaffTestEnv(t)

	out, err := env.service.List(context.Background(), adminPrincipal, &usecase.ListStaffInput{})

	require.NoError(t, err)
	assert.EqualValues(t, 2, out.Total)
	require.Len(t, out.StaffList, 2)
	assert.Equal(t, 1, out.StaffList[0].Identity)
	assert.Equal(t, 0, out.StaffList[1].Identity)
}

func TestStaffService_List_UserScopedToSelf(t *testing.T) {
	env := newStaffTestEnv(t)

	out, err := env.service.List(context.Background(), userPrincipal, &usecase.ListStaffInput{})

	require.NoError(t, err)
	require.Len(t, out.StaffList, 1)
	assert.Equal(t, "张三", out.StaffList[0].Name)
}

func TestStaffService_Detail_OwnershipGate(t *testing.T) {
	env := newStaffTestEnv(t)

	own, err := env.service.Detail(context.Background(), userPrincipal, 2)
	require.NoError(t, err)
	assert.Equal(t, "张三", own.Name)

	_, err = env.service.Detail(context.Background(), userPrincipal, 1)
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden)

	other, err := env.service.Detail(context.Background(), adminPrincipal, 2)
	require.NoError(t, err)
	assert.Equal(t, "张三", other.Name)

	_, err = env.service.Detail(context.Background(), adminPrincipal, 999)
	assert.ErrorIs(t, err, domainerrors.ErrStaffNotFound)
}

func TestStaffService_Add_AdminOnly(t *testing.T) {
	env := newStaffTestEnv(t)
	input := &usecase.AddStaffInput{
		Name: "李四", UserName: "lisi", Password: "Passw0rd",
		Department: usecase.StaffRef{ID: 2}, Mobile: "13100000004",
		Birthday: "1995-06-01", JoinDate: "2024-03-15",
	}

	_, err := env.service.Add(context.Background(), userPrincipal, input)
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden)

	out, err := env.service.Add(context.Background(), adminPrincipal, input)
	require.NoError(t, err)
	assert.Equal(t, "lisi", out.UserName)

	// Both halves landed: the login account and the profile.
	user, err := env.userRepo.FindByUserName(context.Background(), "lisi")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role, "staff accounts are always created with the User role")

	employee, err := env.employeeRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "李四", employee.RealName)
	assert.Equal(t, 1995, employee.BirthDate.Year())
}

func TestStaffService_Add_DuplicateUserName(t *testing.T) {
	env := newStaffTestEnv(t)
	require.NoError(t, env.userRepo.Create(context.Background(), &entity.User{
		UserName: "lisi", Role: entity.RoleUser,
	}))

	_, err := env.service.Add(context.Background(), adminPrincipal, &usecase.AddStaffInput{
		Name: "李四", UserName: "lisi", Password: "Passw0rd",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNameTaken)
}

func TestStaffService_Update_OwnerLimitedToMobile(t *testing.T) {
	env := newStaffTestEnv(t)
	name := "改名"
	mobile := "13999999999"

	err := env.service.Update(context.Background(), userPrincipal, 2, &usecase.UpdateStaffInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden)

	err = env.service.Update(context.Background(), userPrincipal, 2, &usecase.UpdateStaffInput{Mobile: &mobile})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"mobile": mobile}, env.employeeRepo.updates[2])

	err = env.service.Update(context.Background(), userPrincipal, 1, &usecase.UpdateStaffInput{Mobile: &mobile})
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden, "owners cannot edit someone else's profile")
}

func TestStaffService_Update_AdminEditsEverything(t *testing.T) {
	env := newStaffTestEnv(t)
	name := "张三丰"
	education := "硕士"

	err := env.service.Update(context.Background(), adminPrincipal, 2, &usecase.UpdateStaffInput{
		Name:       &name,
		Education:  &education,
		Department: &usecase.StaffRef{ID: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"real_name": "张三丰",
		"education": "硕士",
		"dept_id":   int64(3),
	}, env.employeeRepo.updates[2])
}

func TestStaffService_Update_BadMobileRejected(t *testing.T) {
	env := newStaffTestEnv(t)
	mobile := "0000"

	err := env.service.Update(context.Background(), userPrincipal, 2, &usecase.UpdateStaffInput{Mobile: &mobile})

	assert.ErrorIs(t, err, domainerrors.ErrMobileFormat)
}

func TestStaffService_Delete_AdminOnly(t *testing.T) {
	env := newStaffTestEnv(t)
	require.NoError(t, env.userRepo.Create(context.Background(), &entity.User{UserName: "admin", Role: entity.RoleAdmin}))
	require.NoError(t, env.userRepo.Create(context.Background(), &entity.User{UserName: "zhangsan", Role: entity.RoleUser}))

	err := env.service.Delete(context.Background(), userPrincipal, 2)
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden)

	err = env.service.Delete(context.Background(), adminPrincipal, 2)
	require.NoError(t, err)

	// The profile and the login account are both gone.
	_, err = env.employeeRepo.FindByID(context.Background(), 2)
	assert.Error(t, err)
	_, err = env.userRepo.FindByUserName(context.Background(), "zhangsan")
	assert.Error(t, err)
}

func TestStaffService_Reviews(t *testing.T) {
	env := newStaffTestEnv(t)

	_, err := env.service.AddReview(context.Background(), userPrincipal, &usecase.AddReviewInput{EmployeeID: 2})
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden)

	created, err := env.service.AddReview(context.Background(), adminPrincipal, &usecase.AddReviewInput{
		EmployeeID: 2, Period: "2026-Q2", Score: 87.5, Grade: "A",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// The owner may read their own reviews; others may not.
	items, err := env.service.ListReviews(context.Background(), userPrincipal, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2026-Q2", items[0].Period)

	_, err = env.service.ListReviews(context.Background(), userPrincipal, 1)
	assert.ErrorIs(t, err, domainerrors.ErrStaffForbidden)
}

func TestStaffService_Departments(t *testing.T) {
	env := newStaffTestEnv(t)
	env.deptRepo.departments = []*entity.Department{
		{ID: 1, Name: "人事部"},
		{ID: 2, Name: "研发部"},
	}

	items, err := env.service.Departments(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "研发部", items[1].DepartmentName)
}

func TestStaffService_Levels(t *testing.T) {
	env := newStaffTestEnv(t)
	env.deptRepo.levels = []*entity.EmployeeLevel{
		{ID: 1, Name: "P5", Description: "初级工程师"},
		{ID: 2, Name: "P6", Description: "高级工程师"},
	}

	items, err := env.service.Levels(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "P6", items[1].LevelName)
	assert.Equal(t, "高级工程师", items[1].LevelDescription)
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), parseDate("2024-03-15"))
	assert.True(t, parseDate("not-a-date").IsZero())
	assert.Equal(t, "", formatDate(time.Time{}))
}
