package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"staffhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsTestEnv(t *testing.T, now time.Time) (*analyticsService, *fakeEmployeeRepo) {
	t.Helper()

	employeeRepo := newFakeEmployeeRepo()
	service := NewAnalyticsService(AnalyticsServiceParams{
		EmployeeRepo: employeeRepo,
		Logger:       newDiscardLogger(),
	}).(*analyticsService)
	service.now = func() time.Time { return now }

	return service, employeeRepo
}

func TestConstellationOf(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "1990-01-19", want: "水瓶"},
		{date: "1990-01-20", want: "双鱼"},
		{date: "1990-01-25", want: "双鱼"},
		{date: "1990-02-18", want: "双鱼"},
		{date: "1990-02-19", want: "白羊"},
		{date: "1990-06-01", want: "巨蟹"},
		{date: "1990-08-22", want: "处女"},
		{date: "1990-08-23", want: "天秤"},
		{date: "1990-12-20", want: "摩羯"},
		{date: "1990-12-21", want: "水瓶"},
		{date: "1990-12-25", want: "水瓶"},
		{date: "1990-12-31", want: "水瓶"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			birth, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, constellationOf(birth))
		})
	}
}

func TestAnalyticsService_AnalyzeStaff(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	service, employeeRepo := newAnalyticsTestEnv(t, now)

	addProfile := func(name, gender, education string, birth, join time.Time, dept string) {
		employeeRepo.add(&entity.EmployeeDetail{
			Employee: entity.Employee{
				RealName:  name,
				Gender:    gender,
				Education: education,
				BirthDate: birth,
				JoinDate:  join,
			},
			DeptName: dept,
		})
	}

	addProfile("张三", "男", "本科",
		time.Date(1996, 8, 30, 0, 0, 0, 0, time.UTC),  // turns 30 today
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),   // under a year
		"研发部")
	addProfile("李四", "男", "硕士",
		time.Date(2006, 8, 30, 0, 0, 0, 0, time.UTC),  // 20
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),   // 1-2 years
		"研发部")
	addProfile("王五", "女", "本科",
		time.Date(2001, 8, 30, 0, 0, 0, 0, time.UTC),  // 25
		time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),   // over two years
		"人事部")

	out, err := service.AnalyzeStaff(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)

	assert.Equal(t, 1, out.OnboardingTime["1年内"])
	assert.Equal(t, 1, out.OnboardingTime["1-2年内"])
	assert.Equal(t, 1, out.OnboardingTime["2年以上"])

	require.Len(t, out.GenderList, 2)
	assert.Equal(t, "女", out.GenderList[0].Name)
	assert.Equal(t, 1, out.GenderList[0].Value)
	assert.Equal(t, "男", out.GenderList[1].Name)
	assert.Equal(t, 2, out.GenderList[1].Value)
	assert.Equal(t, "25.00", out.GenderList[1].Age, "average of 30 and 20")

	require.NotEmpty(t, out.EducationList)
	assert.Equal(t, "本科", out.EducationList[0].Name)
	assert.Equal(t, 2, out.EducationList[0].Value)

	// All three birthdays are Aug 30th.
	require.Len(t, out.ConstellationList, 1)
	assert.Equal(t, "天秤", out.ConstellationList[0].Name)
	assert.Equal(t, 3, out.ConstellationList[0].Value)

	// Longest-serving first.
	require.Len(t, out.WorkingYearsMaps, 3)
	assert.Equal(t, "王五", out.WorkingYearsMaps[0].UserName)
	assert.Equal(t, "人事部", out.WorkingYearsMaps[0].Department)
}

func TestOnboardingBucket(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	// Exactly one year of service still lands in the first bucket.
	assert.Equal(t, "1年内", onboardingBucket(now.AddDate(-1, 0, 0), now))
	assert.Equal(t, "1-2年内", onboardingBucket(now.AddDate(-1, 0, -1), now))
	assert.Equal(t, "1-2年内", onboardingBucket(now.AddDate(-2, 0, 1), now))
	assert.Equal(t, "2年以上", onboardingBucket(now.AddDate(-3, 0, 0), now))
}

func TestAnalyticsService_TopSeniorsCapped(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	service, employeeRepo := newAnalyticsTestEnv(t, now)

	for i := range 15 {
		employeeRepo.add(&entity.EmployeeDetail{
			Employee: entity.Employee{
				RealName: fmt.Sprintf("员工%02d", i),
				JoinDate: time.Date(2010+i, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			DeptName: "研发部",
		})
	}

	out, err := service.AnalyzeStaff(context.Background())

	require.NoError(t, err)
	require.Len(t, out.WorkingYearsMaps, 10)
	assert.Equal(t, "员工00", out.WorkingYearsMaps[0].UserName)
	assert.Equal(t, "员工09", out.WorkingYearsMaps[9].UserName)
}

func TestAnalyticsService_SkipsProfilesWithoutDates(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	service, employeeRepo := newAnalyticsTestEnv(t, now)
	employeeRepo.add(&entity.EmployeeDetail{
		Employee: entity.Employee{RealName: "无档案"},
	})

	out, err := service.AnalyzeStaff(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Empty(t, out.ConstellationList)
	assert.Empty(t, out.WorkingYearsMaps)
	assert.Equal(t, 0, out.OnboardingTime["1年内"])
}
