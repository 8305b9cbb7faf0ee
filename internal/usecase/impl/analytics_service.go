package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/usecase"

	"go.uber.org/fx"
)

// Constellation lookup tables. The dashboard clients key their chart off
// these exact labels, so the index arithmetic and names are frozen.
var (
	constellationDates = []int{20, 19, 21, 20, 21, 22, 23, 23, 23, 24, 22, 21}
	constellationNames = []string{
		"水瓶", "双鱼", "白羊", "金牛", "双子", "巨蟹",
		"狮子", "处女", "天秤", "天蝎", "射手", "摩羯",
	}
)

// Onboarding-time buckets of the analysis report.
const (
	bucketUnderOneYear = "1年内"
	bucketOneToTwo     = "1-2年内"
	bucketOverTwoYears = "2年以上"
)

const topSeniorCount = 10

// analyticsService implements the AnalyticsUsecase interface. All
// aggregation runs in memory over the full profile scan, mirroring the
// shape the admin dashboard charts expect.
type analyticsService struct {
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
	now          func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService,
// injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	EmployeeRepo repository.EmployeeRepository
	Logger       *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		employeeRepo: params.EmployeeRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AnalyzeStaff aggregates the whole employee table into the dashboard
// distributions.
func (srv *analyticsService) AnalyzeStaff(ctx context.Context) (*usecase.StaffAnalysisOutput, error) {
	details, err := srv.employeeRepo.ListAllDetails(ctx)
	if err != nil {
		srv.log(ctx).Error("failed to scan staff for analysis", slog.String("error", err.Error()))

		return nil, domainerrors.ErrAnalyzeFailed
	}

	now := srv.now()
	out := &usecase.StaffAnalysisOutput{
		Total: len(details),
		OnboardingTime: map[string]int{
			bucketUnderOneYear: 0,
			bucketOneToTwo:     0,
			bucketOverTwoYears: 0,
		},
	}

	constellations := map[string]int{}
	educations := map[string]int{}
	genderCount := map[string]int{}
	genderAgeSum := map[string]float64{}

	for _, detail := range details {
		if !detail.BirthDate.IsZero() {
			constellations[constellationOf(detail.BirthDate)]++

			// Age is the plain calendar-year difference, birthdays ignored.
			genderCount[detail.Gender]++
			genderAgeSum[detail.Gender] += float64(now.Year() - detail.BirthDate.Year())
		}

		if detail.Education != "" {
			educations[detail.Education]++
		}

		if !detail.JoinDate.IsZero() {
			out.OnboardingTime[onboardingBucket(detail.JoinDate, now)]++
		}
	}

	out.ConstellationList = toNameValues(constellations)
	out.EducationList = toNameValues(educations)
	out.GenderList = toGenderStats(genderCount, genderAgeSum)
	out.WorkingYearsMaps = topSeniors(details, topSeniorCount)

	return out, nil
}

// constellationOf maps a birth date to a sign label. A day before the
// month's boundary keeps the previous index, otherwise the month's own,
// wrapping December back to the first entry.
func constellationOf(birth time.Time) string {
	month := int(birth.Month())
	index := month
	if birth.Day() < constellationDates[month-1] {
		index = month - 1
	}

	return constellationNames[index%12]
}

// onboardingBucket classifies a join date by tenure. Exactly one year of
// service still counts as the first bucket.
func onboardingBucket(join, now time.Time) string {
	years := yearsBetween(join, now)
	switch {
	case years <= 1:
		return bucketUnderOneYear
	case years <= 2:
		return bucketOneToTwo
	default:
		return bucketOverTwoYears
	}
}

func yearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / (24 * 365)
}

// toNameValues renders a counter map sorted by descending count, with name
// as the tie-break so the output is stable.
func toNameValues(counts map[string]int) []usecase.NameValue {
	values := make([]usecase.NameValue, 0, len(counts))
	for name, count := range counts {
		values = append(values, usecase.NameValue{Name: name, Value: count})
	}

	sort.Slice(values, func(i, j int) bool {
		if values[i].Value != values[j].Value {
			return values[i].Value > values[j].Value
		}

		return values[i].Name < values[j].Name
	})

	return values
}

func toGenderStats(counts map[string]int, ageSums map[string]float64) []usecase.GenderStat {
	stats := make([]usecase.GenderStat, 0, len(counts))
	for gender, count := range counts {
		avgAge := 0.0
		if count > 0 {
			avgAge = ageSums[gender] / float64(count)
		}

		stats = append(stats, usecase.GenderStat{
			Name:  gender,
			Value: count,
			Age:   fmt.Sprintf("%.2f", avgAge),
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })

	return stats
}

// topSeniors returns the n longest-serving employees, earliest join date
// first. Profiles without a join date never rank.
func topSeniors(details []*entity.EmployeeDetail, n int) []usecase.SeniorEmployee {
	joined := make([]*entity.EmployeeDetail, 0, len(details))
	for _, detail := range details {
		if !detail.JoinDate.IsZero() {
			joined = append(joined, detail)
		}
	}

	sort.Slice(joined, func(i, j int) bool {
		if !joined[i].JoinDate.Equal(joined[j].JoinDate) {
			return joined[i].JoinDate.Before(joined[j].JoinDate)
		}

		return joined[i].ID < joined[j].ID
	})

	if len(joined) > n {
		joined = joined[:n]
	}

	seniors := make([]usecase.SeniorEmployee, 0, len(joined))
	for _, detail := range joined {
		seniors = append(seniors, usecase.SeniorEmployee{
			UserName:   detail.RealName,
			Department: detail.DeptName,
		})
	}

	return seniors
}
