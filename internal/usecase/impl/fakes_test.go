package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"time"

	"staffhub/config"
	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			TokenTTL:   24 * time.Hour,
		},
		Verification: &config.VerificationConfig{
			CodeTTL:          time.Hour,
			ClientExpireHint: 300,
		},
	}
}

// --- user repository fake ---

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		clone := *user

		return &clone, nil
	}

	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByUserName(_ context.Context, userName string) (*entity.User, error) {
	for _, user := range f.users {
		if user.UserName == userName {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByMobile(_ context.Context, mobile string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Mobile == mobile {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.UserName == user.UserName {
			return repository.ErrDuplicate
		}
	}

	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone

	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, mobile, passwordHash string) error {
	for _, user := range f.users {
		if user.Mobile == mobile {
			user.PasswordHash = passwordHash

			return nil
		}
	}

	return repository.ErrNotFound
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	if user, ok := f.users[id]; ok {
		user.LastLoginAt = at
	}

	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(f.users, id)

	return nil
}

// --- verification code repository fake ---

type fakeCodeRepo struct {
	nextID int64
	codes  []*entity.VerificationCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{nextID: 1}
}

func (f *fakeCodeRepo) Create(_ context.Context, code *entity.VerificationCode) error {
	code.ID = f.nextID
	f.nextID++
	clone := *code
	f.codes = append(f.codes, &clone)

	return nil
}

func (f *fakeCodeRepo) FindLatestValid(_ context.Context, mobile, code string, purpose entity.CodePurpose, now time.Time) (*entity.VerificationCode, error) {
	for i := len(f.codes) - 1; i >= 0; i-- {
		row := f.codes[i]
		if row.Mobile == mobile && row.Code == code && row.Purpose == purpose && row.ExpiresAt.After(now) {
			clone := *row

			return &clone, nil
		}
	}

	return nil, repository.ErrNotFound
}

// --- credential validator fake ---

// fakeCredentials applies the real format policy but hashes reversibly so
// tests can assert without paying for bcrypt.
type fakeCredentials struct{}

var (
	testPasswordCharset = regexp.MustCompile(`^[A-Za-z0-9]{8,20}$`)
	testMobilePattern   = regexp.MustCompile(`^1[3-9]\d{9}$`)
)

func (fakeCredentials) ValidatePasswordFormat(password string) bool {
	if !testPasswordCharset.MatchString(password) {
		return false
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	return lower && upper && digit
}

func (fakeCredentials) ValidateMobileFormat(mobile string) bool {
	return testMobilePattern.MatchString(mobile)
}

func (fakeCredentials) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeCredentials) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// --- token service fake ---

type fakeTokenService struct {
	issued []entity.Principal
}

func (f *fakeTokenService) Issue(principal entity.Principal) (string, time.Time, error) {
	f.issued = append(f.issued, principal)

	return "token-for-" + principal.UserName, time.Now().Add(24 * time.Hour), nil
}

func (f *fakeTokenService) Verify(string) (*entity.Principal, error) {
	panic("not used in usecase tests")
}

// --- code sender fake ---

type fakeCodeSender struct {
	sent []string
}

func (f *fakeCodeSender) Send(_ context.Context, _, code string) error {
	f.sent = append(f.sent, code)

	return nil
}

// --- employee repository fake ---

type fakeEmployeeRepo struct {
	nextID    int64
	employees map[int64]*entity.Employee
	details   map[int64]*entity.EmployeeDetail
	updates   map[int64]map[string]any
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		nextID:    1,
		employees: map[int64]*entity.Employee{},
		details:   map[int64]*entity.EmployeeDetail{},
		updates:   map[int64]map[string]any{},
	}
}

func (f *fakeEmployeeRepo) add(detail *entity.EmployeeDetail) {
	if detail.ID == 0 {
		detail.ID = f.nextID
		f.nextID++
	} else if detail.ID >= f.nextID {
		f.nextID = detail.ID + 1
	}
	emp := detail.Employee
	f.employees[detail.ID] = &emp
	f.details[detail.ID] = detail
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id int64) (*entity.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		clone := *emp

		return &clone, nil
	}

	return nil, repository.ErrNotFound
}

func (f *fakeEmployeeRepo) FindByUserID(_ context.Context, userID int64) (*entity.Employee, error) {
	for _, emp := range f.employees {
		if emp.UserID == userID {
			clone := *emp

			return &clone, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (f *fakeEmployeeRepo) FindDetailByID(_ context.Context, id int64) (*entity.EmployeeDetail, error) {
	if detail, ok := f.details[id]; ok {
		clone := *detail

		return &clone, nil
	}

	return nil, repository.ErrNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, q repository.StaffQuery) ([]*entity.EmployeeDetail, int64, error) {
	var out []*entity.EmployeeDetail
	for id := int64(1); id < f.nextID; id++ {
		detail, ok := f.details[id]
		if !ok {
			continue
		}
		if q.UserID != 0 && detail.UserID != q.UserID {
			continue
		}
		clone := *detail
		out = append(out, &clone)
	}

	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) ListAllDetails(_ context.Context) ([]*entity.EmployeeDetail, error) {
	var out []*entity.EmployeeDetail
	for id := int64(1); id < f.nextID; id++ {
		if detail, ok := f.details[id]; ok {
			clone := *detail
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *entity.Employee) error {
	emp.ID = f.nextID
	f.nextID++
	clone := *emp
	f.employees[emp.ID] = &clone
	f.details[emp.ID] = &entity.EmployeeDetail{Employee: clone}

	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id int64, fields map[string]any) error {
	if _, ok := f.employees[id]; !ok {
		return repository.ErrNotFound
	}
	f.updates[id] = fields

	return nil
}

func (f *fakeEmployeeRepo) UpdateAvatar(_ context.Context, id int64, avatarURL string) (string, error) {
	emp, ok := f.employees[id]
	if !ok {
		return "", repository.ErrNotFound
	}
	old := emp.Avatar
	emp.Avatar = avatarURL

	return old, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(f.employees, id)
	delete(f.details, id)

	return nil
}

// --- transaction manager fake ---

// fakeTxManager runs the callback directly against the shared fakes; the
// rollback path is simulated only as "error propagates".
type fakeTxManager struct {
	userRepo     *fakeUserRepo
	employeeRepo *fakeEmployeeRepo
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

func (f *fakeTxManager) NewEmployeeRepository() repository.EmployeeRepository {
	return f.employeeRepo
}

// --- department repository fake ---

type fakeDeptRepo struct {
	departments []*entity.Department
	levels      []*entity.EmployeeLevel
}

func (f *fakeDeptRepo) ListDepartments(context.Context) ([]*entity.Department, error) {
	return f.departments, nil
}

func (f *fakeDeptRepo) ListLevels(context.Context) ([]*entity.EmployeeLevel, error) {
	return f.levels, nil
}

// --- review repository fake ---

type fakeReviewRepo struct {
	nextID  int64
	reviews []*entity.PerformanceReview
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.PerformanceReview) error {
	f.nextID++
	review.ID = f.nextID
	review.CreatedAt = time.Now()
	clone := *review
	f.reviews = append(f.reviews, &clone)

	return nil
}

func (f *fakeReviewRepo) ListByEmployee(_ context.Context, employeeID int64) ([]*entity.PerformanceReview, error) {
	var out []*entity.PerformanceReview
	for i := len(f.reviews) - 1; i >= 0; i-- {
		if f.reviews[i].EmployeeID == employeeID {
			clone := *f.reviews[i]
			out = append(out, &clone)
		}
	}

	return out, nil
}

// --- attendance repository fake ---

type fakeAttendanceRepo struct {
	records []*entity.AttendanceRecord
	details []*entity.AttendanceDetail
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec *entity.AttendanceRecord) error {
	rec.ID = int64(len(f.records) + 1)
	clone := *rec
	f.records = append(f.records, &clone)

	return nil
}

func (f *fakeAttendanceRepo) CountByDay(_ context.Context, typ entity.AttendanceType, from, to time.Time, userID int64) ([]*entity.DayCount, error) {
	buckets := map[string]*entity.DayCount{}
	var order []string
	for _, detail := range f.filtered(typ, from, to, userID) {
		day := detail.CheckInTime.Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if _, ok := buckets[key]; !ok {
			buckets[key] = &entity.DayCount{Day: day}
			order = append(order, key)
		}
		buckets[key].Count++
	}

	out := make([]*entity.DayCount, 0, len(order))
	for _, key := range order {
		out = append(out, buckets[key])
	}

	return out, nil
}

func (f *fakeAttendanceRepo) ListDetails(_ context.Context, typ entity.AttendanceType, from, to time.Time, userID int64) ([]*entity.AttendanceDetail, error) {
	return f.filtered(typ, from, to, userID), nil
}

func (f *fakeAttendanceRepo) filtered(typ entity.AttendanceType, from, to time.Time, userID int64) []*entity.AttendanceDetail {
	var out []*entity.AttendanceDetail
	for _, detail := range f.details {
		if detail.Type != typ {
			continue
		}
		if detail.CheckInTime.Before(from) || detail.CheckInTime.After(to) {
			continue
		}
		if userID != 0 && detail.UserID != userID {
			continue
		}
		clone := *detail
		out = append(out, &clone)
	}

	return out
}

// --- avatar store fake ---

type fakeAvatarStore struct {
	nextID   int
	saved    []string
	removed  []string
	failSave bool
}

func (f *fakeAvatarStore) Save(_ context.Context, r io.Reader, ext string) (string, error) {
	if f.failSave {
		return "", context.DeadlineExceeded
	}
	_, _ = io.ReadAll(r)
	f.nextID++
	url := "/uploads/avatars/test-" + time.Now().Format("150405") + "-" + string(rune('a'+f.nextID)) + ext
	f.saved = append(f.saved, url)

	return url, nil
}

func (f *fakeAvatarStore) Remove(_ context.Context, url string) error {
	f.removed = append(f.removed, url)

	return nil
}
