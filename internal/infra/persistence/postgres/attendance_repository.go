package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
	"staffhub/internal/infra/persistence/model"
)

// attendanceRepository implements repository.AttendanceRepository using GORM.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create inserts one check-in record.
func (repo *attendanceRepository) Create(ctx context.Context, rec *entity.AttendanceRecord) error {
	recM := &model.AttendanceModel{
		UserID:         rec.UserID,
		EmployeeID:     rec.EmployeeID,
		DeptID:         rec.DeptID,
		AttendanceType: int(rec.Type),
		CheckInTime:    rec.CheckInTime,
	}

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		return errors.Wrap(err, "failed to create attendance record")
	}

	rec.ID = recM.ID
	rec.CreatedAt = recM.CreatedAt

	return nil
}

// CountByDay buckets records of one type per calendar day.
func (repo *attendanceRepository) CountByDay(ctx context.Context, typ entity.AttendanceType, from, to time.Time, userID int64) ([]*entity.DayCount, error) {
	type dayRow struct {
		Day   time.Time
		Count int64
	}

	tx := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Select("DATE(check_in_time) AS day, COUNT(*) AS count").
		Where("attendance_type = ? AND check_in_time BETWEEN ? AND ?", int(typ), from, to)
	if userID != 0 {
		tx = tx.Where("user_id = ?", userID)
	}

	var rows []dayRow
	err := tx.Group("DATE(check_in_time)").Order("day ASC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count attendance by day")
	}

	counts := make([]*entity.DayCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &entity.DayCount{Day: row.Day, Count: row.Count})
	}

	return counts, nil
}

// ListDetails returns records joined with staff name and department.
func (repo *attendanceRepository) ListDetails(ctx context.Context, typ entity.AttendanceType, from, to time.Time, userID int64) ([]*entity.AttendanceDetail, error) {
	type detailRow struct {
		model.AttendanceModel
		RealName string
		DeptName string
	}

	tx := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Select("attendance_records.*, employee_profiles.real_name AS real_name, departments.dept_name AS dept_name").
		Joins("JOIN employee_profiles ON attendance_records.employee_id = employee_profiles.id").
		Joins("JOIN departments ON attendance_records.dept_id = departments.id").
		Where("attendance_records.attendance_type = ? AND attendance_records.check_in_time BETWEEN ? AND ?", int(typ), from, to)
	if userID != 0 {
		tx = tx.Where("attendance_records.user_id = ?", userID)
	}

	var rows []detailRow
	if err := tx.Order("attendance_records.create_time DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list attendance details")
	}

	details := make([]*entity.AttendanceDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &entity.AttendanceDetail{
			AttendanceRecord: entity.AttendanceRecord{
				ID:          row.ID,
				UserID:      row.UserID,
				EmployeeID:  row.EmployeeID,
				DeptID:      row.DeptID,
				Type:        entity.AttendanceType(row.AttendanceType),
				CheckInTime: row.CheckInTime,
				CreatedAt:   row.CreatedAt,
			},
			StaffName:       row.RealName,
			StaffDepartment: row.DeptName,
		})
	}

	return details, nil
}
