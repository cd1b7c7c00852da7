package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartattend/attendance-service/internal/models"
)

// AttendanceRepository defines the interface for attendance operations, both
// the per-slot marks and the legacy day-level period records.
type AttendanceRepository interface {
	// Mark inserts an attendance row or, when a row already exists for the
	// same (student, subject, date, time_slot), overwrites its status and
	// marking metadata in place.
	Mark(ctx context.Context, attendance *models.Attendance) error
	ListByClass(ctx context.Context, classID uuid.UUID, date *time.Time) ([]models.Attendance, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Attendance, error)
	SummaryByStudent(ctx context.Context, studentID uuid.UUID) ([]models.AttendanceSummary, error)
	SummaryByDepartment(ctx context.Context, departmentID uuid.UUID) ([]models.AttendanceSummary, error)

	// UpsertRecord writes a legacy day-level record. A conflicting
	// (student, attendance_date) row has its seven period flags overwritten.
	UpsertRecord(ctx context.Context, record *models.AttendanceRecord) error
	ListRecords(ctx context.Context, date *time.Time) ([]models.AttendanceRecordRow, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository instance.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Mark(ctx context.Context, attendance *models.Attendance) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"}, {Name: "subject_id"}, {Name: "date"}, {Name: "time_slot"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "marked_by", "marked_at", "biometric_verified", "notes",
		}),
	}).Create(attendance).Error
	if err != nil {
		return fmt.Errorf("failed to mark attendance for student %s: %w", attendance.StudentID, err)
	}
	return nil
}

func (r *attendanceRepository) ListByClass(ctx context.Context, classID uuid.UUID, date *time.Time) ([]models.Attendance, error) {
	var rows []models.Attendance
	q := r.db.WithContext(ctx).Where("class_id = ?", classID)
	if date != nil {
		q = q.Where("date = ?", date.Format("2006-01-02"))
	}
	if err := q.Order("date, time_slot").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendance for class %s: %w", classID, err)
	}
	return rows, nil
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC, time_slot").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for student %s: %w", studentID, err)
	}
	return rows, nil
}

func (r *attendanceRepository) SummaryByStudent(ctx context.Context, studentID uuid.UUID) ([]models.AttendanceSummary, error) {
	var summaries []models.AttendanceSummary
	err := r.db.WithContext(ctx).
		Table("attendance").
		Select(`attendance.subject_id,
			subjects.name AS subject_name,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE attendance.status = 'present') AS present,
			ROUND(100.0 * COUNT(*) FILTER (WHERE attendance.status = 'present') / COUNT(*), 2) AS percentage`).
		Joins("JOIN subjects ON subjects.id = attendance.subject_id").
		Where("attendance.student_id = ?", studentID).
		Group("attendance.subject_id, subjects.name").
		Order("subjects.name").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance for student %s: %w", studentID, err)
	}
	return summaries, nil
}

func (r *attendanceRepository) SummaryByDepartment(ctx context.Context, departmentID uuid.UUID) ([]models.AttendanceSummary, error) {
	var summaries []models.AttendanceSummary
	err := r.db.WithContext(ctx).
		Table("attendance").
		Select(`attendance.student_id,
			students.name AS student_name,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE attendance.status = 'present') AS present,
			ROUND(100.0 * COUNT(*) FILTER (WHERE attendance.status = 'present') / COUNT(*), 2) AS percentage`).
		Joins("JOIN students ON students.id = attendance.student_id").
		Where("students.department_id = ?", departmentID).
		Group("attendance.student_id, students.name").
		Order("students.name").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance for department %s: %w", departmentID, err)
	}
	return summaries, nil
}

func (r *attendanceRepository) UpsertRecord(ctx context.Context, record *models.AttendanceRecord) error {
	now := time.Now()
	record.UpdatedAt = now
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "attendance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"period1", "period2", "period3", "period4", "period5", "period6", "period7", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert attendance record for student %s: %w", record.StudentID, err)
	}
	return nil
}

func (r *attendanceRepository) ListRecords(ctx context.Context, date *time.Time) ([]models.AttendanceRecordRow, error) {
	var rows []models.AttendanceRecordRow
	q := r.db.WithContext(ctx).
		Table("attendance_records").
		Select("attendance_records.*, students.name AS name, students.roll_number AS roll_number").
		Joins("JOIN students ON students.id = attendance_records.student_id")
	if date != nil {
		q = q.Where("attendance_records.attendance_date = ?", date.Format("2006-01-02"))
	}
	if err := q.Order("students.name").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return rows, nil
}
