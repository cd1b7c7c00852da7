package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/models"
)

// FacultyRepository defines the interface for faculty profile operations.
type FacultyRepository interface {
	List(ctx context.Context, departmentID *uuid.UUID) ([]models.Faculty, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id uuid.UUID) error
	AssignedSubjects(ctx context.Context, facultyID uuid.UUID) ([]models.Subject, error)
	IsAssignedToClass(ctx context.Context, facultyID, classID uuid.UUID) (bool, error)
}

type facultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository creates a new FacultyRepository instance.
func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]models.Faculty, error) {
	var faculty []models.Faculty
	q := r.db.WithContext(ctx).Order("name")
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	if err := q.Find(&faculty).Error; err != nil {
		return nil, fmt.Errorf("failed to list faculty: %w", err)
	}
	return faculty, nil
}

func (r *facultyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&faculty).Error; err != nil {
		return nil, fmt.Errorf("failed to find faculty %s: %w", id, err)
	}
	return &faculty, nil
}

func (r *facultyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&faculty).Error; err != nil {
		return nil, fmt.Errorf("failed to find faculty profile for user %s: %w", userID, err)
	}
	return &faculty, nil
}

func (r *facultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	if err := r.db.WithContext(ctx).Create(faculty).Error; err != nil {
		return fmt.Errorf("failed to create faculty: %w", err)
	}
	return nil
}

func (r *facultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	if err := r.db.WithContext(ctx).Save(faculty).Error; err != nil {
		return fmt.Errorf("failed to update faculty %s: %w", faculty.ID, err)
	}
	return nil
}

func (r *facultyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Faculty{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete faculty %s: %w", id, err)
	}
	return nil
}

func (r *facultyRepository) AssignedSubjects(ctx context.Context, facultyID uuid.UUID) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).
		Table("subjects").
		Select("subjects.*").
		Joins("JOIN faculty_subjects ON faculty_subjects.subject_id = subjects.id").
		Where("faculty_subjects.faculty_id = ?", facultyID).
		Order("subjects.name").
		Scan(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned subjects for faculty %s: %w", facultyID, err)
	}
	return subjects, nil
}

func (r *facultyRepository) IsAssignedToClass(ctx context.Context, facultyID, classID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("faculty_subjects").
		Where("faculty_id = ? AND class_id = ?", facultyID, classID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check class assignment for faculty %s: %w", facultyID, err)
	}
	return count > 0, nil
}
