package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/models"
)

// ClassRepository defines the interface for class operations.
type ClassRepository interface {
	List(ctx context.Context, departmentID *uuid.UUID) ([]models.Class, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new ClassRepository instance.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]models.Class, error) {
	var classes []models.Class
	q := r.db.WithContext(ctx).Order("batch_year, semester, section")
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	if err := q.Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Class, error) {
	var class models.Class
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		return nil, fmt.Errorf("failed to find class %s: %w", id, err)
	}
	return &class, nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	if err := r.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func (r *classRepository) Update(ctx context.Context, class *models.Class) error {
	if err := r.db.WithContext(ctx).Save(class).Error; err != nil {
		return fmt.Errorf("failed to update class %s: %w", class.ID, err)
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Class{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete class %s: %w", id, err)
	}
	return nil
}

// SubjectRepository defines the interface for subject operations.
type SubjectRepository interface {
	List(ctx context.Context, departmentID *uuid.UUID) ([]models.Subject, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id uuid.UUID) error
	AssignFaculty(ctx context.Context, assignment *models.FacultySubject) error
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new SubjectRepository instance.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]models.Subject, error) {
	var subjects []models.Subject
	q := r.db.WithContext(ctx).Order("semester, name")
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	if err := q.Find(&subjects).Error; err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

func (r *subjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Subject, error) {
	var subject models.Subject
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&subject).Error; err != nil {
		return nil, fmt.Errorf("failed to find subject %s: %w", id, err)
	}
	return &subject, nil
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if err := r.db.WithContext(ctx).Create(subject).Error; err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

func (r *subjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	if err := r.db.WithContext(ctx).Save(subject).Error; err != nil {
		return fmt.Errorf("failed to update subject %s: %w", subject.ID, err)
	}
	return nil
}

func (r *subjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Subject{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete subject %s: %w", id, err)
	}
	return nil
}

func (r *subjectRepository) AssignFaculty(ctx context.Context, assignment *models.FacultySubject) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to assign subject %s to faculty %s: %w",
			assignment.SubjectID, assignment.FacultyID, err)
	}
	return nil
}
