package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/models"
)

// StudentRepository defines the interface for student profile operations.
type StudentRepository interface {
	List(ctx context.Context, departmentID *uuid.UUID) ([]models.Student, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]models.Student, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new StudentRepository instance.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	q := r.db.WithContext(ctx).Order("name")
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	if err := q.Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (r *studentRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).Where("class_id = ?", classID).Order("name").Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list students for class %s: %w", classID, err)
	}
	return students, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, fmt.Errorf("failed to find student %s: %w", id, err)
	}
	return &student, nil
}

func (r *studentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, fmt.Errorf("failed to find student profile for user %s: %w", userID, err)
	}
	return &student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Save(student).Error; err != nil {
		return fmt.Errorf("failed to update student %s: %w", student.ID, err)
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Student{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete student %s: %w", id, err)
	}
	return nil
}
