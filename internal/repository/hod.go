package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartattend/attendance-service/internal/models"
)

// HODRepository defines the interface for head-of-department profile operations.
type HODRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.HOD, error)
	Create(ctx context.Context, hod *models.HOD) error
	Update(ctx context.Context, hod *models.HOD) error
}

type hodRepository struct {
	db *gorm.DB
}

// NewHODRepository creates a new HODRepository instance.
func NewHODRepository(db *gorm.DB) HODRepository {
	return &hodRepository{db: db}
}

func (r *hodRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.HOD, error) {
	var hod models.HOD
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&hod).Error; err != nil {
		return nil, fmt.Errorf("failed to find hod profile for user %s: %w", userID, err)
	}
	return &hod, nil
}

func (r *hodRepository) Create(ctx context.Context, hod *models.HOD) error {
	if err := r.db.WithContext(ctx).Create(hod).Error; err != nil {
		return fmt.Errorf("failed to create hod profile: %w", err)
	}
	return nil
}

func (r *hodRepository) Update(ctx context.Context, hod *models.HOD) error {
	if err := r.db.WithContext(ctx).Save(hod).Error; err != nil {
		return fmt.Errorf("failed to update hod profile %s: %w", hod.ID, err)
	}
	return nil
}
