package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dermaglow/internal/model"
)

type ClinicRepository struct {
	db *gorm.DB
}

func NewClinicRepository(db *gorm.DB) *ClinicRepository {
	return &ClinicRepository{db: db}
}

func (r *ClinicRepository) Create(clinic *model.Clinic) error {
	if err := r.db.Create(clinic).Error; err != nil {
		return fmt.Errorf("create clinic failed: %w", err)
	}
	return nil
}

func (r *ClinicRepository) GetByID(id uint) (*model.Clinic, error) {
	var clinic model.Clinic
	if err := r.db.First(&clinic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get clinic failed: %w", err)
	}
	return &clinic, nil
}

// List returns one page of clinics, newest first, plus the total count.
func (r *ClinicRepository) List(page, limit int) ([]model.Clinic, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.db.Model(&model.Clinic{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count clinics failed: %w", err)
	}

	var clinics []model.Clinic
	if err := r.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clinics).Error; err != nil {
		return nil, 0, fmt.Errorf("list clinics failed: %w", err)
	}
	return clinics, total, nil
}

func (r *ClinicRepository) Save(clinic *model.Clinic) error {
	if err := r.db.Save(clinic).Error; err != nil {
		return fmt.Errorf("update clinic failed: %w", err)
	}
	return nil
}

func (r *ClinicRepository) DeleteByID(id uint) error {
	if err := r.db.Delete(&model.Clinic{}, id).Error; err != nil {
		return fmt.Errorf("delete clinic failed: %w", err)
	}
	return nil
}
