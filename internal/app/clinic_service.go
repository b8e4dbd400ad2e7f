package app

import (
	"strings"

	"dermaglow/internal/model"
)

type ClinicService struct {
	clinics ClinicStore
}

type ClinicPage struct {
	Items []model.Clinic `json:"items"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int64          `json:"total"`
}

func NewClinicService(clinics ClinicStore) *ClinicService {
	return &ClinicService{clinics: clinics}
}

func (s *ClinicService) Create(clinic *model.Clinic) error {
	if clinic == nil || strings.TrimSpace(clinic.Name) == "" {
		return ErrInvalidInput
	}
	return s.clinics.Create(clinic)
}

func (s *ClinicService) Get(id uint) (*model.Clinic, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	clinic, err := s.clinics.GetByID(id)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return clinic, nil
}

func (s *ClinicService) List(page, limit int) (*ClinicPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, total, err := s.clinics.List(page, limit)
	if err != nil {
		return nil, err
	}
	return &ClinicPage{Items: items, Page: page, Limit: limit, Total: total}, nil
}

// Update replaces the mutable fields of an existing clinic.
func (s *ClinicService) Update(id uint, updated *model.Clinic) (*model.Clinic, error) {
	if id == 0 || updated == nil {
		return nil, ErrInvalidInput
	}

	clinic, err := s.clinics.GetByID(id)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	if strings.TrimSpace(updated.Name) != "" {
		clinic.Name = updated.Name
	}
	clinic.Rating = updated.Rating
	clinic.Address = updated.Address
	clinic.Phone = updated.Phone
	clinic.Lat = updated.Lat
	clinic.Lng = updated.Lng
	clinic.Hours = updated.Hours
	clinic.Doctors = updated.Doctors

	if err := s.clinics.Save(clinic); err != nil {
		return nil, err
	}
	return clinic, nil
}

func (s *ClinicService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}
	clinic, err := s.clinics.GetByID(id)
	if err != nil {
		return err
	}
	if clinic == nil {
		return ErrClinicNotFound
	}
	return s.clinics.DeleteByID(id)
}
