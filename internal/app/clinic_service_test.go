package app_test

import (
	"errors"
	"testing"

	"dermaglow/internal/app"
	"dermaglow/internal/model"
)

type fakeClinicStore struct {
	clinics map[uint]*model.Clinic
	nextID  uint
}

func newFakeClinicStore() *fakeClinicStore {
	return &fakeClinicStore{clinics: make(map[uint]*model.Clinic)}
}

func (s *fakeClinicStore) Create(clinic *model.Clinic) error {
	s.nextID++
	clinic.ID = s.nextID
	copied := *clinic
	s.clinics[clinic.ID] = &copied
	return nil
}

func (s *fakeClinicStore) GetByID(id uint) (*model.Clinic, error) {
	clinic, ok := s.clinics[id]
	if !ok {
		return nil, nil
	}
	copied := *clinic
	return &copied, nil
}

func (s *fakeClinicStore) List(page, limit int) ([]model.Clinic, int64, error) {
	var all []model.Clinic
	for id := uint(1); id <= s.nextID; id++ {
		if clinic, ok := s.clinics[id]; ok {
			all = append(all, *clinic)
		}
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (s *fakeClinicStore) Save(clinic *model.Clinic) error {
	copied := *clinic
	s.clinics[clinic.ID] = &copied
	return nil
}

func (s *fakeClinicStore) DeleteByID(id uint) error {
	delete(s.clinics, id)
	return nil
}

func TestClinicCreateRequiresName(t *testing.T) {
	service := app.NewClinicService(newFakeClinicStore())
	if err := service.Create(&model.Clinic{Name: "   "}); !errors.Is(err, app.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := service.Create(nil); !errors.Is(err, app.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil clinic, got %v", err)
	}
}

func TestClinicGetMissing(t *testing.T) {
	service := app.NewClinicService(newFakeClinicStore())
	if _, err := service.Get(42); !errors.Is(err, app.ErrClinicNotFound) {
		t.Fatalf("expected ErrClinicNotFound, got %v", err)
	}
}

func TestClinicUpdateReplacesFields(t *testing.T) {
	store := newFakeClinicStore()
	service := app.NewClinicService(store)

	clinic := &model.Clinic{Name: "Derma Care", Rating: 4.1, Phone: "111"}
	if err := service.Create(clinic); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := service.Update(clinic.ID, &model.Clinic{Name: "Derma Care Plus", Rating: 4.8, Phone: "222"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Derma Care Plus" || updated.Rating != 4.8 || updated.Phone != "222" {
		t.Fatalf("fields not replaced: %+v", updated)
	}

	// A blank name keeps the existing one.
	kept, err := service.Update(clinic.ID, &model.Clinic{Name: " ", Rating: 4.8})
	if err != nil {
		t.Fatalf("Update with blank name: %v", err)
	}
	if kept.Name != "Derma Care Plus" {
		t.Fatalf("blank name should keep the current one, got %q", kept.Name)
	}
}

func TestClinicListPagination(t *testing.T) {
	store := newFakeClinicStore()
	service := app.NewClinicService(store)
	for i := 0; i < 5; i++ {
		if err := service.Create(&model.Clinic{Name: "clinic"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := service.List(2, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 5 || len(page.Items) != 2 || page.Page != 2 {
		t.Fatalf("unexpected page: total=%d items=%d page=%d", page.Total, len(page.Items), page.Page)
	}

	// Out-of-range parameters are normalized.
	normalized, err := service.List(0, 1000)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if normalized.Page != 1 || normalized.Limit != 20 {
		t.Fatalf("expected page=1 limit=20, got page=%d limit=%d", normalized.Page, normalized.Limit)
	}
}

func TestClinicDeleteMissing(t *testing.T) {
	store := newFakeClinicStore()
	service := app.NewClinicService(store)

	clinic := &model.Clinic{Name: "Derma Care"}
	if err := service.Create(clinic); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := service.Delete(clinic.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := service.Delete(clinic.ID); !errors.Is(err, app.ErrClinicNotFound) {
		t.Fatalf("expected ErrClinicNotFound on second delete, got %v", err)
	}
}
