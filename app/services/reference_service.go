package services

import (
	"errors"
	"time"

	"quiz-portal/app/models"
	"quiz-portal/app/repo"

	"gorm.io/gorm"
)

// ReferenceService owns the two reference tables: system parameters and
// navigation menus. Menus get their write-time bookkeeping (editor id,
// modification stamp) filled in here, not by the caller.
type ReferenceService struct {
	params *repo.SystemParamRepository
	menus  *repo.MenuRepository
	now    func() time.Time
}

func NewReferenceService(params *repo.SystemParamRepository, menus *repo.MenuRepository) *ReferenceService {
	return &ReferenceService{params: params, menus: menus, now: time.Now}
}

func (s *ReferenceService) ListParams() ([]models.SystemParam, error) { return s.params.List() }

func (s *ReferenceService) CreateParam(p *models.SystemParam) error {
	if p.ParamCode == "" || p.ParamValue == "" {
		return ErrInvalidInput
	}
	if p.SysFlag == "" {
		p.SysFlag = "N"
	}
	return s.params.Create(p)
}

func (s *ReferenceService) UpdateParam(id uint, p *models.SystemParam) error {
	if p.ParamCode == "" || p.ParamValue == "" {
		return ErrInvalidInput
	}
	if p.SysFlag == "" {
		p.SysFlag = "N"
	}
	err := s.params.Update(id, p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *ReferenceService) DeleteParam(id uint) error {
	err := s.params.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *ReferenceService) ListMenus() ([]models.MenuItem, error) { return s.menus.List() }

// stamp is the 14-digit wall-clock format the menu table has always used.
func (s *ReferenceService) stamp() string { return s.now().Format("20060102150405") }

func (s *ReferenceService) applyMenuDefaults(m *models.MenuItem, editorID uint) {
	if m.VisibleFlag == "" {
		m.VisibleFlag = "Y"
	}
	if m.NewTabFlag == "" {
		m.NewTabFlag = "N"
	}
	if m.DisplaySeq == "" {
		m.DisplaySeq = "00100"
	}
	m.LastEditor = editorID
	m.LastModified = s.stamp()
}

func (s *ReferenceService) CreateMenu(m *models.MenuItem, editorID uint) error {
	if m.Name == "" {
		return ErrInvalidInput
	}
	s.applyMenuDefaults(m, editorID)
	return s.menus.Create(m)
}

func (s *ReferenceService) UpdateMenu(id uint, m *models.MenuItem, editorID uint) error {
	if m.Name == "" {
		return ErrInvalidInput
	}
	s.applyMenuDefaults(m, editorID)
	err := s.menus.Update(id, m)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *ReferenceService) DeleteMenu(id uint) error {
	err := s.menus.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
