package repo

import (
	"quiz-portal/app/models"

	"gorm.io/gorm"
)

type MenuRepository struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{db: db} }

// List orders by the fixed-width display_seq so rows come back in the
// sequence the sidebar renders them.
func (r *MenuRepository) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("display_seq ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(m *models.MenuItem) error { return r.db.Create(m).Error }

func (r *MenuRepository) Update(id uint, m *models.MenuItem) error {
	res := r.db.Model(&models.MenuItem{}).Where("menu_id = ?", id).Updates(map[string]any{
		"parent_id":     m.ParentID,
		"name":          m.Name,
		"icon":          m.Icon,
		"url":           m.URL,
		"visible_flag":  m.VisibleFlag,
		"new_tab_flag":  m.NewTabFlag,
		"display_seq":   m.DisplaySeq,
		"last_editor":   m.LastEditor,
		"last_modified": m.LastModified,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(id uint) error {
	res := r.db.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
