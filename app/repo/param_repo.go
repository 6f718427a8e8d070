package repo

import (
	"quiz-portal/app/models"

	"gorm.io/gorm"
)

type SystemParamRepository struct{ db *gorm.DB }

func NewSystemParamRepository(db *gorm.DB) *SystemParamRepository {
	return &SystemParamRepository{db: db}
}

func (r *SystemParamRepository) List() ([]models.SystemParam, error) {
	var params []models.SystemParam
	err := r.db.Order("id ASC").Find(&params).Error
	return params, err
}

func (r *SystemParamRepository) Create(p *models.SystemParam) error { return r.db.Create(p).Error }

// Update replaces the full row for the given id.
func (r *SystemParamRepository) Update(id uint, p *models.SystemParam) error {
	res := r.db.Model(&models.SystemParam{}).Where("id = ?", id).Updates(map[string]any{
		"param_code":  p.ParamCode,
		"param_value": p.ParamValue,
		"param_desc":  p.ParamDesc,
		"sys_flag":    p.SysFlag,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SystemParamRepository) Delete(id uint) error {
	res := r.db.Delete(&models.SystemParam{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
