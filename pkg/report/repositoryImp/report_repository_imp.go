package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) Create(rep *entities.Report) error { return r.db.Create(rep).Error }

func (r *reportRepo) Update(rep *entities.Report, keepImage bool) error {
	upd := map[string]any{
		"date":       rep.Date,
		"field_name": rep.FieldName,
		"activity":   rep.Activity,
		"worker":     rep.Worker,
	}
	if !keepImage {
		upd["image_path"] = rep.ImagePath
	}
	return r.db.Model(&entities.Report{}).Where("id = ?", rep.ID).Updates(upd).Error
}

func (r *reportRepo) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entities.Report{}).Error
}

func (r *reportRepo) FindByID(id uint) (*entities.Report, error) {
	var out entities.Report
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reportRepo) List() ([]entities.Report, error) {
	var out []entities.Report
	if err := r.db.Order("date DESC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
