package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) Create(ev *entities.ScheduleEvent) error { return r.db.Create(ev).Error }

// UpdateTitle leaves every other column alone; a missing id updates nothing.
func (r *schedRepo) UpdateTitle(id uint, title string) error {
	return r.db.Model(&entities.ScheduleEvent{}).Where("id = ?", id).Update("title", title).Error
}

func (r *schedRepo) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&entities.ScheduleEvent{}).Error
}

func (r *schedRepo) List() ([]entities.ScheduleEvent, error) {
	var out []entities.ScheduleEvent
	if err := r.db.Order("start_date ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
