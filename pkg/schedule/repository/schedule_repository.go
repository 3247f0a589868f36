package repository

import "github.com/kitsukisaiseikyo-byte/farm-manager/entities"

type ScheduleRepository interface {
	Create(ev *entities.ScheduleEvent) error
	UpdateTitle(id uint, title string) error
	Delete(id uint) error
	List() ([]entities.ScheduleEvent, error)
}
