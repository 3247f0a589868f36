package repository

import "github.com/kitsukisaiseikyo-byte/farm-manager/entities"

type ReportRepository interface {
	Create(r *entities.Report) error
	// Update overwrites the row with r.ID. keepImage leaves image_path untouched.
	// Zero matching rows is not an error.
	Update(r *entities.Report, keepImage bool) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Report, error)
	// List returns every report, newest date first, id ascending within a date.
	List() ([]entities.Report, error)
}
