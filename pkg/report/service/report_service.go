package service

import (
	"io"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
)

// ImageUpload is an optional picture attached to a report submission.
type ImageUpload struct {
	Filename string
	Body     io.Reader
}

// ReportInput is one submission of the report form. A nil ID creates a new report.
type ReportInput struct {
	ID         *uint
	Date       string
	FieldNames []string
	Activity   string
	Worker     string
	Image      *ImageUpload
}

// ImageStore persists uploaded images and resolves stored names.
type ImageStore interface {
	Save(original string, r io.Reader) (string, error)
	Path(name string) (string, error)
}

type ReportService interface {
	List() ([]entities.Report, error)
	Get(id uint) (*entities.Report, error)
	Save(in ReportInput) (uint, error)
	Delete(id uint) error
	ExportCSV(w io.Writer) error
	ImagePath(name string) (string, error)
}
