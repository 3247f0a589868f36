package serviceImp

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/observability"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report"
	repo "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/repository"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/report/service"
)

type reportSvc struct {
	r       repo.ReportRepository
	images  service.ImageStore
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewReportService(r repo.ReportRepository, images service.ImageStore, metrics *observability.Metrics, logger *slog.Logger) service.ReportService {
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &reportSvc{r: r, images: images, metrics: metrics, logger: logger}
}

func (s *reportSvc) List() ([]entities.Report, error) { return s.r.List() }

func (s *reportSvc) Get(id uint) (*entities.Report, error) { return s.r.FindByID(id) }

func (s *reportSvc) Save(in service.ReportInput) (uint, error) {
	for _, f := range []struct{ name, val string }{
		{"date", in.Date},
		{"activity", in.Activity},
		{"worker", in.Worker},
	} {
		if strings.TrimSpace(f.val) == "" {
			return 0, report.Required(f.name)
		}
	}

	rep := &entities.Report{
		Date:      strings.TrimSpace(in.Date),
		FieldName: report.EncodeFieldNames(in.FieldNames),
		Activity:  in.Activity,
		Worker:    strings.TrimSpace(in.Worker),
	}

	// The file lands on disk before the row is written.
	if in.Image != nil {
		name, err := s.images.Save(in.Image.Filename, in.Image.Body)
		if err != nil {
			return 0, fmt.Errorf("store image: %w", err)
		}
		rep.ImagePath = &name
	}

	if in.ID == nil {
		if err := s.r.Create(rep); err != nil {
			return 0, fmt.Errorf("create report: %w", err)
		}
		s.logger.Info("report created", "id", rep.ID, "date", rep.Date)
		return rep.ID, nil
	}

	rep.ID = *in.ID
	if err := s.r.Update(rep, in.Image == nil); err != nil {
		return 0, fmt.Errorf("update report %d: %w", rep.ID, err)
	}
	s.logger.Info("report updated", "id", rep.ID, "new_image", in.Image != nil)
	return rep.ID, nil
}

func (s *reportSvc) Delete(id uint) error {
	if err := s.r.Delete(id); err != nil {
		return fmt.Errorf("delete report %d: %w", id, err)
	}
	return nil
}

func (s *reportSvc) ExportCSV(w io.Writer) error {
	list, err := s.r.List()
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}
	if err := report.WriteCSV(w, list); err != nil {
		return err
	}
	s.metrics.ReportsExported.Inc()
	return nil
}

func (s *reportSvc) ImagePath(name string) (string, error) { return s.images.Path(name) }
