package serviceImp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	repo "github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/repository"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/schedule/service"
)

type schedSvc struct {
	r      repo.ScheduleRepository
	logger *slog.Logger
}

func NewScheduleService(r repo.ScheduleRepository, logger *slog.Logger) service.ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &schedSvc{r: r, logger: logger}
}

func (s *schedSvc) Feed() ([]service.FeedEvent, error) {
	list, err := s.r.List()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]service.FeedEvent, 0, len(list))
	for _, ev := range list {
		out = append(out, service.FeedEvent{ID: ev.ID, Title: ev.Title, Start: ev.StartDate, Color: service.EventColor})
	}
	return out, nil
}

func (s *schedSvc) Create(title, startDate string) (uint, error) {
	title, startDate = strings.TrimSpace(title), strings.TrimSpace(startDate)
	if title == "" {
		return 0, fmt.Errorf("%w: title", service.ErrValidation)
	}
	if startDate == "" {
		return 0, fmt.Errorf("%w: start_date", service.ErrValidation)
	}
	ev := &entities.ScheduleEvent{Title: title, StartDate: startDate}
	if err := s.r.Create(ev); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	s.logger.Info("event created", "id", ev.ID, "start", ev.StartDate)
	return ev.ID, nil
}

func (s *schedSvc) Rename(id uint, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title", service.ErrValidation)
	}
	if err := s.r.UpdateTitle(id, title); err != nil {
		return fmt.Errorf("update event %d: %w", id, err)
	}
	return nil
}

func (s *schedSvc) Delete(id uint) error {
	if err := s.r.Delete(id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}
