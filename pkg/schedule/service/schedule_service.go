package service

import "errors"

// EventColor is the display color of every feed entry, whatever the row stores.
const EventColor = "#3788d8"

var ErrValidation = errors.New("missing required field")

// FeedEvent is one entry of the calendar JSON feed.
type FeedEvent struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	Color string `json:"color"`
}

type ScheduleService interface {
	Feed() ([]FeedEvent, error)
	Create(title, startDate string) (uint, error)
	Rename(id uint, title string) error
	Delete(id uint) error
}
