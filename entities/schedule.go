package entities

type ScheduleEvent struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `gorm:"not null" json:"title"`
	StartDate string  `gorm:"column:start_date;not null" json:"start_date"` // YYYY-MM-DD
	EndDate   *string `gorm:"column:end_date" json:"end_date"`
	Color     *string `json:"color"`
}

func (ScheduleEvent) TableName() string { return "schedules" }
