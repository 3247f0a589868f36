package entities

// Report is one day's activity on one or more plots.
type Report struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Date      string  `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	FieldName string  `gorm:"column:field_name;not null" json:"field_name"`
	Activity  string  `gorm:"not null" json:"activity"`
	Worker    string  `gorm:"not null" json:"worker"`
	ImagePath *string `gorm:"column:image_path" json:"image_path"`
}

func (Report) TableName() string { return "reports" }
