package entities

// User is the single account kind. Values are handed around by copy.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (User) TableName() string { return "users" }
