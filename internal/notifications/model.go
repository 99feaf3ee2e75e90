package notifications

import "time"

type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	Message   string `gorm:"size:200;not null"`
	UserID    uint   `gorm:"not null;index"`
	Read      bool   `gorm:"default:false"`
	CreatedAt time.Time
}
