package words

import "time"

type Word struct {
	ID        uint   `gorm:"primaryKey"`
	Word      string `gorm:"size:100;uniqueIndex;not null"`
	UserID    uint   `gorm:"not null;index"`
	CreatedAt time.Time
}
