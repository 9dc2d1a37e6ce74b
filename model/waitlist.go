package model

import "time"

// WaitlistEntry structure
type WaitlistEntry struct {
	ID        uint64    `json:"id" gorm:"PRIMARY_KEY"`
	Email     string    `json:"email" sql:"notnull" gorm:"column:email;unique"`
	CreatedAt time.Time `json:"-"`
}

func (entry *WaitlistEntry) TableName() string {
	return "waitlist"
}
