package entity

import "time"

type Feedback struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Message   string    `json:"message"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdDate"`
}
