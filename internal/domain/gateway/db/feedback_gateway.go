package db

import (
	"haru-weather/internal/domain/entity"
)

// FeedbackGateway defines persistence for user feedback entries
type FeedbackGateway interface {
	Create(feedback *entity.Feedback) error
	FindAll() ([]entity.Feedback, error)
}
