package db

import (
	"haru-weather/internal/domain/entity"

	"gorm.io/gorm"
)

type GormFeedbackGateway struct {
	DB *gorm.DB
}

var _ FeedbackGateway = (*GormFeedbackGateway)(nil)

func NewGormFeedbackGateway(db *gorm.DB) *GormFeedbackGateway {
	return &GormFeedbackGateway{DB: db}
}

func (gateway *GormFeedbackGateway) Create(feedback *entity.Feedback) error {
	return gateway.DB.Create(feedback).Error
}

func (gateway *GormFeedbackGateway) FindAll() ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	err := gateway.DB.Order("created_at desc").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
