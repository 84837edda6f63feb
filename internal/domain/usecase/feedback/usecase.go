package feedback

import (
	"haru-weather/internal/domain/entity"
	"haru-weather/internal/domain/model"
)

type UseCase interface {
	// CreateFeedback stores a feedback entry and returns it with its
	// generated id
	CreateFeedback(dto model.CreateFeedbackDTO) (*entity.Feedback, error)

	// FindAllFeedback returns every stored entry, newest first
	FindAllFeedback() ([]entity.Feedback, error)
}
