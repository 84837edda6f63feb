package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"haru-weather/internal/domain/entity"
	"haru-weather/internal/domain/gateway/db"
	"haru-weather/internal/domain/model"
	"haru-weather/pkg/log"
	"haru-weather/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type feedbackUseCase struct {
	dbGateway db.FeedbackGateway
}

func NewFeedbackUseCase(dbGateway db.FeedbackGateway) UseCase {
	return &feedbackUseCase{dbGateway: dbGateway}
}

// CreateFeedback stores a feedback entry and returns it with its generated id
func (uc *feedbackUseCase) CreateFeedback(dto model.CreateFeedbackDTO) (*entity.Feedback, error) {
	if strings.TrimSpace(dto.Message) == "" {
		return nil, errors.New("message is required")
	}

	entry := &entity.Feedback{
		ID:        uuid.NewString(),
		Message:   strings.TrimSpace(dto.Message),
		Contact:   strings.TrimSpace(dto.Contact),
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.dbGateway.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	log.Info(msg.GetMessage("feedback.created"), zap.String("feedback_id", entry.ID))
	return entry, nil
}

// FindAllFeedback returns every stored entry, newest first
func (uc *feedbackUseCase) FindAllFeedback() ([]entity.Feedback, error) {
	feedbacks, err := uc.dbGateway.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedbacks, nil
}
