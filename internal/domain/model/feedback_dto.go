package model

type CreateFeedbackDTO struct {
	Message string `json:"message" validate:"required"`
	Contact string `json:"contact"`
}
