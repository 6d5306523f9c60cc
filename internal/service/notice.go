package service

import (
	"github.com/lennonhrmn/AWI-Mobile/internal/dto"

	"github.com/google/uuid"
)

const (
	titleSuccess = "Succès"
	titleWarning = "Avertissement"
)

func newNotice(title, message string) *dto.Notice {
	return &dto.Notice{ID: uuid.NewString(), Title: title, Message: message}
}
