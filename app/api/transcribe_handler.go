package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

type TranscribeService interface {
	Transcribe(ctx context.Context, documentID, fileURL, fileKey, mimeType string) (*types.TranscriptResult, error)
}

type TranscribeHandler struct {
	service TranscribeService
}

func NewTranscribeHandler(service TranscribeService) *TranscribeHandler {
	return &TranscribeHandler{service: service}
}

func (h *TranscribeHandler) HandleTranscribe(c *fiber.Ctx) error {
	var params types.TranscribeParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	result, err := h.service.Transcribe(c.Context(), params.DocumentID, params.FileURL, params.FileKey, params.MimeType)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
