package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

type SummarizeService interface {
	SummarizePDF(ctx context.Context, documentID, fileURL, fileKey string) (*types.SummaryResult, error)
}

type SummarizeHandler struct {
	service SummarizeService
}

func NewSummarizeHandler(service SummarizeService) *SummarizeHandler {
	return &SummarizeHandler{service: service}
}

func (h *SummarizeHandler) HandleSummarizePDF(c *fiber.Ctx) error {
	var params types.SummarizePDFParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	result, err := h.service.SummarizePDF(c.Context(), params.DocumentID, params.FileURL, params.FileKey)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
