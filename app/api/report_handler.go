package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

type ReportService interface {
	Generate(ctx context.Context, topic string) (*types.ReportResult, error)
}

type ReportHandler struct {
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) HandleGenerateReport(c *fiber.Ctx) error {
	var params types.GenerateReportParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	result, err := h.service.Generate(c.Context(), params.Topic)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
