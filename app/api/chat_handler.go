package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/yvesmonem/ai-productivity-assistant/types"
)

// ChatService is the slice of the agent the chat endpoints need.
type ChatService interface {
	InitializeChat(ctx context.Context, documentID string) error
	Chat(ctx context.Context, documentID *string, message, userID string) (*types.ChatResult, error)
}

type ChatHandler struct {
	service ChatService
}

func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) HandleInitializeChat(c *fiber.Ctx) error {
	var params types.InitializeChatParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	if err := h.service.InitializeChat(c.Context(), params.DocumentID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     "initialized",
		"documentId": params.DocumentID,
	})
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var params types.ChatParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	result, err := h.service.Chat(c.Context(), params.DocumentID, params.Message, params.UserID)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
