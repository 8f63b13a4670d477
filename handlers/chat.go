package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorent/backend-rental/models"
	"github.com/gorent/backend-rental/services"
)

type ChatHandler struct {
	provider services.ChatProvider
}

func NewChatHandler(provider services.ChatProvider) *ChatHandler {
	return &ChatHandler{provider: provider}
}

// Chat proxies a message history to the AI assistant. No state is kept
// between requests; the client resends the whole conversation.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body: messages must be a non-empty list of {role, content}",
		})
		return
	}

	reply, err := h.provider.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		fmt.Printf("[Chat] Provider error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Assistant is unavailable right now. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    models.ChatResponse{Reply: reply},
	})
}
