package services

import (
	"context"

	"github.com/gorent/backend-rental/models"
)

// ChatProvider is an interface for AI assistant backends. Implementations
// keep no state between calls; the full message history arrives every time.
type ChatProvider interface {
	Chat(ctx context.Context, messages []models.ChatMessage) (string, error)
}
