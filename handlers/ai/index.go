package AIHandler

import (
	AIService "github.com/caprice1026-disc/aws-parody-page/services/ai"
)

type Handler struct {
	AIService *AIService.AIService
}

func NewHandler(s *AIService.AIService) *Handler {
	return &Handler{
		AIService: s,
	}
}
