package AIService

import (
	"github.com/caprice1026-disc/aws-parody-page/configs"
	AIRepository "github.com/caprice1026-disc/aws-parody-page/repositories/ai"
)

type AIService struct {
	AIRepo *AIRepository.Repository
	Config *configs.Config
}

func NewAIService(aiRepo *AIRepository.Repository, config *configs.Config) *AIService {
	return &AIService{
		AIRepo: aiRepo,
		Config: config,
	}
}
