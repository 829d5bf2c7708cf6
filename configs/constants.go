package configs

import (
	"time"
)

const (
	// Project Rules
	PROJECT_NAME = "AWS Parody Page"

	// OpenAI Rules
	DEFAULT_OPENAI_MODEL = "gpt-4o-mini"
	DEFAULT_TEMPERATURE  = 0.4
	DEFAULT_MAX_TOKENS   = 1100

	// Server Rules
	DEFAULT_PORT     = "5000"
	SHUTDOWN_TIMEOUT = 10 * time.Second

	// Rate Limit Rules
	DEFAULT_RATE_LIMIT_PER_MINUTE = 30
	RATE_LIMIT_BURST              = 5
	RATE_LIMIT_IDLE_EVICTION      = 10 * time.Minute
)
