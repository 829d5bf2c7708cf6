package AIHandler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caprice1026-disc/aws-parody-page/middlewares"
	"github.com/caprice1026-disc/aws-parody-page/types"
)

// Generate handles POST /api/generate: validate the request, run the
// generation pipeline, answer with the serialized artifact or a mapped error.
func (h *Handler) Generate(c *gin.Context) {
	var request types.GenerateRequest
	// Malformed bodies are tolerated here: binding leaves the struct empty
	// and field validation below reports what is actually missing.
	_ = c.ShouldBindJSON(&request)

	request.Normalize()
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spec, err := h.AIService.GenerateServiceSpec(c.Request.Context(), &request)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, spec)
}

func (h *Handler) respondGenerationError(c *gin.Context, err error) {
	genErr := types.AsGenerationError(err)
	status := genErr.HTTPStatus()

	attrs := []any{
		"kind", string(genErr.Kind),
		"status", status,
		"error", genErr.Message,
		"request_id", c.GetString(middlewares.RequestIDKey),
	}
	if cause := genErr.Unwrap(); cause != nil {
		attrs = append(attrs, "cause", cause.Error())
	}
	slog.Error("generate request failed", attrs...)

	switch genErr.Kind {
	case types.KindSchemaValidation:
		c.JSON(status, gin.H{
			"error":   "ValidationError",
			"details": genErr.Details,
		})
	case types.KindBadRequest, types.KindMissingCredential:
		c.JSON(status, gin.H{"error": genErr.Message})
	case types.KindUnexpected:
		c.JSON(status, gin.H{
			"error":   "UnexpectedError",
			"message": genErr.Message,
		})
	default:
		c.JSON(status, gin.H{
			"error":   string(genErr.Kind),
			"message": genErr.Message,
		})
	}
}
