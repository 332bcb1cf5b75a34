package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/curiolab/internal/content"
	"github.com/abhisek/curiolab/internal/dimensions"
	"github.com/abhisek/curiolab/internal/progress"
)

// ContentHandler serves article and dimension generation.
type ContentHandler struct {
	content *content.Service
	dims    *dimensions.Service
	tracker *progress.Tracker
	log     *zap.Logger
}

// NewContentHandler wires the generation services to their routes.
func NewContentHandler(cs *content.Service, ds *dimensions.Service, tracker *progress.Tracker, log *zap.Logger) *ContentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentHandler{content: cs, dims: ds, tracker: tracker, log: log}
}

type dimensionsRequest struct {
	Topic string `json:"topic"`
}

type dimensionsResponse struct {
	Topic      string   `json:"topic"`
	Dimensions []string `json:"dimensions"`
}

// GenerateDimensions handles POST /generate-dimensions.
func (h *ContentHandler) GenerateDimensions(c *gin.Context) {
	var req dimensionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if err := content.ValidateTopic(topic); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_topic", err)
		return
	}

	dims, err := h.dims.Suggest(c.Request.Context(), topic)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "generation_failed", err)
		return
	}

	// The completion tracker needs to know how many dimensions this
	// topic actually got, not the default.
	h.tracker.NoteDimensionCount(topic, len(dims))

	respondOK(c, dimensionsResponse{Topic: topic, Dimensions: dims})
}

type contentRequest struct {
	Topic      string `json:"topic"`
	Dimension  string `json:"dimension"`
	GradeLevel int    `json:"grade_level"`
}

// GenerateContent handles POST /generate-content.
func (h *ContentHandler) GenerateContent(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	article, err := h.content.Generate(c.Request.Context(), strings.TrimSpace(req.Topic), req.Dimension, req.GradeLevel)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidTopic), errors.Is(err, content.ErrInvalidGrade):
			respondError(c, http.StatusBadRequest, "invalid_request", err)
		default:
			h.log.Error("content generation failed",
				zap.String("topic", req.Topic),
				zap.String("dimension", req.Dimension),
				zap.Error(err))
			respondError(c, http.StatusInternalServerError, "generation_failed", err)
		}
		return
	}

	respondOK(c, article)
}
