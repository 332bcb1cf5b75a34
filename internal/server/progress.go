package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/curiolab/internal/progress"
)

// ProgressHandler serves the learner profile and progress routes.
type ProgressHandler struct {
	tracker *progress.Tracker
	log     *zap.Logger
}

// NewProgressHandler wires the tracker to its routes.
func NewProgressHandler(tracker *progress.Tracker, log *zap.Logger) *ProgressHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProgressHandler{tracker: tracker, log: log}
}

type profileRequest struct {
	Name   string `json:"name"`
	Grade  int    `json:"grade"`
	Avatar string `json:"avatar"`
}

// CreateProfile handles POST /api/profile.
func (h *ProgressHandler) CreateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	profile, err := h.tracker.CreateProfile(c.Request.Context(), req.Name, req.Grade, req.Avatar)
	if err != nil {
		if errors.Is(err, progress.ErrInvalidProfile) {
			respondError(c, http.StatusBadRequest, "invalid_profile", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetProfile handles GET /api/profile. 404 means anonymous.
func (h *ProgressHandler) GetProfile(c *gin.Context) {
	profile, err := h.tracker.Profile(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	if profile == nil {
		respondError(c, http.StatusNotFound, "no_profile", progress.ErrNoProfile)
		return
	}
	respondOK(c, profile)
}

// UpdateProfile handles PUT /api/profile.
func (h *ProgressHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	profile, err := h.tracker.UpdateProfile(c.Request.Context(), req.Name, req.Grade, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrNoProfile):
			respondError(c, http.StatusNotFound, "no_profile", err)
		case errors.Is(err, progress.ErrInvalidProfile):
			respondError(c, http.StatusBadRequest, "invalid_profile", err)
		default:
			respondError(c, http.StatusInternalServerError, "internal", err)
		}
		return
	}
	respondOK(c, profile)
}

// ResetProfile handles DELETE /api/profile. Profile and progress go
// together; afterwards the API behaves as if no one ever signed up.
func (h *ProgressHandler) ResetProfile(c *gin.Context) {
	if err := h.tracker.ResetProfile(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	c.Status(http.StatusNoContent)
}

type startSessionRequest struct {
	Topic           string `json:"topic"`
	Dimension       string `json:"dimension"`
	Grade           int    `json:"grade"`
	TotalDimensions int    `json:"totalDimensions"`
}

// StartSession handles POST /api/sessions.
func (h *ProgressHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if req.Topic == "" || req.Dimension == "" {
		respondError(c, http.StatusBadRequest, "bad_request", errors.New("topic and dimension are required"))
		return
	}

	if req.TotalDimensions > 0 {
		h.tracker.NoteDimensionCount(req.Topic, req.TotalDimensions)
	}
	session := h.tracker.StartSession(req.Topic, req.Dimension, req.Grade)
	c.JSON(http.StatusCreated, session)
}

type completeSessionRequest struct {
	SessionID        string  `json:"sessionId"`
	WordCount        int     `json:"wordCount"`
	ReadabilityScore float64 `json:"readabilityScore"`
}

// CompleteSession handles POST /api/sessions/complete. For anonymous
// learners the session is accepted and dropped: 204, nothing stored.
func (h *ProgressHandler) CompleteSession(c *gin.Context) {
	var req completeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	session := h.tracker.OpenSession()
	if session == nil || session.ID != req.SessionID {
		respondError(c, http.StatusNotFound, "no_session", errors.New("no open session with that id"))
		return
	}

	up, err := h.tracker.CompleteSession(c.Request.Context(), session, progress.ContentMetadata{
		WordCount:        req.WordCount,
		ReadabilityScore: req.ReadabilityScore,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	if up == nil {
		c.Status(http.StatusNoContent)
		return
	}
	respondOK(c, up)
}

type feedbackRequest struct {
	Rating string `json:"rating"`
}

// SubmitFeedback handles POST /api/feedback. 409 tells the frontend to
// send the learner to profile creation first.
func (h *ProgressHandler) SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	rating := progress.Rating(req.Rating)
	if rating != progress.RatingUp && rating != progress.RatingDown {
		respondError(c, http.StatusBadRequest, "bad_rating", errors.New(`rating must be "up" or "down"`))
		return
	}

	up, err := h.tracker.SubmitFeedback(c.Request.Context(), rating)
	if err != nil {
		if errors.Is(err, progress.ErrNoProfile) {
			respondError(c, http.StatusConflict, "profile_required", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	respondOK(c, up)
}

// GetProgress handles GET /api/progress.
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	up, err := h.tracker.Progress(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	if up == nil {
		respondError(c, http.StatusNotFound, "no_progress", errors.New("no progress recorded"))
		return
	}
	respondOK(c, up)
}

type statsResponse struct {
	TotalSessions   int     `json:"totalSessions"`
	TotalTimeSpent  int     `json:"totalTimeSpent"`
	TopicsExplored  int     `json:"topicsExplored"`
	TopicsCompleted int     `json:"topicsCompleted"`
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
	NextMilestone   int     `json:"nextMilestone"`
	AvgReadability  float64 `json:"avgReadability"`
}

// GetStats handles GET /api/progress/stats.
func (h *ProgressHandler) GetStats(c *gin.Context) {
	up, err := h.tracker.Progress(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	if up == nil {
		respondError(c, http.StatusNotFound, "no_progress", errors.New("no progress recorded"))
		return
	}

	stats := statsResponse{
		TotalSessions:  len(up.Sessions),
		TotalTimeSpent: up.TotalTimeSpent,
		TopicsExplored: up.TopicsExplored,
		CurrentStreak:  up.Streak.CurrentStreak,
		LongestStreak:  up.Streak.LongestStreak,
		NextMilestone:  progress.NextMilestone(up.Streak.CurrentStreak),
	}
	for _, tc := range up.TopicCompletions {
		if tc.IsFullyComplete {
			stats.TopicsCompleted++
		}
	}
	if n := len(up.Sessions); n > 0 {
		var sum float64
		for _, s := range up.Sessions {
			sum += s.ReadabilityScore
		}
		stats.AvgReadability = sum / float64(n)
	}
	respondOK(c, stats)
}
