package progress

import "go.uber.org/zap"

// Event names emitted at tracker transition points. The analytics
// pipeline consuming them is external.
const (
	EventSessionStarted   = "session_started"
	EventSessionCompleted = "session_completed"
	EventStreakExtended   = "streak_extended"
	EventTopicCompleted   = "topic_completed"
	EventFeedback         = "feedback_submitted"
	EventProfileCreated   = "profile_created"
	EventProfileReset     = "profile_reset"
)

// Emitter receives instrumentation events from the tracker. Emission is
// fire-and-forget; the tracker never fails on an emitter's behalf.
type Emitter interface {
	Emit(event string, fields ...zap.Field)
}

// LogEmitter writes events to a zap logger.
type LogEmitter struct {
	log *zap.Logger
}

// NewLogEmitter creates an Emitter backed by the given logger.
func NewLogEmitter(log *zap.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (e *LogEmitter) Emit(event string, fields ...zap.Field) {
	e.log.Info(event, fields...)
}

// NopEmitter discards all events.
type NopEmitter struct{}

func (NopEmitter) Emit(string, ...zap.Field) {}
