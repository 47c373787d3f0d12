package execution

import (
	"context"
	"errors"
	"fmt"

	"github.com/birdayz/streamtap/internal/runtime"
	"github.com/birdayz/streamtap/kdag"
)

// ProcessingStage indicates where in the pipeline an error occurred
type ProcessingStage string

const (
	StageInput           ProcessingStage = "input"
	StageDeserialization ProcessingStage = "deserialization"
	StageProcessing      ProcessingStage = "processing"
	StageSerialization   ProcessingStage = "serialization"
	StageCancelled       ProcessingStage = "cancelled"
)

// ProcessingError wraps an error with source attribution for debugging.
// It identifies which processor failed and at what stage.
type ProcessingError struct {
	// Cause is the underlying error
	Cause error

	// Stage identifies where in the pipeline the error occurred
	Stage ProcessingStage

	// ProcessorName is the name of the innermost node that failed
	ProcessorName string

	// Topic is the source topic the record was injected at
	Topic string
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s error in processor %q (topic=%s): %v",
		e.Stage, e.ProcessorName, e.Topic, e.Cause)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// NewProcessingError lifts the node attribution out of err. Cause is the
// error the failing node reported.
func NewProcessingError(err error, topic string) *ProcessingError {
	node, cause := runtime.Attribute(err)
	return &ProcessingError{
		Cause:         cause,
		Stage:         stageOf(cause),
		ProcessorName: node,
		Topic:         topic,
	}
}

func stageOf(err error) ProcessingStage {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StageCancelled
	case errors.Is(err, kdag.ErrTypeMismatch):
		return StageInput
	case errors.Is(err, runtime.ErrDeserialize):
		return StageDeserialization
	case errors.Is(err, runtime.ErrSerialize):
		return StageSerialization
	default:
		return StageProcessing
	}
}
