package provisioning

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Observer defines the interface for structured observability during a
// bootstrap run.
type Observer interface {
	// Printf logs a plain formatted message.
	Printf(format string, v ...any)

	// Event emits a structured event.
	Event(event Event)

	// WithFields returns a new Observer with additional context fields.
	WithFields(fields map[string]string) Observer
}

// Event represents a structured bootstrap event.
type Event struct {
	Type    EventType         // Type of event
	Step    string            // Step ID if applicable
	Message string            // Human-readable message
	Fields  map[string]string // Additional contextual fields
}

// EventType represents the type of bootstrap event.
type EventType string

const (
	// EventStepStarted indicates a provisioning step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a provisioning step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a provisioning step failed.
	EventStepFailed EventType = "step.failed"
	// EventStepSkipped indicates a step's predicate was false.
	EventStepSkipped EventType = "step.skipped"

	// EventReadinessWait indicates a readiness gate outcome.
	EventReadinessWait EventType = "readiness.wait"

	// EventBootstrapCompleted indicates every invoked step succeeded.
	EventBootstrapCompleted EventType = "bootstrap.completed"
)

// ConsoleObserver implements Observer on a zerolog console logger.
type ConsoleObserver struct {
	logger zerolog.Logger
	fields map[string]string
}

// NewConsoleObserver creates a console-based observer writing to stdout.
func NewConsoleObserver() *ConsoleObserver {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "nodeup").Logger()
	return &ConsoleObserver{logger: logger, fields: map[string]string{}}
}

// NewObserverWithLogger creates an observer on an existing zerolog logger.
// Tests use it to capture output.
func NewObserverWithLogger(logger zerolog.Logger) *ConsoleObserver {
	return &ConsoleObserver{logger: logger, fields: map[string]string{}}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	o.logger.Info().Msgf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	var ev *zerolog.Event
	switch event.Type {
	case EventStepFailed:
		ev = o.logger.Error()
	case EventStepSkipped:
		ev = o.logger.Debug()
	default:
		ev = o.logger.Info()
	}

	ev = ev.Str("event", string(event.Type))
	if event.Step != "" {
		ev = ev.Str("step", event.Step)
	}
	for k, v := range o.fields {
		ev = ev.Str(k, v)
	}
	for k, v := range event.Fields {
		ev = ev.Str(k, v)
	}
	ev.Msg(event.Message)
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(o.fields)+len(fields))
	for k, v := range o.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ConsoleObserver{logger: o.logger, fields: merged}
}
