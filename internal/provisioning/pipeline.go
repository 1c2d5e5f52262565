package provisioning

import (
	"fmt"
	"time"
)

// Run executes the step catalog sequentially. Steps whose predicate is
// false are skipped silently; the first failed step aborts the run and its
// error names the step. On full success a completion confirmation is
// emitted.
func Run(ctx *Context, steps []Step) error {
	start := time.Now()
	ctx.Observer.Printf("Starting bootstrap with %d catalog steps (role=%s, addr=%s)",
		len(steps), ctx.Role, ctx.SelfAddress)

	for i, step := range steps {
		if !step.When(ctx) {
			recordStepMetric(step.ID, resultSkipped, 0)
			ctx.Observer.Event(Event{
				Type:    EventStepSkipped,
				Step:    step.ID,
				Message: "predicate false, skipping",
			})
			continue
		}

		stepStart := time.Now()
		ctx.Observer.Event(Event{
			Type:    EventStepStarted,
			Step:    step.ID,
			Message: fmt.Sprintf("starting (%d/%d)", i+1, len(steps)),
		})

		if err := step.Run(ctx); err != nil {
			recordStepMetric(step.ID, resultFailure, time.Since(stepStart).Seconds())
			ctx.Observer.Event(Event{
				Type:    EventStepFailed,
				Step:    step.ID,
				Message: fmt.Sprintf("failed: %v", err),
			})
			return fmt.Errorf("%s step failed: %w", step.ID, err)
		}

		recordStepMetric(step.ID, resultSuccess, time.Since(stepStart).Seconds())
		ctx.Observer.Event(Event{
			Type:    EventStepCompleted,
			Step:    step.ID,
			Message: fmt.Sprintf("completed in %v", time.Since(stepStart).Round(time.Millisecond)),
		})
	}

	ctx.Observer.Event(Event{
		Type:    EventBootstrapCompleted,
		Message: fmt.Sprintf("Success: all provisioning steps completed in %v", time.Since(start).Round(time.Millisecond)),
	})
	return nil
}
