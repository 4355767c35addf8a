package planner

import "github.com/abhisek/catprep/internal/pack"

// State is a position in the planning state machine.
type State string

const (
	StateBuildingPayload  State = "BUILDING_PAYLOAD"
	StateAwaitingLLM      State = "AWAITING_LLM"
	StateLLMSucceeded     State = "LLM_SUCCEEDED"
	StateLLMFailed        State = "LLM_FAILED"
	StatePackAssembled    State = "PACK_ASSEMBLED"
	StateValidated        State = "VALIDATED"
	StateValidationFailed State = "VALIDATION_FAILED"
)

// Stage identifies a stage of a planning invocation that degraded.
type Stage string

const (
	StageLLM        Stage = "llm"
	StageValidation Stage = "validation"
)

// Outcome reports how a planning invocation resolved. A pack is always
// produced; the outcome records the terminal state and which stages, if
// any, degraded on the way there. Degradation is data, not an error.
type Outcome struct {
	// State is the terminal state: VALIDATED or VALIDATION_FAILED.
	State State

	// Degraded lists the stages that fell back, in the order encountered.
	Degraded []Stage

	// Validation is the full validator result for the assembled pack.
	Validation pack.ValidationResult

	// Reasoning is the LLM's one-line rationale, when the LLM succeeded.
	Reasoning string
}

// DegradedAt reports whether the given stage fell back.
func (o Outcome) DegradedAt(stage Stage) bool {
	for _, s := range o.Degraded {
		if s == stage {
			return true
		}
	}
	return false
}
