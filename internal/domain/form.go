package domain

import (
	"fmt"
	"strings"
)

// Form field names, as reported by EffectInvalid.
const (
	FieldWorkout = "workout"
	FieldWeight  = "weight"
)

// Submit control labels.
const (
	ButtonIdle     = "ADD WORKOUT"
	ButtonInFlight = "LOADING"
)

// FormState is the complete state of the add-workout form.
// It is a value: Reduce never mutates its input.
type FormState struct {
	Workout string
	Weight  float64
	// WeightSet reports whether the weight field holds a value that parsed.
	// Unparsable edits keep the last valid weight; clearing the field unsets it.
	WeightSet bool
	InFlight  bool
}

// Entry returns the pair that a submit would send.
func (s FormState) Entry() WorkoutEntry {
	return WorkoutEntry{Workout: s.Workout, Weight: s.Weight}
}

func (s FormState) ButtonLabel() string {
	if s.InFlight {
		return ButtonInFlight
	}
	return ButtonIdle
}

// missingField returns the first required field without a usable value.
func (s FormState) missingField() string {
	if s.Workout == "" {
		return FieldWorkout
	}
	if !s.WeightSet {
		return FieldWeight
	}
	return ""
}

// Event is an input to Reduce.
type Event interface{ isEvent() }

type WorkoutChanged struct{ Text string }

type WeightChanged struct{ Raw string }

type SubmitRequested struct{}

// SubmitSucceeded is the outcome of a response that did not report success=false.
type SubmitSucceeded struct{}

// SubmitRejected is the outcome of a response that reported success=false.
type SubmitRejected struct{}

// SubmitFailed is the outcome of a request that produced no usable response.
type SubmitFailed struct{ Err error }

func (WorkoutChanged) isEvent()  {}
func (WeightChanged) isEvent()   {}
func (SubmitRequested) isEvent() {}
func (SubmitSucceeded) isEvent() {}
func (SubmitRejected) isEvent()  {}
func (SubmitFailed) isEvent()    {}

// Effect is a side effect requested by a transition. Hosts run effects in order.
type Effect interface{ isEffect() }

// EffectSubmit asks the host to send Entry to the backend and feed the outcome back as an event.
type EffectSubmit struct{ Entry WorkoutEntry }

type EffectNotify struct {
	Kind    NotificationKind
	Message string
}

type EffectNavigate struct{ Path string }

// EffectInvalid reports a submit attempt blocked by a missing required field.
type EffectInvalid struct{ Field string }

func (EffectSubmit) isEffect()   {}
func (EffectNotify) isEffect()   {}
func (EffectNavigate) isEffect() {}
func (EffectInvalid) isEffect()  {}

// Err converts the blocked submit into an error for callers without a form to highlight.
func (e EffectInvalid) Err() error {
	return &OpError{
		Op:   "form.submit",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("field %s is required: %w", e.Field, ErrInvalidInput),
	}
}

// Transition is the result of applying one event.
type Transition struct {
	State   FormState
	Effects []Effect
}

// Reduce applies ev to s. It is pure: all I/O is expressed as effects.
func Reduce(s FormState, ev Event) Transition {
	switch ev := ev.(type) {
	case WorkoutChanged:
		s.Workout = ev.Text
		return Transition{State: s}

	case WeightChanged:
		if strings.TrimSpace(ev.Raw) == "" {
			// A cleared field no longer satisfies the required check.
			s.Weight = 0
			s.WeightSet = false
			return Transition{State: s}
		}
		w, err := ParseWeight(ev.Raw)
		if err != nil {
			// Keep the last valid weight.
			return Transition{State: s}
		}
		s.Weight = w
		s.WeightSet = true
		return Transition{State: s}

	case SubmitRequested:
		if s.InFlight {
			return Transition{State: s}
		}
		if f := s.missingField(); f != "" {
			return Transition{State: s, Effects: []Effect{EffectInvalid{Field: f}}}
		}
		s.InFlight = true
		return Transition{State: s, Effects: []Effect{EffectSubmit{Entry: s.Entry()}}}

	case SubmitSucceeded:
		s.InFlight = false
		return Transition{State: s, Effects: []Effect{
			EffectNavigate{Path: HomeRoute},
			EffectNotify{Kind: NotifySuccess, Message: MsgWorkoutAdded},
		}}

	case SubmitRejected:
		s.InFlight = false
		return Transition{State: s, Effects: []Effect{
			EffectNotify{Kind: NotifyError, Message: MsgRejected},
		}}

	case SubmitFailed:
		s.InFlight = false
		return Transition{State: s, Effects: []Effect{
			EffectNotify{Kind: NotifyError, Message: MsgTransportError},
		}}

	default:
		return Transition{State: s}
	}
}
