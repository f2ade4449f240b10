package usecase

import (
	"context"
	"sync"

	"github.com/aalvaropc/workoutlog/internal/domain"
	"github.com/aalvaropc/workoutlog/internal/ports"
)

// Form drives the add-workout reducer for hosts that run effects synchronously.
// State may be read from any goroutine.
type Form struct {
	mu    sync.RWMutex
	state domain.FormState

	submit    *SubmitWorkout
	notifier  ports.Notifier
	navigator ports.Navigator
}

func NewForm(submit *SubmitWorkout, notifier ports.Notifier, navigator ports.Navigator) *Form {
	return &Form{
		submit:    submit,
		notifier:  notifier,
		navigator: navigator,
	}
}

func (f *Form) State() domain.FormState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Dispatch applies ev and runs the resulting effects in order. A submit effect blocks
// until the request completes and its outcome has been applied.
// The only error returned is a KindInvalidInput error for a blocked submit; submit
// outcomes are reported through the Notifier.
func (f *Form) Dispatch(ctx context.Context, ev domain.Event) error {
	f.mu.Lock()
	tr := domain.Reduce(f.state, ev)
	f.state = tr.State
	f.mu.Unlock()

	return f.run(ctx, tr.Effects)
}

func (f *Form) run(ctx context.Context, effects []domain.Effect) error {
	for _, eff := range effects {
		switch e := eff.(type) {
		case domain.EffectSubmit:
			if err := f.Dispatch(ctx, f.submit.Execute(ctx, e.Entry)); err != nil {
				return err
			}
		case domain.EffectNotify:
			if f.notifier != nil {
				f.notifier.Notify(e.Kind, e.Message)
			}
		case domain.EffectNavigate:
			if f.navigator != nil {
				f.navigator.Navigate(e.Path)
			}
		case domain.EffectInvalid:
			return e.Err()
		}
	}
	return nil
}
