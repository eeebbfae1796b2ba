package online

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsearch/core"
)

// Simulator is an Environment driven by the transition model of an offline
// problem. It lets online agents be exercised on any core.Problem.
type Simulator[S comparable, A comparable] struct {
	p     *core.Problem[S, A]
	state S
}

// Simulate returns a Simulator positioned at p.Initial.
func Simulate[S comparable, A comparable](p *core.Problem[S, A]) (*Simulator[S, A], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Simulator[S, A]{p: p, state: p.Initial}, nil
}

// State implements Environment.
func (e *Simulator[S, A]) State() S { return e.state }

// Execute implements Environment. Actions not offered in the current state
// fail with core.ErrInvalidAction and leave the state unchanged.
func (e *Simulator[S, A]) Execute(a A) error {
	next, err := e.p.Apply(e.state, a)
	if err != nil {
		return err
	}
	e.state = next

	return nil
}

// Run lets agent act in env until it stops or maxSteps actions have been
// executed. In the latter case the partial episode is returned together with
// ErrStepLimit. Errors from Execute end the run and are returned wrapped.
// Nil interfaces fail with ErrNilAgent; a nil *LRTAStar or *DFSAgent stops
// at once, yielding an episode of the start state only.
func Run[S comparable, A comparable](env Environment[S, A], agent Agent[S, A], maxSteps int, opts ...Option) (*Episode[S, A], error) {
	if env == nil || agent == nil {
		return nil, ErrNilAgent
	}
	if maxSteps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxSteps, maxSteps)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ep := &Episode[S, A]{States: []S{env.State()}}
	for step := 0; ; step++ {
		select {
		case <-o.Ctx.Done():
			return ep, o.Ctx.Err()
		default:
		}

		s := ep.States[len(ep.States)-1]
		a, ok := agent.Act(s)
		if !ok {
			ep.Stopped = true
			break
		}
		if step == maxSteps {
			o.Logger.WithField("steps", step).Debug("step limit reached")
			return ep, fmt.Errorf("%w: %d", ErrStepLimit, maxSteps)
		}
		if err := env.Execute(a); err != nil {
			return ep, fmt.Errorf("online: executing %v in %v: %w", a, s, err)
		}
		ep.Actions = append(ep.Actions, a)
		ep.States = append(ep.States, env.State())
		o.Logger.WithFields(logrus.Fields{
			"step":   step,
			"from":   s,
			"action": a,
		}).Debug("agent acted")
	}
	o.Logger.WithField("steps", len(ep.Actions)).Debug("agent stopped")

	return ep, nil
}
