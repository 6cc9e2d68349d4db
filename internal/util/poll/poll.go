package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// DefaultInterval is the delay between observations of a transitional state.
const DefaultInterval = 2 * time.Second

// Outcome tells the loop what to do after handling an observed state.
type Outcome int

const (
	// Repoll observes the resource again immediately.
	Repoll Outcome = iota
	// Wait sleeps one interval before observing again.
	Wait
	// Done ends the loop successfully.
	Done
)

func (o Outcome) String() string {
	switch o {
	case Repoll:
		return "repoll"
	case Wait:
		return "wait"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Transition describes how the loop reacts to one state.
type Transition struct {
	// Action is issued when the state is observed (optional).
	Action func(ctx context.Context) error
	// Outcome decides what happens after the action.
	Outcome Outcome
}

// Act returns a transition that issues action and observes again.
func Act(action func(ctx context.Context) error) Transition {
	return Transition{Action: action, Outcome: Repoll}
}

// Await returns a transition that waits one interval.
func Await() Transition {
	return Transition{Outcome: Wait}
}

// Finish returns a transition that ends the loop.
func Finish() Transition {
	return Transition{Outcome: Done}
}

// Machine is a state-to-transition mapping over one remote resource.
type Machine struct {
	// Name identifies the loop in logs, errors and metrics.
	Name string

	// Observe returns the current state of the resource.
	Observe func(ctx context.Context) (string, error)

	// Transitions maps known states to their handling.
	Transitions map[string]Transition

	// OnUnknown is called for states without a transition (optional).
	// The loop logs the state either way and waits before polling again.
	OnUnknown func(state string)
}

// Config holds poll loop configuration.
type Config struct {
	Interval  time.Duration
	Timeout   time.Duration
	Logger    logr.Logger
	Sleep     func(ctx context.Context, d time.Duration) error
	OnObserve func(loop, state string)
}

// Option is a functional option for poll configuration.
type Option func(*Config)

// Until runs the machine until a Done transition is reached.
//
// There is no ceiling on the number of observations unless WithTimeout is set;
// the loop also stops when ctx is cancelled.
func Until(ctx context.Context, m Machine, opts ...Option) error {
	cfg := &Config{
		Interval: DefaultInterval,
		Logger:   logr.Discard(),
		Sleep:    sleep,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log := cfg.Logger.WithValues("loop", m.Name)
	observations := 0

	for {
		state, err := m.Observe(ctx)
		if err != nil {
			return fmt.Errorf("%s: failed to observe state: %w", m.Name, err)
		}
		observations++
		if cfg.OnObserve != nil {
			cfg.OnObserve(m.Name, state)
		}

		tr, known := m.Transitions[state]
		if !known {
			log.Info("Unknown condition", "state", state)
			if m.OnUnknown != nil {
				m.OnUnknown(state)
			}
			if err := cfg.Sleep(ctx, cfg.Interval); err != nil {
				return fmt.Errorf("%s: stopped after %d observations: %w", m.Name, observations, err)
			}
			continue
		}

		if tr.Action != nil {
			if err := tr.Action(ctx); err != nil {
				if IsFatal(err) {
					return fmt.Errorf("%s: fatal error (not retrying): %w", m.Name, err)
				}
				log.Error(err, "Action failed, polling again", "state", state)
				// Rejected actions are reissued after one interval.
				if err := cfg.Sleep(ctx, cfg.Interval); err != nil {
					return fmt.Errorf("%s: stopped after %d observations: %w", m.Name, observations, err)
				}
				continue
			}
		}

		switch tr.Outcome {
		case Done:
			log.V(1).Info("Reached target state", "state", state, "observations", observations)
			return nil
		case Wait:
			log.Info("Still transitioning, waiting", "state", state, "interval", cfg.Interval)
			if err := cfg.Sleep(ctx, cfg.Interval); err != nil {
				return fmt.Errorf("%s: stopped after %d observations: %w", m.Name, observations, err)
			}
		case Repoll:
		}
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithInterval sets the delay between observations of a transitional state.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Interval = d
		}
	}
}

// WithTimeout bounds the whole loop. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l logr.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithSleep replaces the wait function (tests use it to count wait cycles).
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Config) {
		c.Sleep = fn
	}
}

// WithObserveHook registers a callback invoked for every observed state.
func WithObserveHook(fn func(loop, state string)) Option {
	return func(c *Config) {
		c.OnObserve = fn
	}
}

// FatalError wraps an error to mark it as fatal (non-retryable).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable).
// A poll loop whose action returns a fatal error stops immediately.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal checks if an error is fatal (non-retryable).
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
