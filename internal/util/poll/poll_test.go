package poll

import (
	"context"
	"errors"
	"testing"
	"time"
)

// script returns an observer that yields states in order and repeats the last one.
func script(states ...string) (func(context.Context) (string, error), *int) {
	calls := 0
	return func(context.Context) (string, error) {
		i := calls
		if i >= len(states) {
			i = len(states) - 1
		}
		calls++
		return states[i], nil
	}, &calls
}

// countingSleep records wait cycles without sleeping.
func countingSleep(waits *int) Option {
	return WithSleep(func(context.Context, time.Duration) error {
		*waits++
		return nil
	})
}

func TestUntil_StartSequence(t *testing.T) {
	t.Parallel()
	// IDLE -> (start issued) -> CREATING -> CREATING -> STARTING
	observe, observations := script("IDLE", "CREATING", "CREATING", "STARTING")
	starts, waits := 0, 0

	err := Until(context.Background(), Machine{
		Name:    "start",
		Observe: observe,
		Transitions: map[string]Transition{
			"IDLE": Act(func(context.Context) error {
				starts++
				return nil
			}),
			"CREATING": Await(),
			"UPDATING": Await(),
			"STARTING": Finish(),
		},
	}, countingSleep(&waits))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if starts != 1 {
		t.Errorf("expected 1 start command, got %d", starts)
	}
	if waits != 2 {
		t.Errorf("expected 2 wait cycles, got %d", waits)
	}
	if *observations != 4 {
		t.Errorf("expected 4 observations, got %d", *observations)
	}
}

func TestUntil_DoneWithoutAction(t *testing.T) {
	t.Parallel()
	observe, _ := script("DELETING", "DELETING", "DELETED")
	waits := 0

	err := Until(context.Background(), Machine{
		Name:    "delete",
		Observe: observe,
		Transitions: map[string]Transition{
			"DELETING": Await(),
			"DELETED":  Finish(),
		},
	}, countingSleep(&waits))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if waits != 2 {
		t.Errorf("expected 2 wait cycles, got %d", waits)
	}
}

func TestUntil_UnknownStateIsLoggedAndPolled(t *testing.T) {
	t.Parallel()
	observe, _ := script("MYSTERY", "MYSTERY", "DONE")
	var unknown []string
	waits := 0

	err := Until(context.Background(), Machine{
		Name:        "unknown",
		Observe:     observe,
		Transitions: map[string]Transition{"DONE": Finish()},
		OnUnknown:   func(state string) { unknown = append(unknown, state) },
	}, countingSleep(&waits))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unknown) != 2 {
		t.Errorf("expected 2 unknown-state callbacks, got %v", unknown)
	}
	if waits != 2 {
		t.Errorf("expected a wait after each unknown state, got %d", waits)
	}
}

func TestUntil_ActionErrorIsNotFatal(t *testing.T) {
	t.Parallel()
	observe, _ := script("RUNNING", "RUNNING", "IDLE")
	attempts, waits := 0, 0

	err := Until(context.Background(), Machine{
		Name:    "stop",
		Observe: observe,
		Transitions: map[string]Transition{
			"RUNNING": Act(func(context.Context) error {
				attempts++
				return errors.New("conflict")
			}),
			"IDLE": Finish(),
		},
	}, countingSleep(&waits))

	if err != nil {
		t.Fatalf("transient action errors must not stop the loop, got: %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
	if waits != 2 {
		t.Errorf("expected a wait after each failed action, got %d", waits)
	}
}

func TestUntil_FatalActionStops(t *testing.T) {
	t.Parallel()
	observe, observations := script("IDLE")
	sentinel := errors.New("role missing")

	err := Until(context.Background(), Machine{
		Name:    "start",
		Observe: observe,
		Transitions: map[string]Transition{
			"IDLE": Act(func(context.Context) error { return Fatal(sentinel) }),
		},
	}, WithSleep(func(context.Context, time.Duration) error { return nil }))

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got: %v", err)
	}
	if !IsFatal(err) {
		t.Error("expected error to remain fatal")
	}
	if *observations != 1 {
		t.Errorf("expected loop to stop after 1 observation, got %d", *observations)
	}
}

func TestUntil_ObserveErrorStops(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("describe failed")

	err := Until(context.Background(), Machine{
		Name:    "describe",
		Observe: func(context.Context) (string, error) { return "", sentinel },
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected observe error, got: %v", err)
	}
}

func TestUntil_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	observe, _ := script("CREATING")

	err := Until(ctx, Machine{
		Name:        "start",
		Observe:     observe,
		Transitions: map[string]Transition{"CREATING": Await()},
	}, WithInterval(time.Millisecond))

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestUntil_Timeout(t *testing.T) {
	t.Parallel()
	observe, _ := script("STOPPING")

	err := Until(context.Background(), Machine{
		Name:        "stop",
		Observe:     observe,
		Transitions: map[string]Transition{"STOPPING": Await()},
	}, WithInterval(time.Millisecond), WithTimeout(20*time.Millisecond))

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
}

func TestUntil_ObserveHook(t *testing.T) {
	t.Parallel()
	observe, _ := script("A", "B")
	var seen []string

	err := Until(context.Background(), Machine{
		Name:    "hook",
		Observe: observe,
		Transitions: map[string]Transition{
			"A": Act(func(context.Context) error { return nil }),
			"B": Finish(),
		},
	}, WithObserveHook(func(loop, state string) { seen = append(seen, loop+":"+state) }))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[0] != "hook:A" || seen[1] != "hook:B" {
		t.Errorf("unexpected hook calls: %v", seen)
	}
}

func TestWithInterval_IgnoresNonPositive(t *testing.T) {
	t.Parallel()
	cfg := &Config{Interval: DefaultInterval}
	WithInterval(0)(cfg)
	if cfg.Interval != DefaultInterval {
		t.Errorf("expected default interval to be kept, got %v", cfg.Interval)
	}
	WithInterval(5 * time.Second)(cfg)
	if cfg.Interval != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.Interval)
	}
}

func TestFatal(t *testing.T) {
	t.Parallel()
	if Fatal(nil) != nil {
		t.Error("Fatal(nil) should be nil")
	}

	base := errors.New("boom")
	err := Fatal(base)
	if !IsFatal(err) {
		t.Error("expected IsFatal to be true")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to unwrap to base")
	}
	if err.Error() != "boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if IsFatal(base) {
		t.Error("plain error must not be fatal")
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	cases := map[Outcome]string{Repoll: "repoll", Wait: "wait", Done: "done", Outcome(9): "Outcome(9)"}
	for o, want := range cases {
		if o.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(o), o.String(), want)
		}
	}
}
