package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/livepipe/internal/util/labels"
)

// CleanupError represents accumulated errors from cleanup operations.
type CleanupError struct {
	Errors []error
}

func (e *CleanupError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("cleanup encountered %d errors: %v", len(e.Errors), e.Errors)
}

func (e *CleanupError) Unwrap() error {
	if len(e.Errors) == 1 {
		return e.Errors[0]
	}
	return errors.Join(e.Errors...)
}

// Add records err if it is non-nil. Nested CleanupErrors are flattened.
func (e *CleanupError) Add(err error) {
	if err == nil {
		return
	}
	var nested *CleanupError
	if errors.As(err, &nested) && nested != e {
		e.Errors = append(e.Errors, nested.Errors...)
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *CleanupError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ErrorOrNil returns e when it holds errors, nil otherwise.
func (e *CleanupError) ErrorOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// SweepOperation deletes every resource of one kind that carries a pipeline's tags.
//
// Usage example:
//
//	err := (&SweepOperation{
//	    Kind:   "origin endpoint",
//	    Tags:   tags,
//	    List:   client.ListOriginEndpoints,
//	    Delete: func(ctx context.Context, r Resource) error { return client.DeleteOriginEndpoint(ctx, r.ID) },
//	}).Execute(ctx)
type SweepOperation struct {
	Kind string
	Tags labels.TagSet

	// List returns all resources of the kind, tagged or not.
	List func(ctx context.Context) ([]Resource, error)

	// Delete removes one resource.
	Delete func(ctx context.Context, r Resource) error

	// Logf receives progress lines (optional).
	Logf func(format string, args ...any)

	// OnResult is called after every delete attempt (optional).
	OnResult func(kind string, err error)
}

// Execute deletes all matching resources. A failed delete does not stop the sweep.
// Returns a *CleanupError holding the listing failure or every delete failure.
func (op *SweepOperation) Execute(ctx context.Context) error {
	errs := &CleanupError{}

	all, err := op.List(ctx)
	if err != nil {
		op.logf("Warning: Failed to list %ss: %v", op.Kind, err)
		errs.Add(fmt.Errorf("failed to list %ss: %w", op.Kind, err))
		return errs
	}

	for _, r := range labels.Filter(op.Tags, all, func(r Resource) map[string]string { return r.Tags }) {
		op.logf("Deleting %s: %s (ID: %s)", op.Kind, r.Name, r.ID)
		err := op.Delete(ctx, r)
		if op.OnResult != nil {
			op.OnResult(op.Kind, err)
		}
		if err != nil {
			op.logf("Warning: Failed to delete %s %s: %v", op.Kind, r.ID, err)
			errs.Add(fmt.Errorf("%s %q: %w", op.Kind, r.ID, err))
		}
	}

	return errs.ErrorOrNil()
}

func (op *SweepOperation) logf(format string, args ...any) {
	if op.Logf != nil {
		op.Logf(format, args...)
	}
}

// ByID adapts an id-based delete call to a SweepOperation delete.
func ByID(fn func(ctx context.Context, id string) error) func(context.Context, Resource) error {
	return func(ctx context.Context, r Resource) error {
		return fn(ctx, r.ID)
	}
}
