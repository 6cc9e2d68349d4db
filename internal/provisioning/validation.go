package provisioning

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

// pipelineNamePattern restricts names to characters every derived resource id accepts.
var pipelineNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidationError represents a configuration validation error or warning.
type ValidationError struct {
	Field    string // Configuration field that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// ValidationPhase implements the Phase interface for pre-flight validation.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("[Validation] Running pre-flight validation...")

	var errs []string
	for _, ve := range Validate(ctx) {
		if ve.IsError() {
			errs = append(errs, ve.Error())
			continue
		}
		ctx.Observer.Event(Event{
			Type:    EventValidationWarning,
			Phase:   "Validation",
			Message: "WARNING: " + ve.Message,
		})
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errs, "\n  "))
	}

	ctx.Observer.Printf("[Validation] Validation passed")
	return nil
}

// Validate runs all validation checks and returns any errors or warnings.
func Validate(ctx *Context) []ValidationError {
	var errs []ValidationError
	cfg := ctx.Config

	// --- Pipeline name ---

	switch {
	case cfg.PipelineName == "":
		errs = append(errs, ValidationError{
			Field:    "PipelineName",
			Message:  "pipeline name is required",
			Severity: "error",
		})
	case !pipelineNamePattern.MatchString(cfg.PipelineName):
		errs = append(errs, ValidationError{
			Field:    "PipelineName",
			Message:  fmt.Sprintf("pipeline name %q may only contain letters, digits, '_' and '-'", cfg.PipelineName),
			Severity: "error",
		})
	}

	// --- Ingest CIDR ---

	if cfg.SecurityCIDR == "" {
		errs = append(errs, ValidationError{
			Field:    "SecurityCIDR",
			Message:  "security CIDR is required",
			Severity: "error",
		})
	} else {
		_, ipNet, err := net.ParseCIDR(cfg.SecurityCIDR)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:    "SecurityCIDR",
				Message:  fmt.Sprintf("invalid CIDR: %v", err),
				Severity: "error",
			})
		} else {
			ones, bits := ipNet.Mask.Size()
			if bits != 32 {
				errs = append(errs, ValidationError{
					Field:    "SecurityCIDR",
					Message:  "only IPv4 CIDRs are supported",
					Severity: "error",
				})
			} else if ones == 0 {
				errs = append(errs, ValidationError{
					Field:    "SecurityCIDR",
					Message:  fmt.Sprintf("%s allows RTMP pushes from any address", cfg.SecurityCIDR),
					Severity: "warning",
				})
			}
		}
	}

	// --- Access role ---

	if cfg.AccessRoleName == "" {
		errs = append(errs, ValidationError{
			Field:    "AccessRoleName",
			Message:  "MediaLive access role name is required",
			Severity: "error",
		})
	}

	return errs
}
