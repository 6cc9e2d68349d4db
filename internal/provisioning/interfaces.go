package provisioning

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

type phaseFunc struct {
	name string
	fn   func(*Context) error
}

// NewPhase creates a Phase from a function.
func NewPhase(name string, fn func(*Context) error) Phase {
	return &phaseFunc{name: name, fn: fn}
}

func (p *phaseFunc) Name() string                 { return p.name }
func (p *phaseFunc) Provision(ctx *Context) error { return p.fn(ctx) }
