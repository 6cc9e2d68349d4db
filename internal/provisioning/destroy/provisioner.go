package destroy

import (
	"github.com/imamik/livepipe/internal/platform/media"
	"github.com/imamik/livepipe/internal/provisioning"
)

// Cleaner removes the resources owned by one provisioner.
type Cleaner interface {
	Name() string
	Cleanup(ctx *provisioning.Context) error
}

// Provisioner handles pipeline teardown.
type Provisioner struct {
	steps []Cleaner
}

// NewProvisioner creates a destroy provisioner that runs steps in order.
func NewProvisioner(steps ...Cleaner) *Provisioner {
	return &Provisioner{steps: steps}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "Destroy"
}

// Provision runs every cleanup step. Nothing is rolled back.
// The returned error, if any, is a *media.CleanupError holding the failures
// of all steps.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	ctx.Observer.Printf("[Destroy] Starting teardown of pipeline: %s", ctx.Config.PipelineName)

	errs := &media.CleanupError{}
	for _, step := range p.steps {
		ctx.Observer.Printf("[Destroy] Deleting %s resources...", step.Name())
		if err := step.Cleanup(ctx); err != nil {
			errs.Add(err)
			ctx.Observer.Printf("[Destroy] %s cleanup finished with errors", step.Name())
			continue
		}
		ctx.Observer.Printf("[Destroy] %s resources deleted", step.Name())
	}

	if errs.HasErrors() {
		ctx.Observer.Printf("[Destroy] Pipeline %s teardown finished with %d warnings",
			ctx.Config.PipelineName, len(errs.Errors))
		return errs
	}

	ctx.Observer.Printf("[Destroy] Pipeline %s destroyed successfully", ctx.Config.PipelineName)
	return nil
}
