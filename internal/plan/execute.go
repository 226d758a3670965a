package plan

import "fmt"

// Materializer performs the filesystem effects of a plan.
type Materializer interface {
	EnsureDirectory(path string) error
	WriteFile(path, content string) error
}

// Result records how far Execute got.
type Result struct {
	Completed []Step
	Failed    *Step
}

// Execute applies the steps of p in order. It stops at the first error and
// does not undo completed steps; the returned Result says which ones ran.
// The error wraps the Materializer's error unchanged.
func Execute(p *Plan, m Materializer) (*Result, error) {
	result := &Result{}

	for i := range p.Steps {
		step := p.Steps[i]

		var err error
		if step.Kind == StepDir {
			err = m.EnsureDirectory(step.Path)
		} else {
			err = m.WriteFile(step.Path, step.Content)
		}
		if err != nil {
			result.Failed = &step
			return result, fmt.Errorf("creating %s: %w", step.RelPath, err)
		}

		result.Completed = append(result.Completed, step)
	}

	return result, nil
}
