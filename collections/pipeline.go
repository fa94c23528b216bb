package collections

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-seqops/arr"
	"github.com/hasbyte1/go-seqops/fn"
)

// Step is one stage of a registered pipeline. Values are passed as any so
// that a pipeline can be registered once and run over any element type;
// type-assert inside the step.
type Step func(any) any

// pipelineRegistry is the package-level, goroutine-safe pipeline store.
var pipelineRegistry struct {
	mu        sync.RWMutex
	pipelines map[string]func(any) any
}

func init() {
	pipelineRegistry.pipelines = make(map[string]func(any) any)
}

// RegisterPipeline stores the left-to-right composition of steps under name,
// replacing any pipeline already registered with that name.
//
//	collections.RegisterPipeline("evens-desc",
//	    func(v any) any { return v.(*collections.Sequence[int]).Filter(isEven) },
//	    func(v any) any { return collections.Quicksort(v.(*collections.Sequence[int])).Reverse() },
//	)
func RegisterPipeline(name string, steps ...Step) {
	fns := arr.Map(steps, func(s Step) func(any) any { return s })
	flow := fn.Flow(fns...)

	pipelineRegistry.mu.Lock()
	defer pipelineRegistry.mu.Unlock()
	pipelineRegistry.pipelines[name] = flow
}

// HasPipeline reports whether a pipeline is registered under name.
func HasPipeline(name string) bool {
	pipelineRegistry.mu.RLock()
	defer pipelineRegistry.mu.RUnlock()
	_, ok := pipelineRegistry.pipelines[name]
	return ok
}

// FlushPipelines removes all registered pipelines.
// Intended for use in tests.
func FlushPipelines() {
	pipelineRegistry.mu.Lock()
	defer pipelineRegistry.mu.Unlock()
	pipelineRegistry.pipelines = make(map[string]func(any) any)
}

// RunPipeline passes input through the pipeline registered under name.
// Returns an error wrapping [ErrPipelineNotFound] for an unknown name.
func RunPipeline(name string, input any) (any, error) {
	pipelineRegistry.mu.RLock()
	flow, ok := pipelineRegistry.pipelines[name]
	pipelineRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPipelineNotFound, name)
	}
	return flow(input), nil
}

// Pipe runs the named pipeline with s as its input.
func (s *Sequence[T]) Pipe(name string) (any, error) {
	return RunPipeline(name, s)
}
