// Package concurrency implements a simple channel based resource manager
// for running tasks concurrently over a bounded set of resources.
package concurrency

import (
	"sync"
)

// ResourceManager stores a channel of resources (e.g. per-worker
// accumulators) meant to be used concurrently, and collects the errors
// returned by the tasks run over them.
type ResourceManager[T any] struct {
	sync.WaitGroup
	Resources chan T

	mu  sync.Mutex
	err error
}

// NewResourceManager instantiates a new [ResourceManager] holding the
// given resources. The number of resources bounds the parallelism.
func NewResourceManager[T any](resources []T) *ResourceManager[T] {
	ch := make(chan T, len(resources))
	for i := range resources {
		ch <- resources[i]
	}
	return &ResourceManager[T]{Resources: ch}
}

// Task is a function taking as input a resource that it may use exclusively
// until it returns.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] in its own goroutine, blocking until a resource is
// available. If a previous task returned an error, the task is dropped.
func (r *ResourceManager[T]) Run(f Task[T]) {
	r.Add(1)
	go func() {
		defer r.Done()
		if r.failed() {
			return
		}
		resource := <-r.Resources
		if err := f(resource); err != nil {
			r.mu.Lock()
			if r.err == nil {
				r.err = err
			}
			r.mu.Unlock()
		}
		r.Resources <- resource
	}()
}

// Wait waits until all tasks have returned and reports the first error
// recorded, if any.
func (r *ResourceManager[T]) Wait() error {
	r.WaitGroup.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *ResourceManager[T]) failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err != nil
}
