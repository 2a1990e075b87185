package generation

import (
	"context"
	"errors"
	"sync"
)

// Status is the progress of a generation workflow as its caller sees it.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// ErrInFlight rejects a trigger while a generation is already running.
var ErrInFlight = errors.New("generation already in progress")

// Flight serializes generation triggers: at most one runs at a time, and
// each trigger resolves with exactly one terminal transition. There is no
// cancellation operation; a running generation resolves on its own.
type Flight struct {
	mu       sync.Mutex
	status   Status
	imageURL string
	err      error
}

func NewFlight() *Flight {
	return &Flight{status: StatusIdle}
}

// Run executes fn as the single in-flight generation. A second Run while
// one is generating returns ErrInFlight without invoking fn.
func (f *Flight) Run(ctx context.Context, fn func(ctx context.Context) (string, error)) (string, error) {
	f.mu.Lock()
	if f.status == StatusGenerating {
		f.mu.Unlock()
		return "", ErrInFlight
	}
	f.status = StatusGenerating
	f.imageURL = ""
	f.err = nil
	f.mu.Unlock()

	imageURL, err := fn(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusFailed
		f.err = err
		return "", err
	}
	f.status = StatusSucceeded
	f.imageURL = imageURL
	return imageURL, nil
}

func (f *Flight) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Result reports the outcome of the last resolved run.
func (f *Flight) Result() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imageURL, f.err
}
