package port

import (
	"context"
	"time"
)

// Task is one background job: a stable type string and opaque payload bytes.
// Encoding is the producer's concern; the offline-message pipeline uses JSON.
type Task struct {
	Type    string
	Payload []byte
}

// Handler processes one Task. A non-nil error schedules a retry per the
// adapter's policy, so handlers must be idempotent.
type Handler func(ctx context.Context, task Task) error

// EnqueueOption tunes a single enqueue. Zero values mean "adapter default".
type EnqueueOption struct {
	Queue     string        // logical queue name
	ProcessIn time.Duration // delay before the task becomes available
	MaxRetry  int           // retry budget
}

// Client is the producing side of the queue.
type Client interface {
	Enqueue(ctx context.Context, t Task, opts ...EnqueueOption) (id string, err error)
	Close() error
}

// Server is the consuming side: Register binds handlers by task type, Run
// blocks until ctx is canceled or Stop is called.
type Server interface {
	Register(taskType string, h Handler)
	Run(ctx context.Context) error
	Stop(ctx context.Context) error
}
