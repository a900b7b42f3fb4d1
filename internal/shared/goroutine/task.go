// Package goroutine runs the server's long-lived background tasks.
package goroutine

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// ErrTaskPanicked is wrapped by the result of a task that panicked.
var ErrTaskPanicked = errors.New("background task panicked")

// Run starts fn in its own goroutine and returns a channel that receives
// its result exactly once. A panic is logged with its stack under the task
// name and delivered as an error wrapping ErrTaskPanicked, so a caller
// waiting on the channel is never left blocked.
func Run(log logger.Interface, task string, fn func() error) <-chan error {
	done := make(chan error, 1)
	log = log.With("task", task)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				done <- fmt.Errorf("%w: %s: %v", ErrTaskPanicked, task, r)
			}
		}()
		done <- fn()
	}()

	return done
}
