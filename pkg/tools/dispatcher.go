package tools

import (
	"context"
	"log"
)

// ToolFunc defines a function executed asynchronously.
type ToolFunc func(ctx context.Context) error

// Dispatch runs fn in its own goroutine. The caller never waits; a failure
// only shows up in the log under the given name.
func Dispatch(ctx context.Context, name string, fn ToolFunc) {
	go func() {
		if err := fn(ctx); err != nil {
			log.Printf("[WARN] background task %s failed: %v", name, err)
		}
	}()
}
