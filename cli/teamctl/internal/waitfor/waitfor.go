// Package waitfor polls for external readiness before a task proceeds.
package waitfor

import (
	"context"
	"fmt"
	"time"
)

// Poll runs probe repeatedly until it returns nil or ctx is done. The probe
// runs inside the stack (compose exec), so readiness does not depend on the
// environment publishing ports to the host. The last probe error is included
// in the timeout report.
func Poll(ctx context.Context, what string, interval time.Duration, probe func(context.Context) error) error {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	var lastErr error
	for {
		err := probe(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w (last error: %v)", what, ctx.Err(), lastErr)
		case <-time.After(interval):
		}
	}
}
