package repokit

import (
	"context"
	"fmt"
	"time"
)

// MustGuard pings every backend of st and panics when one is down
// a 5s timeout applies when ctx has no deadline
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
