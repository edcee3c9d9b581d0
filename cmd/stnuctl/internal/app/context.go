package app

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// newRunContext derives a cancellable context from cmd, bounded by timeout
// when positive. The cancel func must always be deferred by the caller.
func newRunContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(base)
	}
	return context.WithTimeout(base, timeout)
}
