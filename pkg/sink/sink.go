package sink

import "context"

// Sink consumes rendered graph statements one at a time.
type Sink interface {
	Run(ctx context.Context, statement string) error
}
