// Package notify demonstrates context handling: a leading context.Context
// rides the generated signature but is never recorded or matched.
package notify

import "context"

//go:generate go run github.com/verifake/verifake/vfgen ../..

// Notifier pushes alerts on behalf of the code under test.
type Notifier interface {
	Ping(ctx context.Context, target string)
	Halt(ctx context.Context)
}

//vfgen:verify
var _ Notifier
